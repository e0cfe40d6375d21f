package pagecheck

import (
	"bytes"
	"fmt"
)

// fixturePage builds a minimal single-page PDF in memory. It backs the
// renderer probe and the package tests; nothing here aims to be a general
// PDF writer.
type fixturePage struct {
	WidthPt   float64 // 0 means Letter width (612)
	HeightPt  float64 // 0 means Letter height (792)
	Content   string  // page content stream, may be empty
	WithImage bool    // embed a small image XObject as /Im0
}

// PDF serializes the page as a complete PDF file.
func (p fixturePage) PDF() []byte {
	width, height := p.WidthPt, p.HeightPt
	if width == 0 {
		width = 612
	}
	if height == 0 {
		height = 792
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	writeObj("<</Type/Catalog/Pages 2 0 R>>")
	writeObj("<</Type/Pages/Kids[3 0 R]/Count 1>>")

	resources := "<<>>"
	if p.WithImage {
		resources = "<</XObject<</Im0 5 0 R>>>>"
	}
	writeObj(fmt.Sprintf("<</Type/Page/MediaBox[0 0 %g %g]/Parent 2 0 R/Contents 4 0 R/Resources%s>>",
		width, height, resources))

	writeObj(fmt.Sprintf("<</Length %d>>\nstream\n%s\nendstream", len(p.Content)+1, p.Content+"\n"))

	if p.WithImage {
		// 4x4 DeviceRGB image, uncompressed, solid red.
		pixels := bytes.Repeat([]byte{0xcc, 0x00, 0x00}, 16)
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n<</Type/XObject/Subtype/Image/Width 4/Height 4"+
			"/ColorSpace/DeviceRGB/BitsPerComponent 8/Length %d>>\nstream\n", len(offsets), len(pixels))
		buf.Write(pixels)
		buf.WriteString("\nendstream\nendobj\n")
	}

	// Cross-reference table entries are exactly 20 bytes each; with a
	// two-byte CRLF end-of-line there is no padding space after the
	// entry type.
	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	fmt.Fprintf(&buf, "%010d %05d f\r\n", 0, 65535)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d %05d n\r\n", off, 0)
	}
	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF", len(offsets)+1, xrefOffset)

	return buf.Bytes()
}

// fillRect returns a content stream painting a filled black rectangle. The
// coordinates are points with the PDF's bottom-left origin.
func fillRect(x, y, w, h float64) string {
	return fmt.Sprintf("0 0 0 rg %g %g %g %g re f", x, y, w, h)
}

// drawImage returns a content stream painting /Im0 scaled to w x h points at
// (x, y).
func drawImage(x, y, w, h float64) string {
	return fmt.Sprintf("q %g 0 0 %g %g %g cm /Im0 Do Q", w, h, x, y)
}
