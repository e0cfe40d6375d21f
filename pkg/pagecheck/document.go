package pagecheck

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Document wraps an open PDF for rendering and inspection. Rendering goes
// through MuPDF; page geometry and embedded-image enumeration come from the
// pdfcpu page model.
type Document struct {
	path string
	doc  *fitz.Document
	dims []types.Dim // page dimensions in points, may be empty
}

// OpenDocument opens a PDF file.
func OpenDocument(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	// Best effort: when pdfcpu cannot parse the page tree the renderer's
	// integer page bounds are used as fallback.
	dims, err := api.PageDimsFile(path)
	if err != nil {
		dims = nil
	}
	return &Document{path: path, doc: doc, dims: dims}, nil
}

// Close releases the underlying renderer resources.
func (d *Document) Close() error {
	return d.doc.Close()
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.doc.NumPage()
}

// PageHeightPt returns the height of the 1-based page in points, the anchor
// for flipping the vertical axis between page and pixel coordinates.
func (d *Document) PageHeightPt(page int) float64 {
	if page >= 1 && page <= len(d.dims) {
		return d.dims[page-1].Height
	}
	if b, err := d.doc.Bound(page - 1); err == nil && b.Dy() > 0 {
		return float64(b.Dy())
	}
	return 792 // Letter height
}

// RenderPage rasterizes the 1-based page at the given DPI.
func (d *Document) RenderPage(page, dpi int) (image.Image, error) {
	img, err := d.doc.ImageDPI(page-1, float64(dpi))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// CountImages returns the number of embedded image resources on the 1-based
// page.
func (d *Document) CountImages(page int) (int, error) {
	f, err := os.Open(d.path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	pages := []string{strconv.Itoa(page)}
	images, err := api.ExtractImagesRaw(f, pages, model.NewDefaultConfiguration())
	if err != nil {
		return 0, err
	}
	n := 0
	for _, pageImages := range images {
		n += len(pageImages)
	}
	return n, nil
}

// ProbeRenderer verifies that the MuPDF renderer is functional in this
// environment by rasterizing a minimal in-memory document. Callers should
// treat a probe failure as "environment not suitable", not as a validation
// failure.
func ProbeRenderer() error {
	doc, err := fitz.NewFromMemory(fixturePage{}.PDF())
	if err != nil {
		return fmt.Errorf("renderer probe: %w", err)
	}
	defer doc.Close()
	if _, err := doc.ImageDPI(0, 72); err != nil {
		return fmt.Errorf("renderer probe: %w", err)
	}
	return nil
}
