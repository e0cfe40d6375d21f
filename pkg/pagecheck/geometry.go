package pagecheck

import "image"

// MMToPt converts millimeters to PostScript points.
const MMToPt = 72.0 / 25.4

// PageSpace maps page coordinates to pixel coordinates for one rendered page.
// Page coordinates are millimeters with the origin at the bottom-left corner;
// pixel coordinates have the origin at the top-left corner of the raster.
type PageSpace struct {
	HeightPt float64 // page height in points, anchor for the Y-axis flip
	DPI      float64 // rasterization resolution
}

// PixelPoint converts a millimeter coordinate to a pixel coordinate.
// The vertical axis is flipped against the page height before scaling.
func (s PageSpace) PixelPoint(xMM, yMM float64) (int, int) {
	scale := s.DPI / 72.0
	ptX := xMM * MMToPt
	ptY := yMM * MMToPt
	return int(ptX * scale), int((s.HeightPt - ptY) * scale)
}

// PixelLength converts a millimeter distance to pixels. Lengths are scaled
// without any axis flip.
func (s PageSpace) PixelLength(mm float64) int {
	return int(mm * MMToPt * (s.DPI / 72.0))
}

// CenteredCrop returns a pixel rectangle of roughly w x h pixels centered on
// (cx, cy), clamped to an image of widthPx x heightPx. The second return
// value is false when clamping collapses the rectangle to zero or negative
// area.
func CenteredCrop(cx, cy, w, h, widthPx, heightPx int) (image.Rectangle, bool) {
	left := max(0, cx-w/2)
	upper := max(0, cy-h/2)
	right := min(widthPx, cx+w/2)
	lower := min(heightPx, cy+h/2)
	if left >= right || upper >= lower {
		return image.Rectangle{}, false
	}
	return image.Rect(left, upper, right, lower), true
}
