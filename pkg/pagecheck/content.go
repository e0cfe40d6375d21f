package pagecheck

import (
	"image"

	"github.com/disintegration/imaging"
)

// ContentBounds computes the bounding box of the non-white pixels of img.
// The image is converted to grayscale first; any pixel with a luminance below
// pure white counts as content. The second return value is false when the
// image is entirely white.
func ContentBounds(img image.Image) (image.Rectangle, bool) {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()

	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	found := false

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := gray.Pix[(y-b.Min.Y)*gray.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			// After grayscale conversion R == G == B, checking one
			// channel is enough.
			if row[(x-b.Min.X)*4] < 0xff {
				found = true
				if x < minX {
					minX = x
				}
				if x >= maxX {
					maxX = x + 1
				}
				if y < minY {
					minY = y
				}
				if y >= maxY {
					maxY = y + 1
				}
			}
		}
	}
	if !found {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}
