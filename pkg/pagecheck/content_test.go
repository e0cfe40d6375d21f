package pagecheck

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

// TestContentBoundsAllWhite tests that a pure white image has no content.
func TestContentBoundsAllWhite(t *testing.T) {
	img := imaging.New(20, 10, color.NRGBA{255, 255, 255, 255})

	if _, ok := ContentBounds(img); ok {
		t.Error("All-white image should have no content bounds")
	}
}

// TestContentBoundsSinglePixel tests that one dark pixel is enough to count
// as content and that its bounding box is exact.
func TestContentBoundsSinglePixel(t *testing.T) {
	img := imaging.New(20, 10, color.NRGBA{255, 255, 255, 255})
	img.Set(7, 3, color.NRGBA{0, 0, 0, 255})

	bounds, ok := ContentBounds(img)
	if !ok {
		t.Fatal("Image with a dark pixel should have content")
	}
	if bounds.Min.X != 7 || bounds.Min.Y != 3 || bounds.Max.X != 8 || bounds.Max.Y != 4 {
		t.Errorf("Unexpected content bounds: %v", bounds)
	}
}

// TestContentBoundsRegion tests the bounding box of a filled region.
func TestContentBoundsRegion(t *testing.T) {
	img := imaging.New(40, 40, color.NRGBA{255, 255, 255, 255})
	for y := 10; y < 20; y++ {
		for x := 5; x < 25; x++ {
			img.Set(x, y, color.NRGBA{40, 40, 40, 255})
		}
	}

	bounds, ok := ContentBounds(img)
	if !ok {
		t.Fatal("Expected content")
	}
	if bounds.Min.X != 5 || bounds.Max.X != 25 || bounds.Min.Y != 10 || bounds.Max.Y != 20 {
		t.Errorf("Unexpected content bounds: %v", bounds)
	}
}

// TestContentBoundsColoredContent tests that colored (non-gray) content is
// detected after grayscale conversion.
func TestContentBoundsColoredContent(t *testing.T) {
	img := imaging.New(10, 10, color.NRGBA{255, 255, 255, 255})
	img.Set(2, 2, color.NRGBA{204, 0, 0, 255})

	if _, ok := ContentBounds(img); !ok {
		t.Error("Red pixel should count as non-white content")
	}
}
