// Package pagecheck validates the visual appearance of rendered PDF pages.
//
// A check renders one page of a PDF to a raster image at a requested DPI and
// asserts that caller-specified rectangular regions, given in millimeters with
// a bottom-left origin, contain non-white content. When a reference image is
// supplied the region is additionally compared pixel-by-pixel against the
// reference using a normalized root-mean-square error.
package pagecheck

import (
	"fmt"
	"strconv"
	"strings"
)

// Options is the immutable configuration for a single validation run.
type Options struct {
	PDF         string   // path of the PDF file to validate
	Page        int      // 1-based page number
	DPI         int      // rasterization resolution
	ExpectImage bool     // fail when the page has no embedded images
	Positions   []string // expected areas as "x_mm,y_mm,w_mm,h_mm"
	RefSource   string   // optional reference image for pixel comparison
	Threshold   float64  // maximum allowed normalized RMSE (0..1)
	SaveDiff    string   // directory for debug images on comparison failure
	Report      bool     // print the content extent of each validated crop
}

// Position is an expected content area in millimeters with the origin at the
// bottom-left corner of the page.
type Position struct {
	X, Y float64 // center of the area
	W, H float64 // extent of the area
}

// ParsePosition parses a "x_mm,y_mm,w_mm,h_mm" string.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Position{}, fmt.Errorf("expected 4 comma-separated values, got %d", len(parts))
	}
	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Position{}, fmt.Errorf("bad value %q: %w", part, err)
		}
		vals[i] = v
	}
	return Position{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}
