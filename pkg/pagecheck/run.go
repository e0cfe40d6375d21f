package pagecheck

import (
	"errors"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// ErrValidation is returned by Run after a check failed. The diagnostic line
// describing the failure has already been written to the run's output when
// this error is returned.
var ErrValidation = errors.New("validation failed")

// fail writes a diagnostic line and returns ErrValidation. One failing check
// aborts the whole run; there is no aggregation of failures.
func fail(w io.Writer, format string, args ...any) error {
	fmt.Fprintf(w, format+"\n", args...)
	return ErrValidation
}

// Run executes the validation pipeline described by opts, writing all
// diagnostics as plain text lines to w. It returns nil when every check
// passed and ErrValidation on the first failing check.
func Run(opts Options, w io.Writer) error {
	doc, err := OpenDocument(opts.PDF)
	if err != nil {
		return fail(w, "Cannot open PDF %s: %v", opts.PDF, err)
	}
	defer doc.Close()

	page := opts.Page
	if page < 1 {
		page = 1
	}
	if page > doc.NumPages() {
		return fail(w, "Page %d out of range (document has %d)", opts.Page, doc.NumPages())
	}

	if opts.ExpectImage {
		n, err := doc.CountImages(page)
		if err != nil {
			return fail(w, "Cannot inspect images on page %d: %v", opts.Page, err)
		}
		if n == 0 {
			return fail(w, "No images found on page %d", opts.Page)
		}
	}

	img, err := doc.RenderPage(page, opts.DPI)
	if err != nil {
		return fail(w, "Cannot render page %d: %v", opts.Page, err)
	}
	widthPx := img.Bounds().Dx()
	heightPx := img.Bounds().Dy()

	space := PageSpace{HeightPt: doc.PageHeightPt(page), DPI: float64(opts.DPI)}

	for idx, raw := range opts.Positions {
		pos, err := ParsePosition(raw)
		if err != nil {
			return fail(w, "Invalid position format: %s", raw)
		}

		cx, cy := space.PixelPoint(pos.X, pos.Y)
		box, ok := CenteredCrop(cx, cy, space.PixelLength(pos.W), space.PixelLength(pos.H), widthPx, heightPx)
		if !ok {
			return fail(w, "Computed empty crop for position %s", raw)
		}

		crop := imaging.Crop(img, box)

		extent, ok := ContentBounds(crop)
		if !ok {
			return fail(w, "No non-white pixels found in expected area %s (crop %d,%d-%d,%d)",
				raw, box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
		}
		fmt.Fprintf(w, "Found non-white content for position %s in crop %d,%d-%d,%d\n",
			raw, box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
		if opts.Report {
			fmt.Fprintf(w, "Content extent for position %s: cols %d-%d rows %d-%d\n",
				raw, extent.Min.X, extent.Max.X-1, extent.Min.Y, extent.Max.Y-1)
		}

		if opts.RefSource != "" {
			ref, err := imaging.Open(opts.RefSource)
			if err != nil {
				return fail(w, "Cannot open reference source image %s: %v", opts.RefSource, err)
			}

			refResized := imaging.Resize(ref, box.Dx(), box.Dy(), imaging.Lanczos)
			diff := DiffImage(crop, refResized)
			rmse := RMSE(diff)

			fmt.Fprintf(w, "Position %d: normalized RMSE = %.6f (threshold %g)\n", idx, rmse, opts.Threshold)
			if rmse > opts.Threshold {
				err := fail(w, "Pixel difference too large for position %s (rmse %g > %g)", raw, rmse, opts.Threshold)
				if opts.SaveDiff != "" {
					if saveErr := SaveDebugImages(opts.SaveDiff, idx, crop, refResized, diff); saveErr != nil {
						fmt.Fprintf(w, "Cannot save debug images to %s: %v\n", opts.SaveDiff, saveErr)
					} else {
						fmt.Fprintf(w, "Saved debug images to %s\n", opts.SaveDiff)
					}
				}
				return err
			}
			fmt.Fprintf(w, "Pixel comparison OK for position %s\n", raw)
		}
	}

	fmt.Fprintln(w, "Validation OK")
	return nil
}
