package pagecheck

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// DiffImage computes the per-pixel absolute difference of two images of equal
// dimensions. The result carries the per-channel difference values in its
// RGB channels with full alpha.
func DiffImage(a, b *image.NRGBA) *image.NRGBA {
	bounds := a.Bounds()
	diff := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			ai := a.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			bi := b.PixOffset(b.Bounds().Min.X+x, b.Bounds().Min.Y+y)
			di := diff.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				d := int(a.Pix[ai+c]) - int(b.Pix[bi+c])
				if d < 0 {
					d = -d
				}
				diff.Pix[di+c] = uint8(d)
			}
			diff.Pix[di+3] = 0xff
		}
	}
	return diff
}

// RMSE computes the normalized root-mean-square error of a difference image:
// the square root of the mean of the squared per-channel difference values
// over all pixels and the three color channels, divided by 255. The result
// is 0 for identical images and 1 for a full black/white inversion.
//
// The formula intentionally matches the historical test baselines of the
// document pipeline; keep it stable when touching this code.
func RMSE(diff *image.NRGBA) float64 {
	b := diff.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 0
	}
	var sq uint64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := diff.PixOffset(b.Min.X+x, b.Min.Y+y)
			for c := 0; c < 3; c++ {
				v := uint64(diff.Pix[i+c])
				sq += v * v
			}
		}
	}
	mse := float64(sq) / float64(w*h*3)
	return math.Sqrt(mse) / 255.0
}

// SaveDebugImages persists a failing crop, the resampled reference and their
// difference image into dir for offline inspection. The directory is created
// if absent. idx distinguishes multiple positions within one run.
func SaveDebugImages(dir string, idx int, crop, ref, diff image.Image) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	files := []struct {
		name string
		img  image.Image
	}{
		{fmt.Sprintf("crop_%d.png", idx), crop},
		{fmt.Sprintf("ref_%d.png", idx), ref},
		{fmt.Sprintf("diff_%d.png", idx), diff},
	}
	for _, f := range files {
		if err := imaging.Save(f.img, filepath.Join(dir, f.name)); err != nil {
			return err
		}
	}
	return nil
}
