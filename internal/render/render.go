// Package render turns intensity fields into displayable images.
package render

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/iburimskiy/pinhole-diffraction/internal/diffraction"
	"github.com/iburimskiy/pinhole-diffraction/internal/palette"
)

const lutSize = 256

// Options controls how intensities map to colors.
type Options struct {
	Palette  palette.Palette
	LogScale bool    // compress the dynamic range with log1p before mapping
	Gamma    float64 // gamma correction applied after normalization, 0 disables
}

// Image maps a field through the palette into an RGBA image of the same
// dimensions. Intensities are normalized to the field maximum; a uniform
// field maps everywhere to the top of the palette.
func Image(f *diffraction.Field, o Options) *image.RGBA {
	lut := o.Palette.LUT(lutSize)
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))

	_, max := f.MinMax()
	scale := 0.0
	if max > 0 {
		if o.LogScale {
			scale = 1 / math.Log1p(max)
		} else {
			scale = 1 / max
		}
	}

	for y := 0; y < f.H; y++ {
		row := f.Row(y)
		for x, v := range row {
			t := 1.0
			if scale > 0 {
				if o.LogScale {
					t = math.Log1p(v) * scale
				} else {
					t = v * scale
				}
			}
			if o.Gamma > 0 {
				t = math.Pow(t, 1/o.Gamma)
			}
			i := int(t*float64(lutSize-1) + 0.5)
			if i < 0 {
				i = 0
			}
			if i >= lutSize {
				i = lutSize - 1
			}
			img.SetRGBA(x, y, lut[i])
		}
	}
	return img
}

// Fit scales src to w×h with bilinear filtering for on-screen preview.
func Fit(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
