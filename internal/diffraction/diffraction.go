// Package diffraction computes Fraunhofer interference patterns for a set
// of point-like apertures (pinholes). Each pinhole contributes a
// unit-amplitude plane wave; the intensity at an observation point is the
// squared magnitude of the summed complex amplitude.
package diffraction

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/golang/geo/r2"
)

var (
	// ErrInvalidParameter reports a parameter outside its valid range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrComputation reports a non-finite value in a computed field.
	ErrComputation = errors.New("computation produced a non-finite intensity")
)

// Aperture is an ordered set of pinhole positions on the aperture plane.
type Aperture []r2.Point

// Ring returns n pinholes evenly spaced on a circle of the given radius
// centered at the origin. The first pinhole sits at (radius, 0).
func Ring(n int, radius float64) (Aperture, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: pinhole count must be at least 1, got %d", ErrInvalidParameter, n)
	}
	if radius <= 0 || !isFinite(radius) {
		return nil, fmt.Errorf("%w: ring radius must be positive and finite, got %v", ErrInvalidParameter, radius)
	}
	ap := make(Aperture, n)
	for i := range ap {
		t := float64(i) * 2 * math.Pi / float64(n)
		ap[i] = r2.Point{X: radius * math.Cos(t), Y: radius * math.Sin(t)}
	}
	return ap, nil
}

func (ap Aperture) validate() error {
	if len(ap) == 0 {
		return fmt.Errorf("%w: aperture has no pinholes", ErrInvalidParameter)
	}
	for i, p := range ap {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: pinhole %d has non-finite position (%v, %v)", ErrInvalidParameter, i, p.X, p.Y)
		}
	}
	return nil
}

// Params describes one pattern computation.
type Params struct {
	Wavenumber float64 // spatial frequency of the light, > 0
	ShiftX     float64 // pattern shift along u, radians
	ShiftY     float64 // pattern shift along v, radians
	Width      int     // output grid width in pixels, > 0
	Height     int     // output grid height in pixels, > 0
}

func (p Params) validate() error {
	if p.Wavenumber <= 0 || !isFinite(p.Wavenumber) {
		return fmt.Errorf("%w: wavenumber must be positive and finite, got %v", ErrInvalidParameter, p.Wavenumber)
	}
	if !isFinite(p.ShiftX) || !isFinite(p.ShiftY) {
		return fmt.Errorf("%w: shift must be finite, got (%v, %v)", ErrInvalidParameter, p.ShiftX, p.ShiftY)
	}
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: resolution must be positive, got %dx%d", ErrInvalidParameter, p.Width, p.Height)
	}
	return nil
}

// Field is a W×H grid of non-negative intensities, stored row-major with
// row 0 at the top of the image. Values are not normalized.
type Field struct {
	W, H int
	data []float64
}

func newField(w, h int) *Field {
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// At returns the intensity at pixel (x, y).
func (f *Field) At(x, y int) float64 {
	return f.data[y*f.W+x]
}

// Row returns the y-th pixel row. The slice aliases the field's storage.
func (f *Field) Row(y int) []float64 {
	return f.data[y*f.W : (y+1)*f.W]
}

// MinMax returns the smallest and largest intensity in the field.
func (f *Field) MinMax() (min, max float64) {
	min, max = f.data[0], f.data[0]
	for _, v := range f.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Compute renders the interference pattern of ap on a Width×Height grid.
//
// Pixel (x, y) maps to an observation coordinate
//
//	u = 2π·x/W − π + ShiftX
//	v = π − 2π·y/H + ShiftY
//
// so the grid spans one 2π period per axis with (W/2, H/2) at the origin
// and v growing upward. The amplitude at (u, v) is the sum over pinholes
// of exp(i·k·(px·u + py·v)); the stored intensity is its squared
// magnitude. Rows are computed in parallel; the result is independent of
// the worker count.
func Compute(ap Aperture, p Params) (*Field, error) {
	if err := ap.validate(); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	f := newField(p.Width, p.Height)

	rowCh := make(chan int, p.Height)
	for y := 0; y < p.Height; y++ {
		rowCh <- y
	}
	close(rowCh)

	workers := runtime.NumCPU()
	if workers > p.Height {
		workers = p.Height
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowCh {
				computeRow(f.Row(y), ap, p, y)
			}
		}()
	}
	wg.Wait()

	for _, v := range f.data {
		if !isFinite(v) {
			return nil, fmt.Errorf("%w: wavenumber %v with %d pinholes", ErrComputation, p.Wavenumber, len(ap))
		}
	}
	return f, nil
}

func computeRow(row []float64, ap Aperture, p Params, y int) {
	v := math.Pi - 2*math.Pi*float64(y)/float64(p.Height) + p.ShiftY
	for x := range row {
		u := 2*math.Pi*float64(x)/float64(p.Width) - math.Pi + p.ShiftX
		var re, im float64
		for _, hole := range ap {
			sin, cos := math.Sincos(p.Wavenumber * (hole.X*u + hole.Y*v))
			re += cos
			im += sin
		}
		row[x] = re*re + im*im
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
