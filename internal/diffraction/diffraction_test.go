package diffraction

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func TestSinglePinholeIsUniform(t *testing.T) {
	ap := Aperture{{X: 0.7, Y: -1.3}}
	f, err := Compute(ap, Params{Wavenumber: 350, ShiftX: 0.5, ShiftY: -0.2, Width: 32, Height: 32})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if math.Abs(f.At(x, y)-1) > 1e-9 {
				t.Fatalf("Expected uniform intensity 1 at (%d, %d), got %v", x, y, f.At(x, y))
			}
		}
	}
}

func TestIntensityNonNegative(t *testing.T) {
	ap, err := Ring(7, 2.0)
	if err != nil {
		t.Fatalf("Ring failed: %v", err)
	}
	f, err := Compute(ap, Params{Wavenumber: 123, ShiftX: 1.1, ShiftY: 2.2, Width: 48, Height: 36})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	min, _ := f.MinMax()
	if min < 0 {
		t.Errorf("Expected all intensities >= 0, got minimum %v", min)
	}
}

func TestPointReflectionSymmetry(t *testing.T) {
	// An even ring is symmetric about the origin, so with zero shift the
	// pattern must be symmetric under point reflection about the center.
	ap, err := Ring(8, 2.0)
	if err != nil {
		t.Fatalf("Ring failed: %v", err)
	}
	f, err := Compute(ap, Params{Wavenumber: 50, Width: 64, Height: 64})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	for y := 1; y < f.H; y++ {
		for x := 1; x < f.W; x++ {
			a, b := f.At(x, y), f.At(f.W-x, f.H-y)
			if math.Abs(a-b) > 1e-6 {
				t.Fatalf("Symmetry broken at (%d, %d): %v vs %v", x, y, a, b)
			}
		}
	}
}

func TestTwoPinholeCosineFringes(t *testing.T) {
	ap := Aperture{{X: -1, Y: 0}, {X: 1, Y: 0}}
	const k = 8.0
	f, err := Compute(ap, Params{Wavenumber: k, Width: 64, Height: 64})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	for x := 0; x < f.W; x++ {
		u := 2*math.Pi*float64(x)/float64(f.W) - math.Pi
		want := 4 * math.Pow(math.Cos(k*u), 2)
		if math.Abs(f.At(x, 0)-want) > 1e-9 {
			t.Fatalf("Expected cos^2 fringe %v at x=%d, got %v", want, x, f.At(x, 0))
		}
		for y := 1; y < f.H; y++ {
			if math.Abs(f.At(x, y)-f.At(x, 0)) > 1e-9 {
				t.Fatalf("Expected fringes constant along y at x=%d, got %v vs %v", x, f.At(x, y), f.At(x, 0))
			}
		}
	}
}

func TestDoublingWavenumberHalvesFringeSpacing(t *testing.T) {
	ap := Aperture{{X: -1, Y: 0}, {X: 1, Y: 0}}
	spacing := func(k float64) int {
		f, err := Compute(ap, Params{Wavenumber: k, Width: 64, Height: 1})
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}
		row := f.Row(0)
		peaks := []int{}
		for x := 1; x < len(row)-1; x++ {
			if row[x] > row[x-1] && row[x] > row[x+1] {
				peaks = append(peaks, x)
			}
		}
		if len(peaks) < 2 {
			t.Fatalf("Expected at least 2 fringe peaks for k=%v, got %d", k, len(peaks))
		}
		d := peaks[1] - peaks[0]
		for i := 2; i < len(peaks); i++ {
			if peaks[i]-peaks[i-1] != d {
				t.Fatalf("Expected evenly spaced peaks for k=%v, got %v", k, peaks)
			}
		}
		return d
	}

	if s4, s8 := spacing(4), spacing(8); s4 != 2*s8 {
		t.Errorf("Expected doubling k to halve fringe spacing, got %d and %d", s4, s8)
	}
}

func TestMatchesSerialReference(t *testing.T) {
	ap := Aperture{{X: -1.5, Y: 0.25}, {X: 0.75, Y: -2}, {X: 2, Y: 2}}
	p := Params{Wavenumber: 17, ShiftX: 0.4, ShiftY: -0.9, Width: 16, Height: 12}
	f, err := Compute(ap, p)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	for y := 0; y < p.Height; y++ {
		v := math.Pi - 2*math.Pi*float64(y)/float64(p.Height) + p.ShiftY
		for x := 0; x < p.Width; x++ {
			u := 2*math.Pi*float64(x)/float64(p.Width) - math.Pi + p.ShiftX
			var re, im float64
			for _, hole := range ap {
				phase := p.Wavenumber * (hole.X*u + hole.Y*v)
				re += math.Cos(phase)
				im += math.Sin(phase)
			}
			want := re*re + im*im
			if math.Abs(f.At(x, y)-want) > 1e-9 {
				t.Fatalf("Parallel result differs from serial sum at (%d, %d): %v vs %v", x, y, f.At(x, y), want)
			}
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	valid := Aperture{{X: 1, Y: 0}}
	cases := []struct {
		name string
		ap   Aperture
		p    Params
	}{
		{"zero wavenumber", valid, Params{Wavenumber: 0, Width: 8, Height: 8}},
		{"negative wavenumber", valid, Params{Wavenumber: -3, Width: 8, Height: 8}},
		{"NaN wavenumber", valid, Params{Wavenumber: math.NaN(), Width: 8, Height: 8}},
		{"empty aperture", Aperture{}, Params{Wavenumber: 1, Width: 8, Height: 8}},
		{"zero width", valid, Params{Wavenumber: 1, Width: 0, Height: 8}},
		{"negative height", valid, Params{Wavenumber: 1, Width: 8, Height: -1}},
		{"infinite shift", valid, Params{Wavenumber: 1, ShiftX: math.Inf(1), Width: 8, Height: 8}},
		{"non-finite pinhole", Aperture{{X: math.NaN(), Y: 0}}, Params{Wavenumber: 1, Width: 8, Height: 8}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Compute(c.ap, c.p); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestComputationErrorOnOverflow(t *testing.T) {
	// Finite but extreme inputs overflow the phase to Inf and the sum
	// to NaN; this must surface as ErrComputation, not a silent NaN.
	ap := Aperture{{X: 1e10, Y: 0}}
	p := Params{Wavenumber: math.MaxFloat64, Width: 4, Height: 4}
	if _, err := Compute(ap, p); !errors.Is(err, ErrComputation) {
		t.Errorf("Expected ErrComputation, got %v", err)
	}
}

func TestRing(t *testing.T) {
	ap, err := Ring(4, 2)
	if err != nil {
		t.Fatalf("Ring failed: %v", err)
	}
	want := []r2.Point{{X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 0, Y: -2}}
	for i, p := range ap {
		if math.Abs(p.X-want[i].X) > 1e-12 || math.Abs(p.Y-want[i].Y) > 1e-12 {
			t.Errorf("Ring pinhole %d: expected %v, got %v", i, want[i], p)
		}
	}

	if _, err := Ring(0, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for 0 pinholes, got %v", err)
	}
	if _, err := Ring(3, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for zero radius, got %v", err)
	}
	if _, err := Ring(3, math.Inf(1)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for infinite radius, got %v", err)
	}
}
