// Package palette maps normalized intensities to colors through ordered
// gradient stops with linear interpolation between them.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

// ErrInvalidStops reports a malformed gradient definition.
var ErrInvalidStops = errors.New("invalid palette stops")

// Stop pins a color at a normalized position in [0, 1].
type Stop struct {
	Pos   float64
	Color color.RGBA
}

// Palette is a named gradient. Stops are ordered by position, the first at
// 0 and the last at 1.
type Palette struct {
	Name  string
	Stops []Stop
}

// New validates and returns a palette. Stops may be given in any order.
func New(name string, stops []Stop) (Palette, error) {
	if len(stops) < 2 {
		return Palette{}, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidStops, len(stops))
	}
	s := make([]Stop, len(stops))
	copy(s, stops)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Pos < s[j].Pos })
	if s[0].Pos != 0 || s[len(s)-1].Pos != 1 {
		return Palette{}, fmt.Errorf("%w: stops must span [0, 1], got [%v, %v]", ErrInvalidStops, s[0].Pos, s[len(s)-1].Pos)
	}
	return Palette{Name: name, Stops: s}, nil
}

// At returns the color for a normalized intensity t, clamped to [0, 1].
func (p Palette) At(t float64) color.RGBA {
	if t <= 0 {
		return p.Stops[0].Color
	}
	if t >= 1 {
		return p.Stops[len(p.Stops)-1].Color
	}
	for i := 1; i < len(p.Stops); i++ {
		lo, hi := p.Stops[i-1], p.Stops[i]
		if t > hi.Pos {
			continue
		}
		span := hi.Pos - lo.Pos
		if span == 0 {
			return hi.Color
		}
		return lerp(lo.Color, hi.Color, (t-lo.Pos)/span)
	}
	return p.Stops[len(p.Stops)-1].Color
}

// LUT returns an n-entry lookup table sampled evenly over [0, 1]. n must
// be at least 1; a single entry samples the bottom of the gradient.
func (p Palette) LUT(n int) []color.RGBA {
	if n == 1 {
		return []color.RGBA{p.At(0)}
	}
	lut := make([]color.RGBA, n)
	for i := range lut {
		lut[i] = p.At(float64(i) / float64(n-1))
	}
	return lut
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R)) + 0.5),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G)) + 0.5),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B)) + 0.5),
		A: 255,
	}
}

// ParseHex parses a #rrggbb color.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("malformed color %q: want #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("malformed color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
