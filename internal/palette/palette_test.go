package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestAtInterpolatesLinearly(t *testing.T) {
	grey, ok := Preset("grey")
	if !ok {
		t.Fatal("Expected grey preset to exist")
	}
	if c := grey.At(0); c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black at 0, got %v", c)
	}
	if c := grey.At(1); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white at 1, got %v", c)
	}
	if c := grey.At(0.5); c != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("Expected mid grey at 0.5, got %v", c)
	}
}

func TestAtClampsOutOfRange(t *testing.T) {
	thermal, _ := Preset("thermal")
	if c := thermal.At(-2); c != thermal.Stops[0].Color {
		t.Errorf("Expected first stop color below 0, got %v", c)
	}
	if c := thermal.At(3); c != thermal.Stops[len(thermal.Stops)-1].Color {
		t.Errorf("Expected last stop color above 1, got %v", c)
	}
}

func TestAtHitsInnerStops(t *testing.T) {
	thermal, _ := Preset("thermal")
	if c := thermal.At(0.3333); c != (color.RGBA{185, 0, 0, 255}) {
		t.Errorf("Expected stop color at its position, got %v", c)
	}
}

func TestLUT(t *testing.T) {
	grey, _ := Preset("grey")
	lut := grey.LUT(256)
	if len(lut) != 256 {
		t.Fatalf("Expected 256 entries, got %d", len(lut))
	}
	if lut[0] != grey.Stops[0].Color {
		t.Errorf("Expected first entry to match first stop, got %v", lut[0])
	}
	if lut[255] != grey.Stops[1].Color {
		t.Errorf("Expected last entry to match last stop, got %v", lut[255])
	}
	for i := 1; i < len(lut); i++ {
		if lut[i].R < lut[i-1].R {
			t.Fatalf("Expected monotone grey LUT, got %v before %v", lut[i-1], lut[i])
		}
	}
}

func TestLUTSingleEntry(t *testing.T) {
	grey, _ := Preset("grey")
	lut := grey.LUT(1)
	if len(lut) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(lut))
	}
	if lut[0] != grey.Stops[0].Color {
		t.Errorf("Expected the single entry to sample the bottom of the gradient, got %v", lut[0])
	}
}

func TestNewSortsStops(t *testing.T) {
	p, err := New("reversed", []Stop{
		{1, color.RGBA{255, 255, 255, 255}},
		{0, color.RGBA{0, 0, 0, 255}},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.Stops[0].Pos != 0 || p.Stops[1].Pos != 1 {
		t.Errorf("Expected stops sorted by position, got %v", p.Stops)
	}
}

func TestNewRejectsBadStops(t *testing.T) {
	cases := []struct {
		name  string
		stops []Stop
	}{
		{"too few", []Stop{{0, color.RGBA{}}}},
		{"missing start", []Stop{{0.5, color.RGBA{}}, {1, color.RGBA{}}}},
		{"missing end", []Stop{{0, color.RGBA{}}, {0.5, color.RGBA{}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New("bad", c.stops); !errors.Is(err, ErrInvalidStops) {
				t.Errorf("Expected ErrInvalidStops, got %v", err)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if c != (color.RGBA{255, 128, 0, 255}) {
		t.Errorf("Expected #ff8000 to parse to {255 128 0 255}, got %v", c)
	}

	for _, bad := range []string{"", "ff8000", "#fff", "#zzzzzz", "#ff80000"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestPresetLookup(t *testing.T) {
	if Presets()[0].Name != "thermal" {
		t.Errorf("Expected thermal to be the default preset, got %q", Presets()[0].Name)
	}
	if _, ok := Preset("viridis"); !ok {
		t.Error("Expected viridis preset to exist")
	}
	if _, ok := Preset("no-such-palette"); ok {
		t.Error("Expected lookup miss for unknown name")
	}
}
