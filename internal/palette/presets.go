package palette

import "image/color"

func mustNew(name string, stops []Stop) Palette {
	p, err := New(name, stops)
	if err != nil {
		panic(err)
	}
	return p
}

var presets = []Palette{
	mustNew("thermal", []Stop{
		{0, color.RGBA{0, 0, 0, 255}},
		{0.3333, color.RGBA{185, 0, 0, 255}},
		{0.6666, color.RGBA{255, 220, 0, 255}},
		{1, color.RGBA{255, 255, 255, 255}},
	}),
	mustNew("flame", []Stop{
		{0, color.RGBA{0, 0, 0, 255}},
		{0.2, color.RGBA{7, 0, 220, 255}},
		{0.5, color.RGBA{236, 0, 134, 255}},
		{0.8, color.RGBA{246, 246, 0, 255}},
		{1, color.RGBA{255, 255, 255, 255}},
	}),
	mustNew("ice", []Stop{
		{0, color.RGBA{0, 0, 0, 255}},
		{0.45, color.RGBA{0, 50, 128, 255}},
		{0.75, color.RGBA{0, 160, 200, 255}},
		{1, color.RGBA{255, 255, 255, 255}},
	}),
	mustNew("grey", []Stop{
		{0, color.RGBA{0, 0, 0, 255}},
		{1, color.RGBA{255, 255, 255, 255}},
	}),
	mustNew("bipolar", []Stop{
		{0, color.RGBA{0, 255, 255, 255}},
		{0.25, color.RGBA{0, 0, 255, 255}},
		{0.5, color.RGBA{0, 0, 0, 255}},
		{0.75, color.RGBA{255, 0, 0, 255}},
		{1, color.RGBA{255, 255, 0, 255}},
	}),
	mustNew("viridis", []Stop{
		{0, color.RGBA{68, 1, 84, 255}},
		{0.25, color.RGBA{59, 82, 139, 255}},
		{0.5, color.RGBA{33, 145, 140, 255}},
		{0.75, color.RGBA{94, 201, 98, 255}},
		{1, color.RGBA{253, 231, 37, 255}},
	}),
}

// Presets returns the built-in palettes, default first.
func Presets() []Palette {
	out := make([]Palette, len(presets))
	copy(out, presets)
	return out
}

// Preset looks up a built-in palette by name.
func Preset(name string) (Palette, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}
