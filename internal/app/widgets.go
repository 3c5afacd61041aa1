package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pinhole-diffraction/internal/palette"
)

type slider struct {
	label      string
	min, max   float64
	val        float64
	x, y, w, h int
	integer    bool
	format     func(float64) string

	hovered  bool
	dragging bool
}

func (s *slider) contains(mx, my int) bool {
	return mx >= s.x && mx <= s.x+s.w && my >= s.y && my <= s.y+s.h
}

// update handles click and drag on the track. It returns true when the
// value changed this frame.
func (s *slider) update() bool {
	mx, my := ebiten.CursorPosition()
	s.hovered = s.contains(mx, my)

	if s.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.dragging = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}

	frac := float64(mx-s.x) / float64(s.w)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return s.set(s.min + frac*(s.max-s.min))
}

// nudge moves the value by delta steps of the slider's resolution.
func (s *slider) nudge(delta float64) bool {
	step := (s.max - s.min) / 100
	if s.integer {
		step = 1
	}
	return s.set(s.val + delta*step)
}

func (s *slider) set(v float64) bool {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	if s.integer {
		v = float64(int(v + 0.5))
	}
	if v == s.val {
		return false
	}
	s.val = v
	return true
}

func (s *slider) draw(screen *ebiten.Image, focused bool) {
	// Track
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h), color.RGBA{R: 25, G: 30, B: 40, A: 255}, false)
	border := color.RGBA{R: 70, G: 80, B: 100, A: 255}
	if focused {
		border = color.RGBA{R: 130, G: 150, B: 190, A: 255}
	}
	vector.StrokeRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h), 1, border, false)

	// Fill and knob
	frac := (s.val - s.min) / (s.max - s.min)
	fillW := frac * float64(s.w)
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(fillW), float32(s.h), color.RGBA{R: 80, G: 100, B: 140, A: 255}, false)
	knobX := float64(s.x) + fillW
	vector.DrawFilledCircle(screen, float32(knobX), float32(s.y+s.h/2), 7, color.RGBA{R: 220, G: 225, B: 235, A: 255}, false)
	vector.StrokeCircle(screen, float32(knobX), float32(s.y+s.h/2), 7, 1, border, false)

	ebitenutil.DebugPrintAt(screen, s.label+": "+s.format(s.val), s.x, s.y-18)
}

type button struct {
	label      string
	x, y, w, h int

	hovered bool
	pressed bool
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// update returns true when the button was clicked this frame.
func (b *button) update() bool {
	mx, my := ebiten.CursorPosition()
	b.hovered = b.contains(mx, my)

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

func (b *button) draw(screen *ebiten.Image) {
	var bg color.Color
	switch {
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 6
	ebitenutil.DebugPrintAt(screen, b.label, b.x+(b.w-textWidth)/2, b.y+(b.h-12)/2)
}

// paletteBar shows the active gradient. Left click advances to the next
// palette, right click goes back.
type paletteBar struct {
	x, y, w, h int
	hovered    bool
}

// update returns the cycle direction: +1, -1 or 0.
func (pb *paletteBar) update() int {
	mx, my := ebiten.CursorPosition()
	pb.hovered = mx >= pb.x && mx <= pb.x+pb.w && my >= pb.y && my <= pb.y+pb.h
	if !pb.hovered {
		return 0
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 1
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return -1
	}
	return 0
}

func (pb *paletteBar) draw(screen *ebiten.Image, pal palette.Palette) {
	lut := pal.LUT(pb.w)
	for i, c := range lut {
		vector.DrawFilledRect(screen, float32(pb.x+i), float32(pb.y), 1, float32(pb.h), c, false)
	}
	border := color.RGBA{R: 70, G: 80, B: 100, A: 255}
	if pb.hovered {
		border = color.RGBA{R: 130, G: 150, B: 190, A: 255}
	}
	vector.StrokeRect(screen, float32(pb.x), float32(pb.y), float32(pb.w), float32(pb.h), 1, border, false)
	ebitenutil.DebugPrintAt(screen, "palette: "+pal.Name, pb.x, pb.y-18)
}
