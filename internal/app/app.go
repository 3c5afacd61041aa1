// Package app is the interactive shell: it draws the controls, keeps the
// preview in sync with the parameters and drives exports.
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/pinhole-diffraction/internal/config"
	"github.com/iburimskiy/pinhole-diffraction/internal/diffraction"
	"github.com/iburimskiy/pinhole-diffraction/internal/palette"
	"github.com/iburimskiy/pinhole-diffraction/internal/render"
)

const (
	sliderWavenumber = iota
	sliderShiftX
	sliderShiftY
	sliderRadius
	sliderHoles
)

// Game implements ebiten.Game.
type Game struct {
	palettes   []palette.Palette
	paletteIdx int
	logScale   bool

	sliders    []*slider
	focused    int
	saveBtn    *button
	profileBtn *button
	palBar     *paletteBar

	field *diffraction.Field
	view  *ebiten.Image

	gen       uint64
	computing bool
	pending   bool
	results   chan computeResult

	lastErr error
}

// New builds the game state, applying user presets on top of the
// defaults, and kicks off the first preview computation.
func New(presets *config.Presets) *Game {
	g := &Game{
		palettes: palette.Presets(),
		results:  make(chan computeResult, 1),
		palBar: &paletteBar{
			x: config.PanelX, w: config.PanelWidth, h: config.PaletteBarH,
		},
	}

	for _, pp := range presets.Palettes {
		p, err := pp.Palette()
		if err != nil {
			log.WithError(err).Warn("Skipping user palette")
			continue
		}
		g.palettes = append(g.palettes, p)
	}
	if presets.Palette != "" {
		for i, p := range g.palettes {
			if p.Name == presets.Palette {
				g.paletteIdx = i
				break
			}
		}
	}
	if presets.LogScale != nil {
		g.logScale = *presets.LogScale
	}

	g.buildControls(presets)
	g.requestRecompute()
	return g
}

func (g *Game) buildControls(presets *config.Presets) {
	pct := func(v float64) string { return fmt.Sprintf("%.0f %%", 100*v/config.ShiftMax) }
	y := config.SliderY
	next := func() int { v := y; y += config.SliderStep; return v }

	g.sliders = []*slider{
		{
			label: "wavenumber", min: config.WavenumberMin, max: config.WavenumberMax,
			val: clampF(orDefault(presets.Wavenumber, config.WavenumberDefault), config.WavenumberMin, config.WavenumberMax),
			x:   config.PanelX, y: next(), w: config.PanelWidth, h: config.SliderH,
			format: func(v float64) string { return fmt.Sprintf("%.0f", v) },
		},
		{
			label: "x shift", min: config.ShiftMin, max: config.ShiftMax,
			val: clampF(orDefault(presets.ShiftX, config.ShiftDefault), config.ShiftMin, config.ShiftMax),
			x:   config.PanelX, y: next(), w: config.PanelWidth, h: config.SliderH,
			format: pct,
		},
		{
			label: "y shift", min: config.ShiftMin, max: config.ShiftMax,
			val: clampF(orDefault(presets.ShiftY, config.ShiftDefault), config.ShiftMin, config.ShiftMax),
			x:   config.PanelX, y: next(), w: config.PanelWidth, h: config.SliderH,
			format: pct,
		},
		{
			label: "ring radius", min: config.RadiusMin, max: config.RadiusMax,
			val: clampF(orDefault(presets.Radius, config.RadiusDefault), config.RadiusMin, config.RadiusMax),
			x:   config.PanelX, y: next(), w: config.PanelWidth, h: config.SliderH,
			format: func(v float64) string { return fmt.Sprintf("%.1f", v) },
		},
		{
			label: "pinholes", min: config.HolesMin, max: config.HolesMax,
			val:     clampF(float64(orDefaultInt(presets.Holes, config.HolesDefault)), config.HolesMin, config.HolesMax),
			integer: true,
			x:       config.PanelX, y: next(), w: config.PanelWidth, h: config.SliderH,
			format: func(v float64) string { return fmt.Sprintf("%d", int(v)) },
		},
	}

	g.palBar.y = y + 18
	y += 18 + config.PaletteBarH + 24
	g.saveBtn = &button{label: "Save PNG", x: config.PanelX, y: y, w: config.ButtonW, h: config.ButtonH}
	g.profileBtn = &button{label: "Profile", x: config.PanelX + config.PanelWidth - config.ButtonW, y: y, w: config.ButtonW, h: config.ButtonH}
}

func (g *Game) aperture() (diffraction.Aperture, error) {
	return diffraction.Ring(int(g.sliders[sliderHoles].val), g.sliders[sliderRadius].val)
}

func (g *Game) params(size int) diffraction.Params {
	return diffraction.Params{
		Wavenumber: g.sliders[sliderWavenumber].val,
		ShiftX:     g.sliders[sliderShiftX].val,
		ShiftY:     g.sliders[sliderShiftY].val,
		Width:      size,
		Height:     size,
	}
}

func (g *Game) Update() error {
	changed := false
	for i, s := range g.sliders {
		if s.update() {
			changed = true
		}
		if s.dragging {
			g.focused = i
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) && g.sliders[g.focused].nudge(-1) {
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) && g.sliders[g.focused].nudge(1) {
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.focused = (g.focused + 1) % len(g.sliders)
	}

	if dir := g.palBar.update(); dir != 0 {
		n := len(g.palettes)
		g.paletteIdx = (g.paletteIdx + dir + n) % n
		g.refreshView()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.logScale = !g.logScale
		g.refreshView()
	}

	if g.saveBtn.update() {
		if err := g.savePNG(); err != nil {
			g.lastErr = err
			log.WithError(err).Error("Image export failed")
		}
	}
	if g.profileBtn.update() {
		if err := g.saveProfile(); err != nil {
			g.lastErr = err
			log.WithError(err).Error("Profile export failed")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if changed {
		g.requestRecompute()
	}
	g.drainResults()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 17, B: 24, A: 255})

	// Pattern viewport
	vector.StrokeRect(screen, config.ViewX-1, config.ViewY-1, config.ViewSize+2, config.ViewSize+2, 1, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)
	if g.view != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(config.ViewX, config.ViewY)
		screen.DrawImage(g.view, op)
	}

	for i, s := range g.sliders {
		s.draw(screen, i == g.focused)
	}
	g.palBar.draw(screen, g.palettes[g.paletteIdx])
	g.saveBtn.draw(screen)
	g.profileBtn.draw(screen)

	status := "Tab: next control, arrows: nudge, L: log scale, Esc/Q: quit"
	if g.computing {
		status = "Computing... | " + status
	}
	if g.logScale {
		status += " | log"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// refreshView re-maps the current field through the active palette
// without recomputing intensities.
func (g *Game) refreshView() {
	if g.field == nil {
		return
	}
	img := render.Image(g.field, render.Options{
		Palette:  g.palettes[g.paletteIdx],
		LogScale: g.logScale,
	})
	g.view = ebiten.NewImageFromImage(render.Fit(img, config.ViewSize, config.ViewSize))
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func orDefaultInt(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
