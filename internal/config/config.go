package config

import "math"

const (
	WindowWidth  = 900
	WindowHeight = 620

	// Pattern grids: the preview is recomputed live while dragging,
	// exports run at full resolution.
	PreviewSize = 160
	ExportSize  = 600

	// Control panel layout
	PanelX      = 20
	PanelWidth  = 240
	SliderY     = 50
	SliderStep  = 58
	SliderH     = 14
	ButtonW     = 110
	ButtonH     = 36
	PaletteBarH = 22

	// Viewport for the rendered pattern
	ViewX    = 290
	ViewY    = 20
	ViewSize = 580
)

// Parameter ranges and defaults
const (
	WavenumberMin     = 1.0
	WavenumberMax     = 1000.0
	WavenumberDefault = 350.0

	ShiftMin     = 0.0
	ShiftMax     = 2 * math.Pi
	ShiftDefault = 0.32 * math.Pi

	HolesMin     = 1
	HolesMax     = 25
	HolesDefault = 8

	RadiusMin     = 0.1
	RadiusMax     = 10.0
	RadiusDefault = 2.0
)

// AppName is used for the window title and the user config directory.
const AppName = "pinhole-diffraction"
