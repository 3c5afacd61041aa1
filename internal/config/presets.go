package config

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/pinhole-diffraction/internal/palette"
)

// Presets holds optional startup overrides loaded from the user config
// directory. Nil pointer fields keep the built-in default.
type Presets struct {
	Wavenumber *float64        `yaml:"wavenumber"`
	ShiftX     *float64        `yaml:"shift_x"`
	ShiftY     *float64        `yaml:"shift_y"`
	Holes      *int            `yaml:"pinholes"`
	Radius     *float64        `yaml:"ring_radius"`
	Palette    string          `yaml:"palette"`
	LogScale   *bool           `yaml:"log_scale"`
	Palettes   []PalettePreset `yaml:"palettes"`
}

// PalettePreset is a user-defined gradient with hex color stops.
type PalettePreset struct {
	Name  string       `yaml:"name"`
	Stops []StopPreset `yaml:"stops"`
}

// StopPreset is one gradient stop in the preset file.
type StopPreset struct {
	Pos   float64 `yaml:"pos"`
	Color string  `yaml:"color"`
}

// Palette converts the preset into a validated palette.
func (pp PalettePreset) Palette() (palette.Palette, error) {
	stops := make([]palette.Stop, len(pp.Stops))
	for i, s := range pp.Stops {
		c, err := palette.ParseHex(s.Color)
		if err != nil {
			return palette.Palette{}, fmt.Errorf("palette %q stop %d: %w", pp.Name, i, err)
		}
		stops[i] = palette.Stop{Pos: s.Pos, Color: c}
	}
	p, err := palette.New(pp.Name, stops)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("palette %q: %w", pp.Name, err)
	}
	return p, nil
}

// PresetsPath returns the location of the user preset file.
func PresetsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "presets.yaml"), nil
}

// LoadPresets reads the user preset file. A missing file yields empty
// presets; a malformed file is logged and ignored so the application
// still starts with defaults.
func LoadPresets() *Presets {
	path, err := PresetsPath()
	if err != nil {
		log.WithError(err).Debug("No user config directory")
		return &Presets{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("path", path).Warn("Failed to read presets")
		}
		return &Presets{}
	}
	p, err := ParsePresets(data)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("Ignoring malformed presets")
		return &Presets{}
	}
	log.WithField("path", path).Debug("Presets loaded")
	return p
}

// ParsePresets decodes preset YAML.
func ParsePresets(data []byte) (*Presets, error) {
	p := &Presets{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	return p, nil
}
