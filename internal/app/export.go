package app

import (
	"errors"
	"time"

	"github.com/ncruces/zenity"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/pinhole-diffraction/internal/config"
	"github.com/iburimskiy/pinhole-diffraction/internal/diffraction"
	"github.com/iburimskiy/pinhole-diffraction/internal/profile"
	"github.com/iburimskiy/pinhole-diffraction/internal/render"
)

// savePNG asks for a destination and writes the pattern at full export
// resolution with the active palette.
func (g *Game) savePNG() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save image"),
		zenity.Filename("pattern.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	field, err := g.exportField()
	if err != nil {
		return err
	}
	img := render.Image(field, render.Options{
		Palette:  g.palettes[g.paletteIdx],
		LogScale: g.logScale,
	})
	if err := render.SavePNG(path, img); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"path": path,
		"size": config.ExportSize,
	}).Info("Image saved")
	return nil
}

// saveProfile exports the center-row intensity profile as an HTML chart.
func (g *Game) saveProfile() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save intensity profile"),
		zenity.Filename("profile.html"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "HTML document",
			Patterns: []string{"*.html"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	field, err := g.exportField()
	if err != nil {
		return err
	}
	return profile.Save(path, field, g.params(config.ExportSize))
}

func (g *Game) exportField() (*diffraction.Field, error) {
	ap, err := g.aperture()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	field, err := diffraction.Compute(ap, g.params(config.ExportSize))
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"size": config.ExportSize,
		"time": time.Since(start),
	}).Debug("Export field computed")
	return field, nil
}
