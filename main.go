package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/pinhole-diffraction/internal/app"
	"github.com/iburimskiy/pinhole-diffraction/internal/config"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("PINHOLE_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	g := app.New(config.LoadPresets())

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Pinhole diffraction patterns")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
