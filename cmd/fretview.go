package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/alecthomas/kingpin.v2"

	game_log "github.com/tunelab/fretview/internal/log"
	"github.com/tunelab/fretview/internal/ui"
)

var (
	logLevel = kingpin.Flag("log-level", "Log level (DEBUG, INFO, WARN, ERROR, NONE)").Default("INFO").String()
	width    = kingpin.Flag("width", "Initial window width").Default("980").Int()
	height   = kingpin.Flag("height", "Initial window height").Default("340").Int()
)

func main() {
	kingpin.Parse()

	logger := game_log.New(os.Stdout, game_log.LevelFromString(*logLevel))
	editor := ui.NewEditor(logger)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Fretview - Bass Fretboard")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(editor); err != nil {
		logger.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
}
