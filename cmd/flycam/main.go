package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/config"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "controls.yaml", "controls file (built-in defaults if missing)")
	watch := flag.Bool("watch", false, "reload the controls file when it changes")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	controls, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load controls", zap.String("path", *configPath), zap.Error(err))
	}

	var watcher *config.Watcher
	if *watch {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			logger.Warn("controls hot reload disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	game, err := NewGame(controls, watcher, logger)
	if err != nil {
		logger.Fatal("build game", zap.Error(err))
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("flycam")

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		logger.Fatal("run", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
