//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"gol-ca/internal/app"
	"gol-ca/pkg/core"
	_ "gol-ca/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, shouldExit, err := app.Parse("life-gui", os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if shouldExit {
		return
	}
	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	factory, ok := core.Lookup(cfg.Engine)
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Engine)
	}
	engine, err := factory(cfg.EngineOptions())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(engine, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gol-ca: " + engine.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
