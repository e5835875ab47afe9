//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger := log.New(os.Stderr, "ca: ", log.LstdFlags)
	defer core.ReportPanic(logger)

	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		logger.Fatalf("%+v", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}
	sim := factory(cfg.SimConfig())

	if obs, ok := sim.(core.Observable); ok && cfg.Verbose {
		obs.Observe(core.NewStopwatch("tick", logger))
	}

	game := app.New(sim, cfg, logger)

	ebiten.SetWindowTitle("torus-life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
