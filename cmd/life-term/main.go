package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/life"
	"torus-life/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

func main() {
	logger := log.New(os.Stderr, "life-term: ", log.LstdFlags)
	defer core.ReportPanic(logger)

	if err := run(logger); err != nil {
		logger.Fatalf("%+v", err)
	}
}

func run(logger *log.Logger) error {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		return err
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return errors.Errorf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}
	sim := factory(cfg.SimConfig())

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialise screen")
	}
	defer screen.Fini()

	// Log lines would tear the alternate screen; keep them only when asked.
	hostLogger := log.New(io.Discard, "", 0)
	var sw *core.Stopwatch
	if cfg.Verbose {
		hostLogger = logger
		if obs, ok := sim.(core.Observable); ok {
			sw = core.NewStopwatch("tick", nil)
			obs.Observe(sw)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := term.New(screen, sim, term.Options{
		TPS:    cfg.TPS,
		Paused: cfg.Paused,
		Seed:   cfg.Seed,
		Logger: hostLogger,
	})
	if err := host.Run(ctx); err != nil {
		return err
	}

	screen.Fini()
	if g, ok := sim.(core.Generationer); ok {
		fmt.Printf("stopped at generation %d with %d cells alive\n", g.Generation(), g.Population())
	}
	if sw != nil && sw.Ticks() > 0 {
		logger.Printf("%d ticks, mean %s, max %s", sw.Ticks(), sw.Mean(), sw.Max())
	}
	return nil
}
