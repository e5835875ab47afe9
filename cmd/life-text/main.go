// Command life-text advances a universe a number of generations and prints
// the result as glyph rows.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"torus-life/internal/core"
	"torus-life/pkg/universe"

	"github.com/pkg/errors"
)

type options struct {
	width       int
	height      int
	generations int
	seed        int64
	every       bool
}

func main() {
	logger := log.New(os.Stderr, "life-text: ", 0)
	defer core.ReportPanic(logger)

	var opts options
	flag.IntVar(&opts.width, "w", int(universe.DefaultWidth), "grid width in cells")
	flag.IntVar(&opts.height, "h", int(universe.DefaultHeight), "grid height in cells")
	flag.IntVar(&opts.generations, "n", 1, "generations to advance")
	flag.Int64Var(&opts.seed, "seed", 0, "0 for the stripe pattern, otherwise a random fill seed")
	flag.BoolVar(&opts.every, "every", false, "print every generation, not just the last")
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		logger.Fatalf("%+v", err)
	}
}

func run(w io.Writer, opts options) error {
	if opts.width <= 0 || opts.height <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", opts.width, opts.height)
	}
	if opts.generations < 0 {
		return errors.Errorf("generations must not be negative, got %d", opts.generations)
	}

	u := universe.NewSized(uint32(opts.width), uint32(opts.height))
	if opts.seed != 0 {
		u.Randomize(core.NewRand(opts.seed))
	}

	for range opts.generations {
		if opts.every {
			if err := printGrid(w, u); err != nil {
				return err
			}
		}
		u.Tick()
	}
	return printGrid(w, u)
}

func printGrid(w io.Writer, u *universe.Universe) error {
	_, err := fmt.Fprintf(w, "generation %d, %d alive\n%s\n", u.Generation(), u.Population(), u.Render())
	return errors.Wrap(err, "[printGrid] failed to write grid")
}
