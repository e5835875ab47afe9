// Command life-bench times Tick across several grid extents. Each extent
// runs its own universe on its own goroutine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"torus-life/internal/core"
	"torus-life/pkg/universe"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// extentList collects repeatable -size WxH flags.
type extentList []core.Size

func (l *extentList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = fmt.Sprintf("%dx%d", s.W, s.H)
	}
	return strings.Join(parts, ",")
}

func (l *extentList) Set(value string) error {
	w, h, ok := strings.Cut(value, "x")
	if !ok {
		return errors.Errorf("extent %q is not WxH", value)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return errors.Wrapf(err, "[extentList.Set] bad width in %q", value)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return errors.Wrapf(err, "[extentList.Set] bad height in %q", value)
	}
	if width <= 0 || height <= 0 {
		return errors.Errorf("extent %q must be positive", value)
	}
	*l = append(*l, core.Size{W: width, H: height})
	return nil
}

type result struct {
	size       core.Size
	ticks      int
	mean       time.Duration
	max        time.Duration
	population int
}

func main() {
	logger := log.New(os.Stderr, "life-bench: ", log.LstdFlags)
	defer core.ReportPanic(logger)

	steps := flag.Int("steps", 500, "generations to run per extent")
	workers := flag.Int("workers", runtime.NumCPU(), "extents benchmarked in parallel")
	seed := flag.Int64("seed", 1337, "random fill seed; 0 uses the stripe pattern")
	verbose := flag.Bool("v", false, "log every tick")
	var extents extentList
	flag.Var(&extents, "size", "grid extent in WxH form (repeatable)")
	flag.Parse()

	if len(extents) == 0 {
		extents = extentList{{W: 64, H: 64}, {W: 96, H: 96}, {W: 128, H: 128}, {W: 512, H: 512}}
	}

	var tickLog *log.Logger
	if *verbose {
		tickLog = logger
	}

	fmt.Printf("Benchmarking %d extents (%d workers, %d steps)\n", len(extents), *workers, *steps)
	start := time.Now()
	results, err := bench(context.Background(), extents, *steps, *workers, *seed, tickLog)
	if err != nil {
		logger.Fatalf("%+v", err)
	}
	report(os.Stdout, results, time.Since(start))
}

// bench runs every extent and returns the results ordered by cell count.
func bench(ctx context.Context, extents []core.Size, steps, workers int, seed int64, tickLog *log.Logger) ([]result, error) {
	if steps <= 0 {
		return nil, errors.Errorf("steps must be positive, got %d", steps)
	}
	results := make([]result, len(extents))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, size := range extents {
		g.Go(func() error {
			res, err := runExtent(ctx, size, steps, seed, tickLog)
			if err != nil {
				return errors.Wrapf(err, "[bench] %dx%d", size.W, size.H)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].size.W*results[i].size.H < results[j].size.W*results[j].size.H
	})
	return results, nil
}

func runExtent(ctx context.Context, size core.Size, steps int, seed int64, tickLog *log.Logger) (result, error) {
	u := universe.NewSized(uint32(size.W), uint32(size.H))
	if seed != 0 {
		u.Randomize(core.NewRand(seed))
	}
	sw := core.NewStopwatch(fmt.Sprintf("%dx%d", size.W, size.H), tickLog)
	u.SetObserver(sw)

	for range steps {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		u.Tick()
	}
	return result{
		size:       size,
		ticks:      sw.Ticks(),
		mean:       sw.Mean(),
		max:        sw.Max(),
		population: u.Population(),
	}, nil
}

func report(w io.Writer, results []result, elapsed time.Duration) {
	fmt.Fprintf(w, "\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, r := range results {
		cells := r.size.W * r.size.H
		perCell := time.Duration(0)
		if cells > 0 {
			perCell = r.mean / time.Duration(cells)
		}
		fmt.Fprintf(w, "%9s ticks=%d mean=%s max=%s per-cell=%s alive=%d\n",
			fmt.Sprintf("%dx%d", r.size.W, r.size.H), r.ticks, r.mean, r.max, perCell, r.population)
	}
}
