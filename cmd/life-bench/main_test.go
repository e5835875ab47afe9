package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"torus-life/internal/core"
)

func TestExtentListSet(t *testing.T) {
	var l extentList
	for _, v := range []string{"64x32", "8x8"} {
		if err := l.Set(v); err != nil {
			t.Fatalf("Set(%q): %v", v, err)
		}
	}
	if got := l.String(); got != "64x32,8x8" {
		t.Fatalf("String() = %q", got)
	}
	for _, bad := range []string{"64", "ax4", "4xb", "0x4", "4x-1"} {
		if err := l.Set(bad); err == nil {
			t.Fatalf("Set(%q) accepted", bad)
		}
	}
}

func TestBenchRunsEveryExtent(t *testing.T) {
	extents := []core.Size{{W: 16, H: 16}, {W: 4, H: 4}, {W: 8, H: 4}}
	results, err := bench(context.Background(), extents, 5, 2, 7, nil)
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	wantOrder := []core.Size{{W: 4, H: 4}, {W: 8, H: 4}, {W: 16, H: 16}}
	for i, r := range results {
		if r.size != wantOrder[i] {
			t.Fatalf("result %d is %v, want %v", i, r.size, wantOrder[i])
		}
		if r.ticks != 5 {
			t.Fatalf("%v timed %d ticks, want 5", r.size, r.ticks)
		}
		if r.max < r.mean {
			t.Fatalf("%v max %s below mean %s", r.size, r.max, r.mean)
		}
	}
}

func TestBenchRejectsNonPositiveSteps(t *testing.T) {
	if _, err := bench(context.Background(), []core.Size{{W: 4, H: 4}}, 0, 1, 0, nil); err == nil {
		t.Fatal("bench accepted zero steps")
	}
}

func TestBenchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bench(ctx, []core.Size{{W: 4, H: 4}}, 10, 1, 0, nil); err == nil {
		t.Fatal("bench ignored a cancelled context")
	}
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	report(&out, []result{{size: core.Size{W: 2, H: 2}, ticks: 3, mean: 40 * time.Nanosecond, max: time.Microsecond, population: 1}}, time.Second)
	for _, want := range []string{"elapsed 1s", "2x2", "ticks=3", "per-cell=10ns", "alive=1"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("report %q missing %q", out.String(), want)
		}
	}
}
