package life

import (
	"torus-life/internal/core"
	"torus-life/pkg/universe"
)

var (
	_ core.Sim                       = (*Life)(nil)
	_ core.Toggler                   = (*Life)(nil)
	_ core.Filler                    = (*Life)(nil)
	_ core.Generationer              = (*Life)(nil)
	_ core.ParameterProvider         = (*Life)(nil)
	_ core.ParameterControlsProvider = (*Life)(nil)
	_ core.IntParameterSetter        = (*Life)(nil)
	_ core.Observable                = (*Life)(nil)
)

// Life adapts a universe.Universe to the host-facing core.Sim contract.
type Life struct {
	u     *universe.Universe
	ticks int
	seed  int64
}

// New returns a Life simulation seeded with the stripe pattern.
func New(w, h int) *Life {
	return NewWithConfig(Config{Width: w, Height: h, TicksPerStep: 1})
}

// NewWithConfig builds a Life simulation from cfg.
func NewWithConfig(cfg Config) *Life {
	if cfg.TicksPerStep < ticksMin {
		cfg.TicksPerStep = ticksMin
	}
	l := &Life{
		u:     universe.NewSized(uint32(max(cfg.Width, 0)), uint32(max(cfg.Height, 0))),
		ticks: cfg.TicksPerStep,
	}
	l.Reset(cfg.Seed)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	return core.Size{W: int(l.u.Width()), H: int(l.u.Height())}
}

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.u.Cells() }

// Universe returns the wrapped engine.
func (l *Life) Universe() *universe.Universe { return l.u }

// Observe attaches o to the wrapped universe.
func (l *Life) Observe(o universe.Observer) { l.u.SetObserver(o) }

// Reset reseeds the grid. Seed 0 restores the stripe pattern; other seeds
// fill the grid randomly and reproducibly.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	if seed == 0 {
		l.u.Reset()
		return
	}
	l.u.Randomize(core.NewRand(seed))
}

// Step advances the configured number of generations.
func (l *Life) Step() {
	for range l.ticks {
		l.u.Tick()
	}
}

// Toggle flips the cell at column x, row y. Coordinates outside the grid are
// ignored because they come from pointer input.
func (l *Life) Toggle(x, y int) {
	s := l.Size()
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return
	}
	l.u.ToggleCell(uint32(y), uint32(x))
}

// Clear kills every cell.
func (l *Life) Clear() { l.u.SetAllDead() }

// Fill revives every cell.
func (l *Life) Fill() { l.u.SetAllAlive() }

// Generation returns the number of ticks since the last reseed.
func (l *Life) Generation() uint64 { return l.u.Generation() }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.u.Population() }

// Seed returns the seed of the last Reset.
func (l *Life) Seed() int64 { return l.seed }

// TicksPerStep returns the number of generations advanced per Step.
func (l *Life) TicksPerStep() int { return l.ticks }

// Parameters reports the current tunables.
func (l *Life) Parameters() core.ParameterSnapshot {
	s := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Value: s.W},
				{Key: "h", Label: "Height", Value: s.H},
			},
		},
		{
			Name: "Speed",
			Params: []core.Parameter{
				{Key: "ticks", Label: "Ticks/frame", Value: l.ticks},
			},
		},
	}}
}

// ParameterControls lists the parameters hosts may adjust.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Step: extentStep, Min: extentMin, Max: extentMax},
		{Key: "h", Label: "Height", Step: extentStep, Min: extentMin, Max: extentMax},
		{Key: "ticks", Label: "Ticks/frame", Step: 1, Min: ticksMin, Max: ticksMax},
	}
}

// SetIntParameter updates a tunable. Changing an extent reseeds the grid.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "w":
		if value <= 0 || value > maxExtent {
			return false
		}
		l.u.SetWidth(uint32(value))
	case "h":
		if value <= 0 || value > maxExtent {
			return false
		}
		l.u.SetHeight(uint32(value))
	case "ticks":
		if value < ticksMin || value > ticksMax {
			return false
		}
		l.ticks = value
	default:
		return false
	}
	return true
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
