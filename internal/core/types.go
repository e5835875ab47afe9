package core

import (
	"sort"

	"torus-life/pkg/universe"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract a host needs to drive and paint a grid simulation.
// Cells must return Size().W*Size().H bytes in row-major order.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Toggler is implemented by sims whose cells can be flipped by the user.
type Toggler interface {
	Toggle(x, y int)
}

// Filler is implemented by sims that can be cleared or filled in one call.
type Filler interface {
	Clear()
	Fill()
}

// Generationer reports how many steps have elapsed since the last reset.
type Generationer interface {
	Generation() uint64
	Population() int
}

// Observable is implemented by sims that expose tick entry and exit points
// for instrumentation such as Stopwatch.
type Observable interface {
	Observe(universe.Observer)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
