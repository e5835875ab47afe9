package core

import "strconv"

// Parameter describes a single integer tunable exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Value int
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider exposes the current parameter values of a sim.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable integer parameter shown by hosts
// as a -/+ pair. Values are clamped to [Min, Max] and move by Step.
type ParameterControl struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// Clamp moves value by direction steps and keeps it inside the bounds.
func (c ParameterControl) Clamp(value, direction int) int {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	return min(max(target, c.Min), c.Max)
}

// ParameterControlsProvider exposes the list of host-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows host interactions to update integer parameters.
// It reports whether key was recognised and value accepted.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FormatParameter renders a parameter as "Label: value".
func FormatParameter(p Parameter) string {
	return p.Label + ": " + strconv.Itoa(p.Value)
}
