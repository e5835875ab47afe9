package life

import "strconv"

// Bounds for the host controls, matching the width/height inputs of the
// browser front end.
const (
	extentMin  = 64
	extentMax  = 128
	extentStep = 32

	ticksMin = 1
	ticksMax = 10

	// maxExtent caps configured extents so a typo cannot allocate gigabytes.
	maxExtent = 4096
)

// Config controls the Life simulation.
type Config struct {
	Width  int
	Height int

	// TicksPerStep is the number of generations advanced per Step.
	TicksPerStep int

	// Seed selects the initial pattern: 0 is the deterministic stripe
	// pattern, anything else a random fill.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, TicksPerStep: 1}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= maxExtent {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= maxExtent {
			c.Height = parsed
		}
	}
	if v, ok := cfg["ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= ticksMin && parsed <= ticksMax {
			c.TicksPerStep = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Map is the inverse of FromMap.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"ticks": strconv.Itoa(c.TicksPerStep),
		"seed":  strconv.FormatInt(c.Seed, 10),
	}
}
