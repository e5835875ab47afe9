package ui

import (
	"fmt"

	"torus-life/internal/core"
)

// StatusLines returns the text block shown above the controls: grid extent,
// generation and population when the sim reports them, then frame-rate
// statistics when fps is non-nil.
func StatusLines(sim core.Sim, fps *core.FrameStats) []string {
	size := sim.Size()
	lines := []string{fmt.Sprintf("Grid: %dx%d", size.W, size.H)}
	if g, ok := sim.(core.Generationer); ok {
		total := size.W * size.H
		density := 0.0
		if total > 0 {
			density = float64(g.Population()) / float64(total) * 100
		}
		lines = append(lines,
			fmt.Sprintf("Generation: %d", g.Generation()),
			fmt.Sprintf("Alive: %d (%.1f%%)", g.Population(), density),
		)
	}
	if fps != nil {
		lines = append(lines, "")
		lines = append(lines, fps.Lines()...)
	}
	return lines
}

// Neighborhood returns the eight cells around (x, y) on a w*h torus in
// reading order (NW, N, NE, W, E, SW, S, SE) as [2]int{x, y} pairs.
func Neighborhood(x, y, w, h int) [8][2]int {
	var out [8][2]int
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = [2]int{(x + dx + w) % w, (y + dy + h) % h}
			i++
		}
	}
	return out
}
