package core

import (
	"fmt"
	"math"
	"time"
)

// fpsWindow is the number of recent frames kept for the summary.
const fpsWindow = 100

// FrameStats tracks frames per second over a sliding window of frames.
type FrameStats struct {
	frames []float64
	next   int
	last   time.Time
	latest float64
}

// NewFrameStats returns an empty tracker.
func NewFrameStats() *FrameStats {
	return &FrameStats{frames: make([]float64, 0, fpsWindow)}
}

// Frame records a frame rendered at now. The first call only sets the
// reference time.
func (s *FrameStats) Frame(now time.Time) {
	if s.last.IsZero() {
		s.last = now
		return
	}
	delta := now.Sub(s.last)
	s.last = now
	if delta <= 0 {
		return
	}
	s.latest = float64(time.Second) / float64(delta)
	if len(s.frames) < fpsWindow {
		s.frames = append(s.frames, s.latest)
		return
	}
	s.frames[s.next] = s.latest
	s.next = (s.next + 1) % fpsWindow
}

// Latest returns the rate of the most recent frame.
func (s *FrameStats) Latest() float64 { return s.latest }

// Summary returns the mean, min and max over the window. All three are zero
// before the second frame.
func (s *FrameStats) Summary() (mean, lo, hi float64) {
	if len(s.frames) == 0 {
		return 0, 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for _, f := range s.frames {
		sum += f
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}
	return sum / float64(len(s.frames)), lo, hi
}

// Lines formats the tracker as display lines.
func (s *FrameStats) Lines() []string {
	mean, lo, hi := s.Summary()
	return []string{
		"Frames per Second:",
		fmt.Sprintf("         latest = %d", int(math.Round(s.latest))),
		fmt.Sprintf("avg of last %d = %d", fpsWindow, int(math.Round(mean))),
		fmt.Sprintf("min of last %d = %d", fpsWindow, int(math.Round(lo))),
		fmt.Sprintf("max of last %d = %d", fpsWindow, int(math.Round(hi))),
	}
}
