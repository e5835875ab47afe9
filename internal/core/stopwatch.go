package core

import (
	"log"
	"time"

	"torus-life/pkg/universe"
)

// Stopwatch times each tick of a universe. It satisfies universe.Observer.
type Stopwatch struct {
	label  string
	logger *log.Logger
	now    func() time.Time

	started time.Time
	last    time.Duration
	total   time.Duration
	max     time.Duration
	ticks   int
}

// NewStopwatch returns a stopwatch that logs every tick to logger when
// logger is non-nil.
func NewStopwatch(label string, logger *log.Logger) *Stopwatch {
	return &Stopwatch{label: label, logger: logger, now: time.Now}
}

// TickStarted marks the beginning of a tick.
func (s *Stopwatch) TickStarted(uint64) {
	s.started = s.now()
}

// TickFinished records the elapsed time since TickStarted.
func (s *Stopwatch) TickFinished(gen uint64) {
	d := s.now().Sub(s.started)
	s.last = d
	s.total += d
	s.ticks++
	if d > s.max {
		s.max = d
	}
	if s.logger != nil {
		s.logger.Printf("%s: generation %d took %s", s.label, gen+1, d)
	}
}

// Last returns the duration of the most recent tick.
func (s *Stopwatch) Last() time.Duration { return s.last }

// Max returns the slowest tick seen.
func (s *Stopwatch) Max() time.Duration { return s.max }

// Ticks returns the number of timed ticks.
func (s *Stopwatch) Ticks() int { return s.ticks }

// Mean returns the average tick duration.
func (s *Stopwatch) Mean() time.Duration {
	if s.ticks == 0 {
		return 0
	}
	return s.total / time.Duration(s.ticks)
}

var _ universe.Observer = (*Stopwatch)(nil)
