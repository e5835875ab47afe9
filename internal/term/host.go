// Package term drives a simulation in a terminal through tcell. Every cell
// takes two columns so the grid keeps a roughly square aspect.
package term

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"torus-life/internal/core"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// errQuit ends the event loop when the user asks to leave.
var errQuit = errors.New("quit requested")

// Options configures a Host.
type Options struct {
	TPS    int
	Paused bool
	Seed   int64
	Logger *log.Logger
}

// Host owns a screen and a simulation. The event loop and the tick loop run
// on separate goroutines; mu serialises every access to the sim.
type Host struct {
	screen tcell.Screen
	sim    core.Sim
	step   *core.FixedStep
	fps    *core.FrameStats
	logger *log.Logger

	mu          sync.Mutex
	paused      bool
	tickOnce    bool
	seed        int64
	lastButtons tcell.ButtonMask
}

// New wraps an initialised screen.
func New(screen tcell.Screen, sim core.Sim, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		screen: screen,
		sim:    sim,
		step:   core.NewFixedStep(opts.TPS),
		fps:    core.NewFrameStats(),
		logger: logger,
		paused: opts.Paused,
		seed:   opts.Seed,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.screen.HideCursor()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		// Unblocks PollEvent; fails harmlessly if the queue is full.
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	g.Go(func() error { return h.eventLoop() })
	g.Go(func() error { return h.tickLoop(ctx) })

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (h *Host) eventLoop() error {
	for {
		ev := h.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalised.
			return errQuit
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			h.screen.Sync()
		case *tcell.EventKey:
			if h.handleKey(ev) {
				return errQuit
			}
		case *tcell.EventMouse:
			h.handleMouse(ev)
		}
	}
}

func (h *Host) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(h.step.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			h.advance(h.step.Steps(now))
			h.fps.Frame(now)
			h.Draw()
		}
	}
}

// advance steps the sim n times unless paused; a pending single step runs
// even while paused.
func (h *Host) advance(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.paused {
		if h.tickOnce {
			h.sim.Step()
			h.tickOnce = false
		}
		return
	}
	for range n {
		h.sim.Step()
	}
}

// handleKey applies a key press and reports whether the host should quit.
func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		h.paused = !h.paused
	case 'n':
		h.tickOnce = true
	case 'r':
		h.sim.Reset(h.seed)
	case 's':
		h.seed = core.FreshSeed()
		h.sim.Reset(h.seed)
	case 'd':
		if f, ok := h.sim.(core.Filler); ok {
			f.Clear()
		}
	case 'a':
		if f, ok := h.sim.(core.Filler); ok {
			f.Fill()
		}
	case '[':
		h.adjust("w", -1)
	case ']':
		h.adjust("w", 1)
	case '{':
		h.adjust("h", -1)
	case '}':
		h.adjust("h", 1)
	case '-':
		h.adjust("ticks", -1)
	case '+', '=':
		h.adjust("ticks", 1)
	}
	return false
}

// adjust moves the named parameter one control step. Callers hold mu.
func (h *Host) adjust(key string, direction int) {
	controls, ok := h.sim.(core.ParameterControlsProvider)
	if !ok {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	setter, ok := h.sim.(core.IntParameterSetter)
	if !ok {
		return
	}
	current, ok := provider.Parameters().Lookup(key)
	if !ok {
		return
	}
	for _, ctrl := range controls.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		target := ctrl.Clamp(current.Value, direction)
		if target != current.Value && setter.SetIntParameter(key, target) {
			h.logger.Print(core.FormatParameter(core.Parameter{Key: key, Label: ctrl.Label, Value: target}))
		}
		return
	}
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
	h.lastButtons = buttons
	if !pressed {
		return
	}
	x, y := ev.Position()
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.sim.(core.Toggler); ok {
		t.Toggle(x/2, y)
	}
}

// Draw paints the visible part of the grid and a status line below it.
func (h *Host) Draw() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.screen.Clear()
	sw, sh := h.screen.Size()
	size := h.sim.Size()
	cells := h.sim.Cells()
	rows := min(size.H, sh-1)
	cols := min(size.W, sw/2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := deadStyle
			if cells[y*size.W+x] != 0 {
				style = aliveStyle
			}
			h.screen.SetContent(2*x, y, ' ', nil, style)
			h.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	if rows >= 0 && rows < sh {
		drawText(h.screen, 0, rows, h.statusLine(), statusStyle)
	}
	h.screen.Show()
}

func (h *Host) statusLine() string {
	size := h.sim.Size()
	line := fmt.Sprintf("%dx%d", size.W, size.H)
	if g, ok := h.sim.(core.Generationer); ok {
		line += fmt.Sprintf("  gen %d  alive %d", g.Generation(), g.Population())
	}
	if p, ok := h.sim.(core.ParameterProvider); ok {
		if ticks, ok := p.Parameters().Lookup("ticks"); ok {
			line += fmt.Sprintf("  ticks/frame %d", ticks.Value)
		}
	}
	line += fmt.Sprintf("  fps %.0f", h.fps.Latest())
	if h.paused {
		line += "  [paused]"
	}
	return line
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
