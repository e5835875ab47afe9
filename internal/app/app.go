//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	fps     *core.FrameStats
	logger  *log.Logger

	cellSize int
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	size     core.Size
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, logger *log.Logger) *Game {
	size := sim.Size()
	fps := core.NewFrameStats()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H, cfg.CellSize, render.DefaultPalette),
		hud:      ui.NewHUD(sim, fps, cfg.HUDWidth),
		fps:      fps,
		logger:   logger,
		cellSize: cfg.CellSize,
		scale:    cfg.Scale,
		paused:   cfg.Paused,
		seed:     cfg.Seed,
		size:     size,
	}
	g.overlay = ui.NewOverlay(sim, g.painter.Layout, g.scale)
	return g
}

// WindowSize returns the window size that fits the grid and the HUD.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(core.FreshSeed())
	}
	if filler, ok := g.sim.(core.Filler); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyD) {
			filler.Clear()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyA) {
			filler.Fill()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}

	gridW, _ := g.gridPixels()
	g.hud.Update(gridW)
	g.overlay.Update(gridW)
	g.syncSize()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleClick(mx, my int) {
	toggler, ok := g.sim.(core.Toggler)
	if !ok || g.scale <= 0 {
		return
	}
	if x, y, ok := g.painter.Layout().Pick(mx/g.scale, my/g.scale); ok {
		toggler.Toggle(x, y)
	}
}

// syncSize follows extent changes made through the HUD.
func (g *Game) syncSize() {
	size := g.sim.Size()
	if size == g.size {
		return
	}
	g.size = size
	g.painter.Resize(size.W, size.H, g.cellSize)
	ebiten.SetWindowSize(g.WindowSize())
	if g.logger != nil {
		g.logger.Printf("grid resized to %dx%d", size.W, size.H)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fps.Frame(time.Now())
	screen.Fill(background)
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
	gridW, _ := g.gridPixels()
	g.hud.Draw(screen, gridW)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.gridPixels()
	return w + g.hud.Width(), max(h, g.hud.MinHeight())
}

func (g *Game) gridPixels() (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}
