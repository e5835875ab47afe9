//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"
	"torus-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	hoverColor    = color.NRGBA{R: 40, G: 120, B: 220, A: 110}
	neighborColor = color.NRGBA{R: 255, G: 140, B: 40, A: 90}
)

// Overlay highlights the cell under the cursor and its eight toroidal
// neighbours. Toggled with H.
type Overlay struct {
	sim    core.Sim
	layout func() render.Layout
	scale  int
	show   bool
	hover  [2]int
	onMap  bool
	pixel  *ebiten.Image
}

// NewOverlay constructs an overlay over the grid described by layout, drawn
// at the given pixel scale.
func NewOverlay(sim core.Sim, layout func() render.Layout, scale int) *Overlay {
	o := &Overlay{sim: sim, layout: layout, scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the cursor; gridWidth is the on-screen width of the grid.
func (o *Overlay) Update(gridWidth int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || mx >= gridWidth {
		o.onMap = false
		return
	}
	x, y, ok := o.layout().Pick(mx/o.scale, my/o.scale)
	o.onMap = ok
	o.hover = [2]int{x, y}
}

// Draw renders the highlight onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.onMap {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	l := o.layout()
	for _, n := range Neighborhood(o.hover[0], o.hover[1], size.W, size.H) {
		o.fillCell(screen, l, n[0], n[1], neighborColor)
	}
	o.fillCell(screen, l, o.hover[0], o.hover[1], hoverColor)
}

func (o *Overlay) fillCell(screen *ebiten.Image, l render.Layout, x, y int, c color.Color) {
	px, py, side := l.CellRect(x, y)
	s := float64(o.scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(side)*s, float64(side)*s)
	op.GeoM.Translate(float64(px)*s, float64(py)*s)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
