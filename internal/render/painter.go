//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a binary cell buffer into an image and draws it.
type GridPainter struct {
	layout  Layout
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for cells of cellSize pixels. A
// cellSize of 1 or less paints one pixel per cell without grid lines.
func NewGridPainter(w, h, cellSize int, palette Palette) *GridPainter {
	gp := &GridPainter{palette: palette}
	gp.Resize(w, h, cellSize)
	return gp
}

// Resize reallocates the backing image when the grid extent changes.
func (gp *GridPainter) Resize(w, h, cellSize int) {
	l := Layout{W: w, H: h, CellSize: cellSize}
	if gp.img != nil && l == gp.layout {
		return
	}
	gp.layout = l
	pw, ph := gp.Size()
	if gp.img != nil {
		gp.img.Dispose()
		gp.img = nil
	}
	gp.buf = make([]byte, 4*pw*ph)
	if pw > 0 && ph > 0 {
		gp.img = ebiten.NewImage(pw, ph)
	}
}

// Layout returns the current cell-to-pixel mapping.
func (gp *GridPainter) Layout() Layout { return gp.layout }

// Size returns the dimensions of the painted image in pixels.
func (gp *GridPainter) Size() (int, int) {
	if gp.layout.CellSize <= 1 {
		return gp.layout.W, gp.layout.H
	}
	return gp.layout.Bounds()
}

// Blit paints cells and draws them onto dst at the given scale. Buffers whose
// length does not match the layout are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if gp.img == nil || len(cells) != gp.layout.W*gp.layout.H {
		return
	}
	if gp.layout.CellSize <= 1 {
		fillBinaryRGBA(gp.buf, cells, gp.palette.Alive, gp.palette.Dead)
	} else {
		fillGridRGBA(gp.buf, cells, gp.layout, gp.palette)
	}
	gp.img.WritePixels(gp.buf)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
