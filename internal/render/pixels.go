package render

import "image/color"

// Palette holds the colours used to paint a binary grid.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Grid  color.Color
}

// DefaultPalette is black cells on white separated by light grey lines.
var DefaultPalette = Palette{
	Alive: color.Black,
	Dead:  color.White,
	Grid:  color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
}

// Layout maps grid cells to pixels: each cell is CellSize pixels square with a
// one pixel grid line around it.
type Layout struct {
	W, H     int
	CellSize int
}

// Bounds returns the pixel dimensions of the painted grid.
func (l Layout) Bounds() (int, int) {
	return (l.CellSize+1)*l.W + 1, (l.CellSize+1)*l.H + 1
}

// CellAt maps a pixel position to (column, row). ok is false on grid lines
// and outside the grid.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	if px < 1 || py < 1 || l.CellSize <= 0 {
		return 0, 0, false
	}
	pitch := l.CellSize + 1
	x, y = (px-1)/pitch, (py-1)/pitch
	if x >= l.W || y >= l.H {
		return 0, 0, false
	}
	if (px-1)%pitch == l.CellSize || (py-1)%pitch == l.CellSize {
		return 0, 0, false
	}
	return x, y, true
}

// Pick maps a pixel of the painted image to (column, row). Unlike CellAt it
// also handles the line-free layout used when CellSize is 1 or less.
func (l Layout) Pick(px, py int) (x, y int, ok bool) {
	if l.CellSize > 1 {
		return l.CellAt(px, py)
	}
	if px < 0 || py < 0 || px >= l.W || py >= l.H {
		return 0, 0, false
	}
	return px, py, true
}

// CellRect returns the top-left pixel and side length of the painted area of
// cell (x, y), excluding grid lines.
func (l Layout) CellRect(x, y int) (px, py, side int) {
	if l.CellSize <= 1 {
		return x, y, 1
	}
	pitch := l.CellSize + 1
	return 1 + x*pitch, 1 + y*pitch, l.CellSize
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillGridRGBA paints cells into buf, which must hold 4 bytes per pixel of
// l.Bounds(). cells must hold l.W*l.H bytes; non-zero bytes are alive.
func fillGridRGBA(buf []byte, cells []uint8, l Layout, p Palette) {
	bw, bh := l.Bounds()
	alive, dead, grid := rgba(p.Alive), rgba(p.Dead), rgba(p.Grid)
	pitch := l.CellSize + 1
	for py := 0; py < bh; py++ {
		for px := 0; px < bw; px++ {
			col := grid
			onLine := px == 0 || py == 0 || (px-1)%pitch == l.CellSize || (py-1)%pitch == l.CellSize
			if !onLine {
				idx := ((py-1)/pitch)*l.W + (px-1)/pitch
				if cells[idx] != 0 {
					col = alive
				} else {
					col = dead
				}
			}
			copy(buf[(py*bw+px)*4:], col[:])
		}
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into one RGBA pixel per cell.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := rgba(on), rgba(off)
	for i, c := range cells {
		if c != 0 {
			copy(buf[i*4:], onPx[:])
			continue
		}
		copy(buf[i*4:], offPx[:])
	}
}
