package universe

import (
	"fmt"
	"math/rand/v2"
)

// DefaultWidth and DefaultHeight are the extents used by New.
const (
	DefaultWidth  uint32 = 64
	DefaultHeight uint32 = 64
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col uint32
}

// Universe is a toroidal Game of Life grid stored row-major, one byte per
// cell. A Universe is not safe for concurrent use.
type Universe struct {
	width  uint32
	height uint32
	cells  []uint8
	next   []uint8

	generation uint64
	observer   Observer
}

// New returns a 64x64 universe with the default seed pattern.
func New() *Universe {
	return NewSized(DefaultWidth, DefaultHeight)
}

// NewSized returns a universe of the given extent with the default seed
// pattern.
func NewSized(width, height uint32) *Universe {
	u := &Universe{width: width, height: height}
	u.Reset()
	return u
}

// Width returns the number of columns.
func (u *Universe) Width() uint32 { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() uint32 { return u.height }

// Generation returns the number of ticks since the grid was last reseeded,
// filled or resized.
func (u *Universe) Generation() uint64 { return u.generation }

// Cells exposes the current generation without copying: width*height bytes,
// row-major, 0 for dead and 1 for alive. The slice must not be retained across
// Tick, Reset, SetAllDead, SetAllAlive, SetWidth, SetHeight or Randomize;
// those may overwrite or replace it.
func (u *Universe) Cells() []uint8 { return u.cells }

// At returns the cell at (row, column). Out-of-range coordinates panic.
func (u *Universe) At(row, column uint32) Cell {
	return Cell(u.cells[u.checkedIndex(row, column)])
}

// index assumes row < height and column < width.
func (u *Universe) index(row, column uint32) int {
	return int(row)*int(u.width) + int(column)
}

// checkedIndex guards the public entry points: a column past the last one
// would otherwise alias the next row.
func (u *Universe) checkedIndex(row, column uint32) int {
	if row >= u.height || column >= u.width {
		panic(fmt.Sprintf("universe: cell (%d, %d) outside %dx%d grid", row, column, u.width, u.height))
	}
	return u.index(row, column)
}

// Reset reseeds every cell: index i is alive iff i%2 == 0 or i%7 == 0.
func (u *Universe) Reset() {
	u.realloc()
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = uint8(Alive)
		} else {
			u.cells[i] = uint8(Dead)
		}
	}
	u.generation = 0
}

// SetAllDead kills every cell.
func (u *Universe) SetAllDead() { u.fill(Dead) }

// SetAllAlive revives every cell.
func (u *Universe) SetAllAlive() { u.fill(Alive) }

func (u *Universe) fill(c Cell) {
	u.realloc()
	for i := range u.cells {
		u.cells[i] = uint8(c)
	}
	u.generation = 0
}

// SetWidth changes the number of columns and reseeds the grid. The previous
// pattern is discarded.
func (u *Universe) SetWidth(width uint32) {
	u.width = width
	u.resize()
}

// SetHeight changes the number of rows and reseeds the grid. The previous
// pattern is discarded.
func (u *Universe) SetHeight(height uint32) {
	u.height = height
	u.resize()
}

func (u *Universe) resize() {
	u.cells = nil
	u.next = nil
	u.Reset()
}

// realloc makes sure both buffers hold exactly width*height cells.
func (u *Universe) realloc() {
	n := int(u.width) * int(u.height)
	if len(u.cells) != n {
		u.cells = make([]uint8, n)
	}
	if len(u.next) != n {
		u.next = make([]uint8, n)
	}
}

// ToggleCell flips the cell at (row, column). Out-of-range coordinates panic.
func (u *Universe) ToggleCell(row, column uint32) {
	idx := u.checkedIndex(row, column)
	c := Cell(u.cells[idx])
	c.Toggle()
	u.cells[idx] = uint8(c)
}

// SetCells marks every listed cell alive.
func (u *Universe) SetCells(coords ...Coord) {
	for _, c := range coords {
		u.cells[u.checkedIndex(c.Row, c.Col)] = uint8(Alive)
	}
}

// Randomize fills the grid with uniformly distributed live and dead cells.
func (u *Universe) Randomize(r *rand.Rand) {
	u.realloc()
	for i := range u.cells {
		u.cells[i] = uint8(r.IntN(2))
	}
	u.generation = 0
}

// Population returns the number of live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cells {
		n += int(c)
	}
	return n
}
