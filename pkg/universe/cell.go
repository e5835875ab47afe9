package universe

// Cell is the state of a single grid position. Each cell occupies one byte in
// the grid buffer so hosts can read the buffer without conversion.
type Cell uint8

const (
	// Dead is encoded as 0 in the cell buffer.
	Dead Cell = 0
	// Alive is encoded as 1 in the cell buffer.
	Alive Cell = 1
)

// Toggle flips the cell between Dead and Alive.
func (c *Cell) Toggle() {
	if *c == Alive {
		*c = Dead
		return
	}
	*c = Alive
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}
