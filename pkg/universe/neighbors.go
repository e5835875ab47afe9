package universe

// liveNeighborCount returns how many of the eight cells around (row, column)
// are alive. Edges wrap, so the grid behaves as a torus.
func (u *Universe) liveNeighborCount(row, column uint32) uint8 {
	north := row - 1
	if row == 0 {
		north = u.height - 1
	}
	south := row + 1
	if row == u.height-1 {
		south = 0
	}
	west := column - 1
	if column == 0 {
		west = u.width - 1
	}
	east := column + 1
	if column == u.width-1 {
		east = 0
	}

	c := u.cells
	return c[u.index(north, west)] +
		c[u.index(north, column)] +
		c[u.index(north, east)] +
		c[u.index(row, west)] +
		c[u.index(row, east)] +
		c[u.index(south, west)] +
		c[u.index(south, column)] +
		c[u.index(south, east)]
}
