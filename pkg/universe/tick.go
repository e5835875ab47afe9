package universe

// Tick advances the universe by one generation. Every cell is evaluated
// against the pre-tick grid; the result is written to the spare buffer and
// the two buffers are swapped once the whole grid is done.
func (u *Universe) Tick() {
	gen := u.generation
	if u.observer != nil {
		u.observer.TickStarted(gen)
	}

	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			idx := u.index(row, col)
			cell := Cell(u.cells[idx])
			u.next[idx] = uint8(nextState(cell, u.liveNeighborCount(row, col)))
		}
	}
	u.cells, u.next = u.next, u.cells
	u.generation++

	if u.observer != nil {
		u.observer.TickFinished(gen)
	}
}

// nextState applies B3/S23.
func nextState(cell Cell, liveNeighbors uint8) Cell {
	switch {
	case cell == Alive && liveNeighbors < 2:
		// underpopulation
		return Dead
	case cell == Alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return Alive
	case cell == Alive && liveNeighbors > 3:
		// overpopulation
		return Dead
	case cell == Dead && liveNeighbors == 3:
		// reproduction
		return Alive
	default:
		return cell
	}
}
