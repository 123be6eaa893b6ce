package core

// Cell is the state of a single grid location.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = iota
	// Alive marks an occupied cell.
	Alive
)

// String returns the state name.
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Next applies Conway's rule to a cell surrounded by the given number of live
// neighbours. Any count other than 2 or 3 kills a live cell and any count other
// than 3 leaves a dead cell dead, so out-of-range counts are harmless.
func (c Cell) Next(neighbors int) Cell {
	switch {
	case c == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case c == Dead && neighbors == 3:
		return Alive
	default:
		return Dead
	}
}

// Toggled returns the opposite state.
func (c Cell) Toggled() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}
