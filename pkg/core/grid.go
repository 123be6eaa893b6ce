package core

import "fmt"

// Grid stores a fixed-size 2D field of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions. Non-positive
// dimensions are raised to one.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) addresses a cell of the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). Coordinates outside the grid panic.
func (g *Grid) At(x, y int) Cell {
	g.mustContain(x, y)
	return g.data[y*g.W+x]
}

// Set stores c at (x, y). Coordinates outside the grid panic.
func (g *Grid) Set(x, y int, c Cell) {
	g.mustContain(x, y)
	g.data[y*g.W+x] = c
}

// Toggle flips the cell at (x, y).
func (g *Grid) Toggle(x, y int) {
	g.mustContain(x, y)
	idx := y*g.W + x
	g.data[idx] = g.data[idx].Toggled()
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	return WrapAny(x, g.W), WrapAny(y, g.H)
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

func (g *Grid) mustContain(x, y int) {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("core.Grid: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}
