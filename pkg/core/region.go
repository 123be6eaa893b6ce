package core

// Pattern is a rectangular block of cells lifted out of a grid. The zero value
// is an empty pattern.
type Pattern struct {
	W, H  int
	cells []Cell
}

// NewPattern builds a pattern from rows of cells. Rows shorter than the widest
// row are padded with dead cells.
func NewPattern(rows [][]Cell) Pattern {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	if w == 0 {
		return Pattern{}
	}
	p := Pattern{W: w, H: len(rows), cells: make([]Cell, w*len(rows))}
	for y, row := range rows {
		copy(p.cells[y*w:], row)
	}
	return p
}

// Empty reports whether the pattern holds no cells.
func (p Pattern) Empty() bool { return p.W == 0 || p.H == 0 }

// At returns the pattern cell at column i, row j.
func (p Pattern) At(i, j int) Cell { return p.cells[j*p.W+i] }

// Cells exposes the row-major cell slice.
func (p Pattern) Cells() []Cell { return p.cells }

// Capture copies the cells covered by r out of the grid. The rectangle is
// clipped to the grid; a rectangle entirely outside yields an empty pattern.
func (g *Grid) Capture(r Rect) Pattern {
	r = RectFromCorners(r.Min, r.Max)
	if r.Min.X < 0 {
		r.Min.X = 0
	}
	if r.Min.Y < 0 {
		r.Min.Y = 0
	}
	if r.Max.X >= g.W {
		r.Max.X = g.W - 1
	}
	if r.Max.Y >= g.H {
		r.Max.Y = g.H - 1
	}
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return Pattern{}
	}

	p := Pattern{W: r.Dx(), H: r.Dy()}
	p.cells = make([]Cell, p.W*p.H)
	for j := 0; j < p.H; j++ {
		src := g.Index(r.Min.X, r.Min.Y+j)
		copy(p.cells[j*p.W:(j+1)*p.W], g.data[src:src+p.W])
	}
	return p
}

// Paste writes p into the grid with its top-left cell at anchor, wrapping
// around both edges. Patterns larger than the grid wind around the torus and
// later cells overwrite earlier ones. The anchor itself may lie anywhere.
func (g *Grid) Paste(anchor Point, p Pattern) {
	if p.Empty() {
		return
	}
	for j := 0; j < p.H; j++ {
		y := WrapAny(anchor.Y+j, g.H)
		for i := 0; i < p.W; i++ {
			x := WrapAny(anchor.X+i, g.W)
			g.data[y*g.W+x] = p.cells[j*p.W+i]
		}
	}
}
