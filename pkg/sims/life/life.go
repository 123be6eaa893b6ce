package life

import (
	"fmt"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

// Advance writes the generation following cur into next using the neighbour
// totals in counts. All three must share the same dimensions. next must not
// alias cur.
func Advance(cur *core.Grid, counts *CountGrid, next *core.Grid) {
	if cur.W != counts.W || cur.H != counts.H || cur.W != next.W || cur.H != next.H {
		panic(fmt.Sprintf("life.Advance: size mismatch grid %dx%d counts %dx%d next %dx%d",
			cur.W, cur.H, counts.W, counts.H, next.W, next.H))
	}
	src, dst := cur.Cells(), next.Cells()
	for i, c := range src {
		dst[i] = c.Next(int(counts.data[i]))
	}
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	w, h    int
	cur     *core.Grid
	nxt     *core.Grid
	counts  *CountGrid
	workers int
	gen     int
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cur := core.NewGrid(w, h)
	return &Life{
		w:       cur.W,
		h:       cur.H,
		cur:     cur,
		nxt:     core.NewGrid(cur.W, cur.H),
		counts:  NewCountGrid(cur.W, cur.H),
		workers: 1,
	}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Grid returns the current generation. The pointer is only valid until the
// next Step.
func (l *Life) Grid() *core.Grid { return l.cur }

// Cells exposes the current grid values.
func (l *Life) Cells() []core.Cell { return l.cur.Cells() }

// Generation reports how many steps have run since the last reset.
func (l *Life) Generation() int { return l.gen }

// SetWorkers selects how many goroutines count neighbours. Values below two
// keep counting on the calling goroutine.
func (l *Life) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	l.workers = n
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	core.NewRNG(seed).FillCells(l.cur.Cells(), 0.5)
	l.gen = 0
}

// Clear kills every cell and rewinds the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if l.workers > 1 {
		CountNeighborsParallel(l.cur, l.counts, l.workers)
	} else {
		CountNeighbors(l.cur, l.counts)
	}
	Advance(l.cur, l.counts, l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
