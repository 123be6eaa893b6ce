package life

import (
	"golang.org/x/sync/errgroup"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

// CountGrid holds the number of live neighbours of every cell of a grid.
type CountGrid struct {
	W, H int
	data []uint8
}

// NewCountGrid allocates a zeroed count grid.
func NewCountGrid(w, h int) *CountGrid {
	return &CountGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// At returns the neighbour count for (x, y).
func (c *CountGrid) At(x, y int) int { return int(c.data[y*c.W+x]) }

// Counts exposes the row-major count slice.
func (c *CountGrid) Counts() []uint8 { return c.data }

func (c *CountGrid) reset(w, h int) {
	if c.W != w || c.H != h || len(c.data) != w*h {
		c.W, c.H = w, h
		c.data = make([]uint8, w*h)
		return
	}
	for i := range c.data {
		c.data[i] = 0
	}
}

// axisTable maps every index on an axis of length n to its wrapped
// neighbours at offsets -1, 0 and +1.
func axisTable(n int) [][3]int {
	t := make([][3]int, n)
	for v := range t {
		for o := -1; o <= 1; o++ {
			if n == 1 {
				t[v][o+1] = 0
				continue
			}
			t[v][o+1] = core.Wrap(v, o, n)
		}
	}
	return t
}

// CountNeighbors fills counts with the live-neighbour totals of g. Every live
// cell adds one to each of its eight wrapped neighbours, so the result does not
// depend on visiting order.
func CountNeighbors(g *core.Grid, counts *CountGrid) {
	w, h := g.W, g.H
	counts.reset(w, h)
	cols, rows := axisTable(w), axisTable(h)
	cells := g.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y*w+x] != core.Alive {
				continue
			}
			for dy := 0; dy < 3; dy++ {
				ny := rows[y][dy]
				for dx := 0; dx < 3; dx++ {
					if dx == 1 && dy == 1 {
						continue
					}
					counts.data[ny*w+cols[x][dx]]++
				}
			}
		}
	}
}

// CountNeighborsParallel computes the same counts as CountNeighbors by
// splitting the rows into bands handled by separate goroutines. Each band only
// reads g and writes its own rows of counts.
func CountNeighborsParallel(g *core.Grid, counts *CountGrid, workers int) {
	w, h := g.W, g.H
	if workers <= 1 || h < 2 {
		CountNeighbors(g, counts)
		return
	}
	if workers > h {
		workers = h
	}
	counts.reset(w, h)
	cols, rows := axisTable(w), axisTable(h)
	cells := g.Cells()
	band := (h + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < h; start += band {
		start, end := start, min(start+band, h)
		eg.Go(func() error {
			for y := start; y < end; y++ {
				for x := 0; x < w; x++ {
					n := uint8(0)
					for dy := 0; dy < 3; dy++ {
						ny := rows[y][dy]
						for dx := 0; dx < 3; dx++ {
							if dx == 1 && dy == 1 {
								continue
							}
							if cells[ny*w+cols[x][dx]] == core.Alive {
								n++
							}
						}
					}
					counts.data[y*w+x] = n
				}
			}
			return nil
		})
	}
	// Bands never fail; Wait only joins them.
	eg.Wait()
}
