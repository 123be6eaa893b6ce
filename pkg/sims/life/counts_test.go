package life

import (
	"slices"
	"testing"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

func TestCountNeighborsWrapsCorners(t *testing.T) {
	g := core.NewGrid(4, 3)
	g.Set(0, 0, core.Alive)
	counts := NewCountGrid(0, 0)
	CountNeighbors(g, counts)

	want := map[[2]int]int{
		{1, 0}: 1, {3, 0}: 1,
		{0, 1}: 1, {1, 1}: 1, {3, 1}: 1,
		{0, 2}: 1, {1, 2}: 1, {3, 2}: 1,
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if got := counts.At(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("count at (%d,%d) = %d, want %d", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestCountNeighborsFullGrid(t *testing.T) {
	g := core.NewGrid(5, 5)
	for i := range g.Cells() {
		g.Cells()[i] = core.Alive
	}
	counts := NewCountGrid(5, 5)
	CountNeighbors(g, counts)
	for i, c := range counts.Counts() {
		if c != 8 {
			t.Fatalf("cell %d count %d, want 8", i, c)
		}
	}
}

func TestCountNeighborsReusesBuffer(t *testing.T) {
	g := core.NewGrid(4, 4)
	g.Set(1, 1, core.Alive)
	counts := NewCountGrid(4, 4)
	CountNeighbors(g, counts)
	g.Clear()
	CountNeighbors(g, counts)
	for i, c := range counts.Counts() {
		if c != 0 {
			t.Fatalf("stale count %d at %d", c, i)
		}
	}
}

func TestCountNeighborsParallelMatchesSerial(t *testing.T) {
	sizes := []core.Size{{W: 1, H: 1}, {W: 2, H: 3}, {W: 9, H: 4}, {W: 31, H: 17}}
	for _, size := range sizes {
		g := core.NewGrid(size.W, size.H)
		core.NewRNG(int64(size.W*size.H)).FillCells(g.Cells(), 0.4)

		serial := NewCountGrid(0, 0)
		CountNeighbors(g, serial)
		for _, workers := range []int{2, 3, 8, 64} {
			parallel := NewCountGrid(0, 0)
			CountNeighborsParallel(g, parallel, workers)
			if !slices.Equal(serial.Counts(), parallel.Counts()) {
				t.Fatalf("%dx%d with %d workers: counts differ", size.W, size.H, workers)
			}
		}
	}
}

func TestTemplatePattern(t *testing.T) {
	glider, ok := LookupTemplate("glider")
	if !ok {
		t.Fatal("glider template missing")
	}
	p := glider.Pattern()
	if p.W != 3 || p.H != 3 {
		t.Fatalf("glider pattern %dx%d, want 3x3", p.W, p.H)
	}
	alive := 0
	for _, c := range p.Cells() {
		if c == core.Alive {
			alive++
		}
	}
	if alive != 5 {
		t.Fatalf("glider pattern has %d live cells, want 5", alive)
	}
	if !slices.Equal(TemplateNames(), []string{"blinker", "block", "glider"}) {
		t.Fatalf("unexpected template names %v", TemplateNames())
	}
}
