package life

import (
	"slices"
	"testing"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

func aliveSet(g *core.Grid) map[[2]int]bool {
	set := map[[2]int]bool{}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) == core.Alive {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func expectAlive(t *testing.T, g *core.Grid, want map[[2]int]bool, stage string) {
	t.Helper()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.At(x, y) == core.Alive
			if want[[2]int{x, y}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	for _, size := range []int{3, 5, 8} {
		life := New(size, size)
		set := func(x, y int) { life.Grid().Set(x, y, core.Alive) }
		set(1, 0)
		set(1, 1)
		set(1, 2)

		life.Step()
		expectAlive(t, life.Grid(), map[[2]int]bool{
			{0, 1}: true,
			{1, 1}: true,
			{2, 1}: true,
		}, "first step")

		life.Step()
		expectAlive(t, life.Grid(), map[[2]int]bool{
			{1, 0}: true,
			{1, 1}: true,
			{1, 2}: true,
		}, "second step")
	}
}

func TestIsolatedCellDies(t *testing.T) {
	for _, size := range []core.Size{{W: 3, H: 3}, {W: 7, H: 4}, {W: 20, H: 11}} {
		life := New(size.W, size.H)
		life.Grid().Set(size.W/2, size.H/2, core.Alive)
		life.Step()
		if n := life.Grid().Population(); n != 0 {
			t.Fatalf("%dx%d: %d cells alive after isolating step", size.W, size.H, n)
		}
	}
}

func TestBlockIsStill(t *testing.T) {
	for _, size := range []int{4, 6, 9} {
		life := New(size, size)
		block, _ := LookupTemplate("block")
		life.Grid().Paste(core.Pt(1, 1), block.Pattern())
		before := aliveSet(life.Grid())
		life.Step()
		expectAlive(t, life.Grid(), before, "block")
	}
}

func TestBlockAcrossSeamIsStill(t *testing.T) {
	life := New(6, 5)
	block, _ := LookupTemplate("block")
	life.Grid().Paste(core.Pt(5, 4), block.Pattern())
	want := map[[2]int]bool{{5, 4}: true, {0, 4}: true, {5, 0}: true, {0, 0}: true}
	expectAlive(t, life.Grid(), want, "settled")
	life.Step()
	expectAlive(t, life.Grid(), want, "after step")
}

func TestGliderTravelsAroundTorus(t *testing.T) {
	life := New(8, 8)
	glider, _ := LookupTemplate("glider")
	life.Grid().Paste(core.Pt(0, 0), glider.Pattern())
	start := slices.Clone(life.Cells())

	// A glider moves one cell down-right every four generations, so after
	// 4*8 steps it is back where it started on an 8x8 torus.
	for i := 0; i < 32; i++ {
		life.Step()
		if n := life.Grid().Population(); n != 5 {
			t.Fatalf("generation %d: population %d, want 5", life.Generation(), n)
		}
	}
	if !slices.Equal(start, life.Cells()) {
		t.Fatal("glider did not return to its starting cells")
	}
	if life.Generation() != 32 {
		t.Fatalf("generation %d, want 32", life.Generation())
	}
}

func TestStepDoesNotReadUpdatedCells(t *testing.T) {
	// Updating in place would let (2,1) count the newborn (1,1) and come alive too.
	life := New(5, 5)
	for _, p := range []core.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}} {
		life.Grid().Set(p.X, p.Y, core.Alive)
	}
	life.Step()
	expectAlive(t, life.Grid(), map[[2]int]bool{{1, 1}: true}, "generational update")
}

func TestWorkersMatchSerial(t *testing.T) {
	serial := New(37, 23)
	parallel := New(37, 23)
	serial.Reset(7)
	parallel.Reset(7)
	parallel.SetWorkers(4)

	for i := 0; i < 20; i++ {
		serial.Step()
		parallel.Step()
		if !slices.Equal(serial.Cells(), parallel.Cells()) {
			t.Fatalf("generation %d: parallel stepping diverged", i+1)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.Reset(99)
	b.Step()
	b.Reset(99)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Reset with the same seed produced different boards")
	}
	if b.Generation() != 0 {
		t.Fatalf("Reset must rewind the generation, got %d", b.Generation())
	}
}

func TestAdvancePanicsOnSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Advance(core.NewGrid(3, 3), NewCountGrid(3, 3), core.NewGrid(4, 3))
}
