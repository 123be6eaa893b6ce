package term

import (
	"testing"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

var plain = Fillers{Alive: "#", Dead: ".", Selected: "~", Cursor: "+", Crop: "!"}

func TestRenderField(t *testing.T) {
	g := core.NewGrid(4, 3)
	g.Set(0, 0, core.Alive)
	g.Set(2, 1, core.Alive)
	f := fieldView{
		grid:      g,
		selection: core.Rect{Min: core.Pt(1, 1), Max: core.Pt(3, 2)},
		selecting: true,
		cursor:    core.Pt(3, 0),
	}
	want := "#..+\n.~#~\n.~~~"
	if got := f.render(10, 10, plain); got != want {
		t.Fatalf("render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderFieldCrops(t *testing.T) {
	g := core.NewGrid(5, 4)
	f := fieldView{grid: g, cursor: core.Pt(-1, -1)}
	want := ".....\n!"
	if got := f.render(5, 2, plain); got != want {
		t.Fatalf("render %q, want %q", got, want)
	}
	want = "...\n...\n...\n!"
	if got := f.render(3, 4, plain); got != want {
		t.Fatalf("render %q, want %q", got, want)
	}
}
