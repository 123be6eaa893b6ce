package life

import (
	"sort"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

// Template is a named seed pattern given as live cell coordinates relative to
// its top-left corner.
type Template struct {
	Name        string
	Descr       string
	Coordinates []core.Point
}

var templates = map[string]Template{
	"glider": {
		Name:        "glider",
		Descr:       "the smallest spaceship, travels one cell diagonally every four generations",
		Coordinates: []core.Point{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}},
	},
	"blinker": {
		Name:        "blinker",
		Descr:       "period two oscillator",
		Coordinates: []core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	},
	"block": {
		Name:        "block",
		Descr:       "two by two still life",
		Coordinates: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	},
}

// LookupTemplate returns the template registered under name.
func LookupTemplate(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// TemplateNames lists the registered templates in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pattern renders the template into a clipboard pattern.
func (t Template) Pattern() core.Pattern {
	w, h := 0, 0
	for _, p := range t.Coordinates {
		w = max(w, p.X+1)
		h = max(h, p.Y+1)
	}
	rows := make([][]core.Cell, h)
	for y := range rows {
		rows[y] = make([]core.Cell, w)
	}
	for _, p := range t.Coordinates {
		rows[p.Y][p.X] = core.Alive
	}
	return core.NewPattern(rows)
}
