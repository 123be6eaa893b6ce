package term

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

// Fillers are the strings drawn for each kind of cell.
type Fillers struct {
	Alive    string
	Dead     string
	Selected string
	Cursor   string
	Crop     string
}

// DefaultFillers returns the coloured block characters used on a terminal.
func DefaultFillers() Fillers {
	return Fillers{
		Alive:    aurora.Green("█").BgBrightGreen().String(),
		Dead:     "░",
		Selected: aurora.BgBlue("▒").String(),
		Cursor:   aurora.Reverse("+").String(),
		Crop:     aurora.Red("The field is larger than the view").BgBlack().String(),
	}
}

type fieldView struct {
	grid      *core.Grid
	selection core.Rect
	selecting bool
	cursor    core.Point
}

// render draws at most maxW x maxH cells, one character per cell. When the
// grid does not fit, the last visible row is replaced by the crop notice.
func (f fieldView) render(maxW, maxH int, fill Fillers) string {
	g := f.grid
	crop := g.W > maxW || g.H > maxH
	var b strings.Builder
	for y := 0; y < g.H && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(fill.Crop)
			break
		}
		for x := 0; x < g.W && x < maxW; x++ {
			p := core.Pt(x, y)
			switch {
			case p == f.cursor:
				b.WriteString(fill.Cursor)
			case g.At(x, y) == core.Alive:
				b.WriteString(fill.Alive)
			case f.selecting && f.selection.Contains(p):
				b.WriteString(fill.Selected)
			default:
				b.WriteString(fill.Dead)
			}
		}
	}
	return b.String()
}
