package render

import (
	"image/color"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

// Palette holds the colours used to paint a grid.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Gap   color.Color
}

// DefaultPalette paints live cells white and dead cells black on a dark grey
// background.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.White,
		Dead:  color.Black,
		Gap:   color.RGBA{R: 80, G: 80, B: 80, A: 255},
	}
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillCellsRGBA paints a w*h grid into buf as RGBA pixels, scale pixels per
// cell with padding pixels of gap colour on every side of each cell. buf must
// hold 4*(w*scale)*(h*scale) bytes.
func fillCellsRGBA(buf []byte, cells []core.Cell, w, h, scale, padding int, pal Palette) {
	alive, dead, gap := rgba8(pal.Alive), rgba8(pal.Dead), rgba8(pal.Gap)
	stride := w * scale
	for py := 0; py < h*scale; py++ {
		cy, ly := py/scale, py%scale
		rowGap := ly < padding || ly >= scale-padding
		for px := 0; px < stride; px++ {
			cx, lx := px/scale, px%scale
			col := gap
			if !rowGap && lx >= padding && lx < scale-padding {
				col = dead
				if cells[cy*w+cx] == core.Alive {
					col = alive
				}
			}
			base := (py*stride + px) * 4
			buf[base+0] = col[0]
			buf[base+1] = col[1]
			buf[base+2] = col[2]
			buf[base+3] = col[3]
		}
	}
}
