//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

// GridPainter keeps a single RGBA image of the grid at screen resolution.
type GridPainter struct {
	w, h    int
	scale   int
	padding int
	pal     Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a w*h grid drawn at scale pixels per
// cell.
func NewGridPainter(w, h, scale, padding int, pal Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, scale: scale, padding: padding, pal: pal}
	gp.buf = make([]byte, 4*w*scale*h*scale)
	gp.img = ebiten.NewImage(w*scale, h*scale)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Cell) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.w, gp.h, gp.scale, gp.padding, gp.pal)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.scale, gp.h * gp.scale }
