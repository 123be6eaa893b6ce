//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/HomelikeBrick42/GameOfLife/internal/session"
)

const (
	selectionStroke = 5
	bannerScale     = 3
)

// Overlay draws the selection rectangle and the pause banner on top of the grid.
type Overlay struct {
	sess  *session.Session
	scale int

	selectionColor color.Color
	bannerColor    color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sess *session.Session, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{
		sess:           sess,
		scale:          scale,
		selectionColor: color.RGBA{R: 0, G: 121, B: 241, A: 255},
		bannerColor:    color.White,
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if r, ok := o.sess.Selection(); ok {
		s := float32(o.scale)
		vector.StrokeRect(screen,
			float32(r.Min.X)*s, float32(r.Min.Y)*s,
			float32(r.Dx())*s, float32(r.Dy())*s,
			selectionStroke, o.selectionColor, false)
	}

	if o.sess.Paused() {
		bounds := text.BoundString(basicfont.Face7x13, PausedBanner)
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(bannerScale, bannerScale)
		op.GeoM.Translate(
			float64(sw-bounds.Dx()*bannerScale)/2,
			float64(sh)/2,
		)
		op.ColorScale.ScaleWithColor(o.bannerColor)
		text.DrawWithOptions(screen, PausedBanner, basicfont.Face7x13, op)
	}
}
