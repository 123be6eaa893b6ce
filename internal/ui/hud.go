//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/HomelikeBrick42/GameOfLife/internal/session"
)

// HUD renders the rate readout and, when toggled on, the parameter panel.
type HUD struct {
	sess      *session.Session
	showPanel bool

	rateColor  color.Color
	panelColor color.Color
}

// NewHUD constructs a HUD for the provided session.
func NewHUD(sess *session.Session) *HUD {
	return &HUD{
		sess:       sess,
		rateColor:  color.RGBA{R: 230, G: 41, B: 55, A: 255},
		panelColor: color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

// TogglePanel shows or hides the parameter panel.
func (h *HUD) TogglePanel() {
	if h == nil {
		return
	}
	h.showPanel = !h.showPanel
}

// Draw paints the readouts in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(5, 5+float64(face.Metrics().Ascent.Ceil())*2)
	op.ColorScale.ScaleWithColor(h.rateColor)
	text.DrawWithOptions(screen, RateLabel(h.sess.TPS()), face, op)

	if !h.showPanel {
		return
	}
	y := 5 + lineHeight*3
	for _, line := range ReadoutLines(h.sess.Parameters()) {
		y += lineHeight
		text.Draw(screen, line, face, 5, y, h.panelColor)
	}
}
