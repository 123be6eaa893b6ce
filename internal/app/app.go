//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/HomelikeBrick42/GameOfLife/internal/render"
	"github.com/HomelikeBrick42/GameOfLife/internal/session"
	"github.com/HomelikeBrick42/GameOfLife/internal/ui"
	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
	last  time.Time
}

// New constructs a Game for the provided session.
func New(sess *session.Session, scale, padding int) *Game {
	size := sess.Size()
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(size.W, size.H, scale, padding, render.DefaultPalette()),
		overlay: ui.NewOverlay(sess, scale),
		hud:     ui.NewHUD(sess),
		scale:   scale,
	}
}

// Update polls input and advances the session by the wall time since the
// previous update.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.hud.TogglePanel()
	}

	now := time.Now()
	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	g.sess.Frame(g.input(elapsed))
	return nil
}

func (g *Game) input(elapsed time.Duration) session.Input {
	mx, my := ebiten.CursorPosition()
	rightPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	return session.Input{
		Elapsed: elapsed,
		Cursor:  core.Pt(floorDiv(mx, g.scale), floorDiv(my, g.scale)),

		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Faster:      inpututil.IsKeyJustPressed(ebiten.KeyW),
		Slower:      inpututil.IsKeyJustPressed(ebiten.KeyS),
		Step:        inpututil.IsKeyJustPressed(ebiten.KeyN),
		Clear:       inpututil.IsKeyJustPressed(ebiten.KeyC),
		Reseed:      inpututil.IsKeyJustPressed(ebiten.KeyR),

		ToggleCell:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RegionStart: rightPressed,
		Paste:       rightPressed,
		RegionEnd:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),

		RegionHeld: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		PasteHeld:  ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Grid().Cells())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
