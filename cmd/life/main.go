//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"github.com/HomelikeBrick42/GameOfLife/internal/app"
	"github.com/HomelikeBrick42/GameOfLife/internal/session"
)

func main() {
	cfg := app.NewConfig()
	parser := flaggy.NewParser("life")
	parser.Description = "Conway's Game of Life on a torus"
	parser.ShowHelpOnUnexpected = true
	cfg.Bind(parser)
	if err := parser.Parse(); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sess, err := session.New(cfg.SessionConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sess, cfg.Scale, cfg.Padding)
	size := sess.Size()

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
