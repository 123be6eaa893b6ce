package main

import (
	"log"

	"github.com/integrii/flaggy"

	"github.com/HomelikeBrick42/GameOfLife/internal/app"
	"github.com/HomelikeBrick42/GameOfLife/internal/session"
	"github.com/HomelikeBrick42/GameOfLife/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.FPS = 30
	parser := flaggy.NewParser("life-term")
	parser.Description = "Conway's Game of Life on a torus, in the terminal"
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

	console, err := term.NewConsole(sess, cfg.FPS)
	if err != nil {
		log.Fatal(err)
	}
	if err := console.Run(); err != nil {
		log.Fatal(err)
	}
}
