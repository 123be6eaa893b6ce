package main

import (
	"fmt"
	"log"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"github.com/HomelikeBrick42/GameOfLife/internal/app"
	"github.com/HomelikeBrick42/GameOfLife/internal/bench"
	"github.com/HomelikeBrick42/GameOfLife/internal/session"
)

func main() {
	cfg := app.NewConfig()
	cfg.Pattern = session.PatternRandom
	cfg.TPS = 240
	seconds := 10.0
	quiet := false

	parser := flaggy.NewParser("life-bench")
	parser.Description = "Runs the Game of Life headless for a fixed amount of simulated time"
	parser.ShowHelpOnUnexpected = true
	cfg.Bind(parser)
	parser.Float64(&seconds, "l", "seconds", "Simulated seconds to run")
	parser.Bool(&quiet, "q", "quiet", "Only print the summary")
	if err := parser.Parse(); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if seconds <= 0 {
		log.Fatalf("invalid configuration: seconds must be positive, got %v", seconds)
	}

	sess, err := session.New(cfg.SessionConfig())
	if err != nil {
		log.Fatal(err)
	}

	frame := time.Second / time.Duration(cfg.FPS)
	total := time.Duration(seconds * float64(time.Second))
	var progress func(bench.Result)
	if !quiet {
		every := max(1, int(cfg.TPS))
		next := every
		progress = func(r bench.Result) {
			if r.Steps >= next {
				log.Printf("generation %d after %v", r.Generation, r.Simulated)
				next += every
			}
		}
	}

	res := bench.Run(sess, frame, total, progress)
	for _, f := range res.Fields() {
		fmt.Printf("%s: %v\n", aurora.Bold(aurora.Cyan(f.Name)), aurora.Green(f.Value))
	}
	if res.Wall > 0 {
		rate := float64(res.Steps) / res.Wall.Seconds()
		fmt.Printf("%s: %v\n", aurora.Bold(aurora.Cyan("Steps per wall second")), aurora.Yellow(fmt.Sprintf("%.1f", rate)))
	}
}
