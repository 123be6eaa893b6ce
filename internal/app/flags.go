package app

import (
	"fmt"
	"strings"

	"github.com/integrii/flaggy"

	"github.com/HomelikeBrick42/GameOfLife/internal/session"
	"github.com/HomelikeBrick42/GameOfLife/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	Padding int

	TPS     float64
	FPS     int
	Run     bool
	Pattern string
	Seed    int64

	Workers  int
	MaxSteps int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := session.DefaultConfig()
	return &Config{
		Width:    def.Width,
		Height:   def.Height,
		Scale:    20,
		Padding:  1,
		TPS:      def.TPS,
		FPS:      60,
		Pattern:  def.Pattern,
		Seed:     def.Seed,
		Workers:  def.Workers,
		MaxSteps: def.MaxStepsPerFrame,
	}
}

// Patterns lists the accepted --pattern values.
func Patterns() []string {
	return append(life.TemplateNames(), session.PatternRandom, session.PatternEmpty)
}

// patternUsage describes every --pattern value.
func patternUsage() string {
	var b strings.Builder
	b.WriteString("Seed pattern:")
	for _, name := range life.TemplateNames() {
		t, _ := life.LookupTemplate(name)
		fmt.Fprintf(&b, " %s (%s),", name, t.Descr)
	}
	fmt.Fprintf(&b, " %s (random fill from --seed), %s (all dead)", session.PatternRandom, session.PatternEmpty)
	return b.String()
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "Width of the grid in cells")
	p.Int(&c.Height, "y", "height", "Height of the grid in cells")
	p.Int(&c.Scale, "c", "scale", "Pixels per cell")
	p.Int(&c.Padding, "d", "padding", "Gap in pixels around each cell")
	p.Float64(&c.TPS, "t", "tps", "Simulation ticks per second")
	p.Int(&c.FPS, "f", "fps", "Frames per second of the driver loop")
	p.Bool(&c.Run, "r", "run", "Start running instead of paused")
	p.String(&c.Pattern, "p", "pattern", patternUsage())
	p.Int64(&c.Seed, "s", "seed", "Seed for random fills")
	p.Int(&c.Workers, "w", "workers", "Goroutines used to count neighbours")
	p.Int(&c.MaxSteps, "m", "max-steps", "Cap on catch-up steps per frame, 0 for none")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("scale %d must be positive", c.Scale)
	case c.Padding < 0 || 2*c.Padding >= c.Scale:
		return fmt.Errorf("padding %d must leave room inside a %dpx cell", c.Padding, c.Scale)
	case !(c.TPS > 0):
		return fmt.Errorf("tps %v must be positive", c.TPS)
	case c.FPS <= 0:
		return fmt.Errorf("fps %d must be positive", c.FPS)
	case c.Workers <= 0:
		return fmt.Errorf("workers %d must be positive", c.Workers)
	}
	for _, name := range Patterns() {
		if name == c.Pattern {
			return nil
		}
	}
	return fmt.Errorf("%w %q", session.ErrUnknownPattern, c.Pattern)
}

// SessionConfig derives the simulation settings.
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		Width:            c.Width,
		Height:           c.Height,
		TPS:              c.TPS,
		Paused:           !c.Run,
		Pattern:          c.Pattern,
		Seed:             c.Seed,
		Workers:          c.Workers,
		MaxStepsPerFrame: c.MaxSteps,
	}
}
