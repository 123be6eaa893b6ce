package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/integrii/flaggy"

	"github.com/HomelikeBrick42/GameOfLife/internal/session"
	"github.com/HomelikeBrick42/GameOfLife/pkg/sims/life"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	p := flaggy.NewParser("life")
	p.ShowHelpOnUnexpected = false
	cfg.Bind(p)
	if err := p.ParseArgs(args); err != nil {
		t.Fatalf("ParseArgs(%v): %v", args, err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parse(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	sc := cfg.SessionConfig()
	if sc.Width != 80 || sc.Height != 40 || sc.TPS != 5 || !sc.Paused || sc.Pattern != "glider" {
		t.Fatalf("unexpected session config %+v", sc)
	}
	if cfg.Scale != 20 || cfg.Padding != 1 {
		t.Fatalf("scale %d padding %d", cfg.Scale, cfg.Padding)
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := parse(t, "--width", "32", "-y", "16", "--tps", "12.5", "--run", "--pattern", "random", "--workers", "4")
	if cfg.Width != 32 || cfg.Height != 16 || cfg.TPS != 12.5 || !cfg.Run || cfg.Pattern != "random" || cfg.Workers != 4 {
		t.Fatalf("parsed %+v", cfg)
	}
	if cfg.SessionConfig().Paused {
		t.Fatal("--run should start unpaused")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []func(c *Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Scale = 0 },
		func(c *Config) { c.Padding = 10 },
		func(c *Config) { c.TPS = 0 },
		func(c *Config) { c.FPS = -1 },
		func(c *Config) { c.Workers = 0 },
	}
	for i, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}

	cfg := NewConfig()
	cfg.Pattern = "nope"
	if err := cfg.Validate(); !errors.Is(err, session.ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestPatternUsageListsEveryPattern(t *testing.T) {
	usage := patternUsage()
	for _, name := range Patterns() {
		if !strings.Contains(usage, " "+name+" (") {
			t.Fatalf("usage %q does not mention %q", usage, name)
		}
	}
	glider, _ := life.LookupTemplate("glider")
	if !strings.Contains(usage, glider.Descr) {
		t.Fatalf("usage %q lacks the glider description", usage)
	}
}
