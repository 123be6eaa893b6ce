package session

import (
	"errors"
	"fmt"
	"strconv"

	icore "github.com/HomelikeBrick42/GameOfLife/internal/core"
	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
	"github.com/HomelikeBrick42/GameOfLife/pkg/sims/life"
)

// ErrUnknownPattern is returned when the configured seed pattern does not exist.
var ErrUnknownPattern = errors.New("unknown pattern")

const (
	// PatternRandom fills the grid from the seed.
	PatternRandom = "random"
	// PatternEmpty starts with every cell dead.
	PatternEmpty = "empty"
)

// Config controls the initial state of a Session.
type Config struct {
	Width  int
	Height int

	TPS    float64
	Paused bool

	Pattern string
	Seed    int64

	Workers          int
	MaxStepsPerFrame int
}

// DefaultConfig returns an 80x40 world holding a glider, paused at five ticks
// per second.
func DefaultConfig() Config {
	return Config{
		Width:            80,
		Height:           40,
		TPS:              5,
		Paused:           true,
		Pattern:          "glider",
		Seed:             42,
		Workers:          1,
		MaxStepsPerFrame: icore.DefaultMaxStepsPerFrame,
	}
}

// Mode is the state of the region selection.
type Mode int

const (
	// Idle means no region is being selected.
	Idle Mode = iota
	// Selecting means an anchor has been placed and the region end is pending.
	Selecting
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Selecting {
		return "selecting"
	}
	return "idle"
}

// Session owns the simulation state driven by a frontend: the grid, the tick
// scheduler, the pause flag, the clipboard and the selection anchor. It is not
// safe for concurrent use; frontends call it from a single loop.
type Session struct {
	cfg    Config
	life   *life.Life
	ticks  *icore.TickScheduler
	paused bool

	clipboard core.Pattern
	mode      Mode
	anchor    core.Point
	cursor    core.Point
}

// New builds a session from cfg and seeds it with the configured pattern.
func New(cfg Config) (*Session, error) {
	s := &Session{
		cfg:    cfg,
		life:   life.New(cfg.Width, cfg.Height),
		ticks:  icore.NewTickScheduler(cfg.TPS),
		paused: cfg.Paused,
	}
	s.life.SetWorkers(cfg.Workers)
	s.ticks.SetMaxStepsPerFrame(cfg.MaxStepsPerFrame)
	if err := s.seed(cfg.Pattern, cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) seed(pattern string, seed int64) error {
	switch pattern {
	case PatternRandom:
		s.life.Reset(seed)
	case PatternEmpty, "":
		s.life.Clear()
	default:
		tmpl, ok := life.LookupTemplate(pattern)
		if !ok {
			return fmt.Errorf("session: %w %q", ErrUnknownPattern, pattern)
		}
		s.life.Clear()
		s.life.Grid().Paste(core.Point{}, tmpl.Pattern())
	}
	return nil
}

// Frame applies one frame of input and advances the simulation by the elapsed
// time. It returns the number of generations stepped.
func (s *Session) Frame(in Input) int {
	s.cursor = in.Cursor

	if in.TogglePause {
		s.paused = !s.paused
	}
	if in.Faster {
		s.ticks.Faster()
	}
	if in.Slower {
		s.ticks.Slower()
	}
	if in.Clear {
		s.Clear()
	}
	if in.Reseed {
		s.Reseed(s.cfg.Seed)
	}

	if s.paused {
		s.edit(in)
		if in.Step {
			s.StepOnce()
			return 1
		}
		return 0
	}
	return s.ticks.Advance(in.Elapsed, s.life.Step)
}

func (s *Session) edit(in Input) {
	c := in.Cursor
	switch {
	case !s.life.Grid().Contains(c.X, c.Y):
	case in.PasteHeld:
		if in.Paste && s.mode == Idle {
			s.Paste(c)
		}
	default:
		if in.ToggleCell && !in.RegionHeld {
			s.life.Grid().Toggle(c.X, c.Y)
		}
		if in.RegionStart {
			s.mode = Selecting
			s.anchor = c
		}
	}
	// A release off the grid or with the paste modifier down still ends the
	// selection; the far corner is clamped to the nearest cell.
	if in.RegionEnd && s.mode == Selecting {
		s.Capture(s.anchor, s.clampToGrid(c))
		s.mode = Idle
	}
}

// Capture stores the cells between corners a and b, in any order, as the
// clipboard pattern. The grid is not modified.
func (s *Session) Capture(a, b core.Point) {
	s.clipboard = s.life.Grid().Capture(core.RectFromCorners(a, b))
}

// Paste writes the clipboard into the live grid with its top-left cell at
// anchor, wrapping around the edges. An empty clipboard is a no-op.
func (s *Session) Paste(anchor core.Point) {
	s.life.Grid().Paste(anchor, s.clipboard)
}

// StepOnce advances exactly one generation regardless of the pause flag.
func (s *Session) StepOnce() { s.life.Step() }

// Clear kills every cell. The clipboard and rate are kept.
func (s *Session) Clear() { s.life.Clear() }

// Reseed fills the grid randomly from seed.
func (s *Session) Reseed(seed int64) { s.life.Reset(seed) }

// Grid returns the current generation for rendering.
func (s *Session) Grid() *core.Grid { return s.life.Grid() }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.life.Size() }

// Paused reports whether stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// TPS returns the current ticks-per-second rate.
func (s *Session) TPS() float64 { return s.ticks.TPS() }

// Generation returns the number of generations since the last reset.
func (s *Session) Generation() int { return s.life.Generation() }

// Population returns the number of live cells.
func (s *Session) Population() int { return s.life.Grid().Population() }

// Mode returns the selection state.
func (s *Session) Mode() Mode { return s.mode }

// Cursor returns the pointer cell reported by the last frame.
func (s *Session) Cursor() core.Point { return s.cursor }

// Clipboard returns the last captured pattern.
func (s *Session) Clipboard() core.Pattern { return s.clipboard }

// Selection returns the rectangle between the anchor and the cursor, clamped
// to the grid, while a region is being selected.
func (s *Session) Selection() (core.Rect, bool) {
	if s.mode != Selecting {
		return core.Rect{}, false
	}
	return core.RectFromCorners(s.anchor, s.clampToGrid(s.cursor)), true
}

func (s *Session) clampToGrid(p core.Point) core.Point {
	size := s.life.Size()
	return core.Point{X: clampInt(p.X, 0, size.W-1), Y: clampInt(p.Y, 0, size.H-1)}
}

// Parameters snapshots the values shown by readouts.
func (s *Session) Parameters() icore.ParameterSnapshot {
	size := s.life.Size()
	clip := "empty"
	if !s.clipboard.Empty() {
		clip = fmt.Sprintf("%dx%d", s.clipboard.W, s.clipboard.H)
	}
	selection := s.mode.String()
	if r, ok := s.Selection(); ok {
		selection = fmt.Sprintf("%d,%d %dx%d", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
	return icore.ParameterSnapshot{Groups: []icore.ParameterGroup{
		{
			Name: "Simulation",
			Params: []icore.Parameter{
				{Key: "tps", Label: "Ticks per second", Value: strconv.FormatFloat(s.ticks.TPS(), 'g', -1, 64)},
				{Key: "paused", Label: "Paused", Value: strconv.FormatBool(s.paused)},
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(s.life.Generation())},
				{Key: "population", Label: "Population", Value: strconv.Itoa(s.Population())},
			},
		},
		{
			Name: "World",
			Params: []icore.Parameter{
				{Key: "w", Label: "Width", Value: strconv.Itoa(size.W)},
				{Key: "h", Label: "Height", Value: strconv.Itoa(size.H)},
			},
		},
		{
			Name: "Editing",
			Params: []icore.Parameter{
				{Key: "clipboard", Label: "Clipboard", Value: clip},
				{Key: "selection", Label: "Selection", Value: selection},
			},
		},
	}}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
