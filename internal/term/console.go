package term

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"github.com/HomelikeBrick42/GameOfLife/internal/session"
	"github.com/HomelikeBrick42/GameOfLife/internal/ui"
	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

const (
	fieldName  = "field"
	statusName = "status"
	helpName   = "help"
	leftColumn = 30
	minHeight  = 12
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console drives a session from a terminal. Key handlers and the per-frame
// update both run on the gocui main loop, so the session is never touched from
// two goroutines. Most keys queue one-shot input for the next frame; region
// keys are applied at once because each press depends on the selection mode
// left by the previous one.
type Console struct {
	sess *session.Session
	g    *gocui.Gui
	k    []keyBinding
	fill Fillers

	fps     int
	pending session.Input
	cursor  core.Point
	last    time.Time
	done    chan struct{}
}

// NewConsole creates the terminal UI. Call Run to start it.
func NewConsole(sess *session.Session, fps int) (*Console, error) {
	if fps <= 0 {
		fps = 30
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("term: init gui: %w", err)
	}
	c := &Console{
		sess: sess,
		g:    g,
		fill: DefaultFillers(),
		fps:  fps,
		done: make(chan struct{}),
	}
	g.Mouse = true
	c.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause", c.queue(func(in *session.Input) { in.TogglePause = true }), ""},
		{'w', "W", "Faster", c.queue(func(in *session.Input) { in.Faster = true }), ""},
		{'s', "S", "Slower", c.queue(func(in *session.Input) { in.Slower = true }), ""},
		{'n', "N", "Step", c.queue(func(in *session.Input) { in.Step = true }), ""},
		{'c', "C", "Clear", c.queue(func(in *session.Input) { in.Clear = true }), ""},
		{'r', "R", "Random", c.queue(func(in *session.Input) { in.Reseed = true }), ""},
		{gocui.KeyEnter, "ENTER", "Toggle cell", c.queue(func(in *session.Input) { in.ToggleCell = true }), ""},
		{'v', "V", "Select region", c.cmdRegion, ""},
		{'p', "P", "Paste", c.queue(func(in *session.Input) { in.Paste, in.PasteHeld = true, true }), ""},
		{gocui.KeyArrowLeft, "ARROWS", "Move cursor", c.cmdMove(-1, 0), ""},
		{gocui.KeyArrowRight, "", "", c.cmdMove(1, 0), ""},
		{gocui.KeyArrowUp, "", "", c.cmdMove(0, -1), ""},
		{gocui.KeyArrowDown, "", "", c.cmdMove(0, 1), ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdClick, fieldName},
		{gocui.MouseRight, "RMOUSE", "Select region", c.cmdRightClick, fieldName},
	}
	g.SetManagerFunc(c.layout)
	if err := c.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}
	return c, nil
}

func (c *Console) initKeyBindings() error {
	for _, kb := range c.k {
		h := kb.handler
		if err := c.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("term: bind %v: %w", kb.key, err)
		}
	}
	return nil
}

// Run blocks until the user quits.
func (c *Console) Run() error {
	defer c.g.Close()
	go c.tick()
	err := c.g.MainLoop()
	close(c.done)
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (c *Console) tick() {
	t := time.NewTicker(time.Second / time.Duration(c.fps))
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			c.g.Update(c.frame)
		}
	}
}

func (c *Console) frame(g *gocui.Gui) error {
	now := time.Now()
	in := c.pending
	c.pending = session.Input{}
	if !c.last.IsZero() {
		in.Elapsed = now.Sub(c.last)
	}
	c.last = now
	in.Cursor = c.cursor
	in.RegionHeld = c.sess.Mode() == session.Selecting

	c.sess.Frame(in)
	c.renderField(g)
	c.renderStatus(g)
	return nil
}

func (c *Console) renderField(g *gocui.Gui) {
	v, err := g.View(fieldName)
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	sel, ok := c.sess.Selection()
	f := fieldView{grid: c.sess.Grid(), selection: sel, selecting: ok, cursor: c.cursor}
	_, _ = fmt.Fprint(v, f.render(maxW, maxH, c.fill))
}

func (c *Console) renderStatus(g *gocui.Gui) {
	v, err := g.View(statusName)
	if err != nil {
		return
	}
	v.Clear()
	state := aurora.Cyan("running").String()
	if c.sess.Paused() {
		state = aurora.Red(ui.PausedBanner).Bold().String()
	}
	_, _ = fmt.Fprintln(v, " "+state)
	_, _ = fmt.Fprintln(v, " "+ui.RateLabel(c.sess.TPS()))
	_, _ = fmt.Fprintln(v, c.renderProp("Cursor", "%d,%d", c.cursor.X, c.cursor.Y))
	for _, group := range c.sess.Parameters().Groups {
		for _, p := range group.Params {
			_, _ = fmt.Fprintln(v, c.renderProp(p.Label, "%s", p.Value))
		}
	}
}

func (c *Console) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxY < minHeight || maxX <= leftColumn+2 {
		_ = g.DeleteView(statusName)
		_ = g.DeleteView(fieldName)
		_ = g.DeleteView(helpName)
		return nil
	}

	if v, err := g.SetView(statusName, 0, 0, leftColumn, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView(fieldName, leftColumn+1, 0, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}

	if v, err := g.SetView(helpName, -1, maxY-4, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range c.k {
			if k.descr == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

func (c *Console) queue(set func(in *session.Input)) func(*gocui.View) error {
	return func(*gocui.View) error {
		set(&c.pending)
		return nil
	}
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdRegion(_ *gocui.View) error {
	in := session.Input{Cursor: c.cursor, RegionHeld: true}
	if c.sess.Mode() == session.Idle {
		in.RegionStart = true
	} else {
		in.RegionEnd = true
	}
	c.sess.Frame(in)
	return nil
}

func (c *Console) cmdMove(dx, dy int) func(*gocui.View) error {
	return func(*gocui.View) error {
		size := c.sess.Size()
		c.cursor.X = core.WrapAny(c.cursor.X+dx, size.W)
		c.cursor.Y = core.WrapAny(c.cursor.Y+dy, size.H)
		return nil
	}
}

func (c *Console) pointAt(v *gocui.View) {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	c.cursor = core.Pt(cx+ox, cy+oy)
}

func (c *Console) cmdClick(v *gocui.View) error {
	c.pointAt(v)
	c.pending.ToggleCell = true
	return nil
}

func (c *Console) cmdRightClick(v *gocui.View) error {
	c.pointAt(v)
	return c.cmdRegion(v)
}
