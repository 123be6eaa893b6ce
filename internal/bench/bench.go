// Package bench drives a session with synthetic fixed-length frames, without a
// window or terminal attached.
package bench

import (
	"sort"
	"time"

	"github.com/HomelikeBrick42/GameOfLife/internal/session"
)

// Result summarises a headless run.
type Result struct {
	Frames     int
	Steps      int
	Generation int
	Population int
	Simulated  time.Duration
	Wall       time.Duration
}

// Run feeds sess frames of length frame until total simulated time has been
// delivered, calling progress after every frame that stepped. A paused session
// is unpaused first.
func Run(sess *session.Session, frame, total time.Duration, progress func(Result)) Result {
	start := time.Now()
	var res Result
	if frame <= 0 {
		frame = total
	}
	if sess.Paused() {
		sess.Frame(session.Input{TogglePause: true})
	}
	for res.Simulated < total {
		d := min(frame, total-res.Simulated)
		n := sess.Frame(session.Input{Elapsed: d})
		res.Frames++
		res.Steps += n
		res.Simulated += d
		if n > 0 && progress != nil {
			res.Generation = sess.Generation()
			progress(res)
		}
	}
	res.Generation = sess.Generation()
	res.Population = sess.Population()
	res.Wall = time.Since(start)
	return res
}

// Fields returns the result as named values in a stable order.
func (r Result) Fields() []Field {
	m := map[string]interface{}{
		"Frames":          r.Frames,
		"Steps":           r.Steps,
		"Last generation": r.Generation,
		"Live cells":      r.Population,
		"Simulated time":  r.Simulated,
		"Wall time":       r.Wall.Round(time.Millisecond),
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]Field, 0, len(names))
	for _, name := range names {
		out = append(out, Field{Name: name, Value: m[name]})
	}
	return out
}

// Field is one named summary value.
type Field struct {
	Name  string
	Value interface{}
}
