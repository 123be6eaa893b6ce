package ui

import (
	"fmt"

	"github.com/HomelikeBrick42/GameOfLife/internal/core"
)

// PausedBanner is drawn across the middle of the view while paused.
const PausedBanner = "PAUSED"

// RateLabel formats the ticks-per-second readout.
func RateLabel(tps float64) string {
	return fmt.Sprintf("Ticks Per Second: %.0f", tps)
}

// ReadoutLines renders the snapshot as "Label: value" lines, restricted to the
// given keys when any are passed.
func ReadoutLines(s core.ParameterSnapshot, keys ...string) []string {
	var lines []string
	if len(keys) == 0 {
		for _, group := range s.Groups {
			for _, p := range group.Params {
				lines = append(lines, p.Label+": "+p.Value)
			}
		}
		return lines
	}
	for _, key := range keys {
		if p, ok := s.Lookup(key); ok {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}
