package session

import (
	"time"

	"github.com/HomelikeBrick42/GameOfLife/pkg/core"
)

// Input is everything a frontend reports for one frame. The boolean events are
// one-shot and apply to this frame only; the Held fields describe modifiers
// that are currently down.
type Input struct {
	// Elapsed is the wall time since the previous frame.
	Elapsed time.Duration
	// Cursor is the cell under the pointer. It may lie outside the grid.
	Cursor core.Point

	TogglePause bool
	Faster      bool
	Slower      bool
	ToggleCell  bool
	RegionStart bool
	RegionEnd   bool
	Paste       bool

	// Step advances a single generation while paused.
	Step bool
	// Clear kills every cell.
	Clear bool
	// Reseed refills the grid from the configured seed.
	Reseed bool

	// RegionHeld is set while a region is being dragged out; single-cell
	// toggles are ignored during that time.
	RegionHeld bool
	// PasteHeld turns region starts into pastes.
	PasteHeld bool
}
