//go:build !ebiten

package ui

import "github.com/HomelikeBrick42/GameOfLife/internal/session"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*session.Session) *HUD { return nil }

// TogglePanel is a no-op in the headless build.
func (h *HUD) TogglePanel() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
