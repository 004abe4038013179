// Package tui provides the Bubble Tea color picker.
// It handles the terminal UI loop, key bindings and swatch rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays visible.
const statusTimeout = 2 * time.Second

// StatusClearMsg is sent when a status message expires.
// Seq identifies the status it belongs to so a newer message survives.
type StatusClearMsg struct {
	Seq int
}

// clearStatusCmd returns a Bubble Tea command that expires status seq after d.
func clearStatusCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StatusClearMsg{Seq: seq}
	})
}
