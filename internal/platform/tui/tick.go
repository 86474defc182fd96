// Package tui provides the Bubble Tea integration for the snake game.
// It owns the tick scheduler, maps keys to engine commands and renders
// engine snapshots to the terminal, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an engine tick. The generation identifies the
// arming it belongs to; ticks from an older arming are dropped.
type TickMsg struct {
	gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that fires one tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{gen: gen, Time: t}
	})
}
