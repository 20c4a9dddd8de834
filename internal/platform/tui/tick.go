// Package tui provides the Bubble Tea front end for the bowling game.
// It handles the terminal UI loop, roll entry and scoreboard display.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FlashExpiredMsg is sent when a frame message should be cleared.
// Seq identifies the message so a newer one is not cleared early.
type FlashExpiredMsg struct {
	Seq int
}

// flashCmd returns a Bubble Tea command that expires flash seq after d.
func flashCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FlashExpiredMsg{Seq: seq}
	})
}
