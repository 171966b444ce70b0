// Package tui provides the Bubble Tea front-end for the terminal: the input
// line, the scrollback viewport, the game view with its tick loop, and the
// SSH server that gives every visitor a private session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// QuitDelay is how long the exit message stays on screen after quit.
const QuitDelay = 150 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick. Gen identifies the game
// launch that scheduled it; ticks from an earlier launch are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd schedules one tick for the given launch generation.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// quitMsg ends the program once the quit delay has elapsed.
type quitMsg struct{}

func quitCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return quitMsg{}
	})
}
