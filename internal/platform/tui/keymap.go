package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/koisuji02/webterm/internal/core"
)

// ShellKeyMap defines the key bindings while the input line has focus.
type ShellKeyMap struct {
	Submit   key.Binding
	Previous key.Binding
	Next     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShellKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Previous, k.Next, k.PageUp, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ShellKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Previous, k.Next},
		{k.PageUp, k.PageDown, k.Quit},
	}
}

// GameKeyMap defines the key bindings while a game owns focus.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Cancel, k.Quit},
	}
}

// KeyMap groups both sets of bindings.
type KeyMap struct {
	Shell ShellKeyMap
	Game  GameKeyMap
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	quit := key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)
	return KeyMap{
		Shell: ShellKeyMap{
			Submit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "run"),
			),
			Previous: key.NewBinding(
				key.WithKeys("up"),
				key.WithHelp("↑", "previous"),
			),
			Next: key.NewBinding(
				key.WithKeys("down"),
				key.WithHelp("↓", "next"),
			),
			PageUp: key.NewBinding(
				key.WithKeys("pgup"),
				key.WithHelp("pgup", "scroll up"),
			),
			PageDown: key.NewBinding(
				key.WithKeys("pgdown"),
				key.WithHelp("pgdn", "scroll down"),
			),
			Quit: quit,
		},
		Game: GameKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up"),
				key.WithHelp("↑", "up/rotate"),
			),
			Down: key.NewBinding(
				key.WithKeys("down"),
				key.WithHelp("↓", "down"),
			),
			Left: key.NewBinding(
				key.WithKeys("left"),
				key.WithHelp("←", "left"),
			),
			Right: key.NewBinding(
				key.WithKeys("right"),
				key.WithHelp("→", "right"),
			),
			Restart: key.NewBinding(
				key.WithKeys("r", "R"),
				key.WithHelp("r", "restart"),
			),
			Cancel: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "back to prompt"),
			),
			Quit: quit,
		},
	}
}

// Action translates a key message to a game action.
// Returns core.ActionNone for keys games do not react to.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
