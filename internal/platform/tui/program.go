package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts a local session in the current terminal and blocks until it ends.
func Run(opts Options) error {
	if opts.Opener == nil {
		opts.Opener = BrowserOpener{}
	}

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
