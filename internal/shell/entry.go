// Package shell implements the portfolio command interpreter: line parsing,
// the fixed command set, the scrollback log, input history and the hand-off
// of keyboard focus to a grid game.
//
// The interpreter does no I/O. Side effects that reach outside the session
// (opening a link, leaving the terminal) are returned to the caller as an
// Effect on the Response.
package shell

// Kind distinguishes echoed command lines from command output.
type Kind int

const (
	KindOutput Kind = iota
	KindCommand
)

func (k Kind) String() string {
	if k == KindCommand {
		return "Command"
	}
	return "Output"
}

// Entry is one line of scrollback.
type Entry struct {
	Text string
	Kind Kind
}

// Output returns an output entry.
func Output(text string) Entry {
	return Entry{Text: text, Kind: KindOutput}
}
