package tui

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Opener hands a contact link to something outside the session.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error { return f(url) }

// BrowserOpener opens links with the desktop's default handler.
type BrowserOpener struct{}

// Open starts the platform's URL handler and does not wait for it.
func (BrowserOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("tui: open %s: %w", url, err)
	}
	go cmd.Wait() //nolint:errcheck // Handler exit status is irrelevant
	return nil
}

// ClipboardOpener copies links to the remote terminal's clipboard with an
// OSC 52 escape sequence. It is used for SSH sessions, where the server
// cannot start a browser on the visitor's machine.
type ClipboardOpener struct {
	W io.Writer
}

// Open writes the OSC 52 sequence for url.
func (o ClipboardOpener) Open(url string) error {
	if _, err := osc52.New(url).WriteTo(o.W); err != nil {
		return fmt.Errorf("tui: copy %s: %w", url, err)
	}
	return nil
}
