package shell

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/games/grid"
	"github.com/koisuji02/webterm/internal/registry"
)

var errNoLauncher = errors.New("shell: no game launcher configured")

// Launcher creates games by identifier.
type Launcher interface {
	Games
	Create(id string) (registry.Game, error)
}

// Options configure a new Interpreter.
type Options struct {
	Env      Env
	Launcher Launcher
	Screen   core.RuntimeConfig // screen size handed to launched games
}

// Interpreter is the per-session shell state: scrollback, history, the
// current input line and the game that owns focus, if any.
// It is not safe for concurrent use; each session owns one.
type Interpreter struct {
	env      Env
	launcher Launcher
	screen   core.RuntimeConfig

	scrollback []Entry
	history    *History
	input      string

	game     registry.Game
	quitting bool
}

// New creates an interpreter with an empty scrollback.
func New(opts Options) *Interpreter {
	env := opts.Env
	if env.Games == nil && opts.Launcher != nil {
		env.Games = opts.Launcher
	}
	if env.Rand == nil {
		env.Rand = grid.NewRand(time.Now().UnixNano())
	}
	return &Interpreter{
		env:      env,
		launcher: opts.Launcher,
		screen:   opts.Screen,
		history:  NewHistory(),
	}
}

// Prompt returns the prompt string without the trailing "$ ".
func (in *Interpreter) Prompt() string {
	return in.env.Profile.Prompt
}

// Banner returns the lines shown above the scrollback. They are not part of
// the scrollback and survive clear.
func (in *Interpreter) Banner() []string {
	var out []string
	if b := in.env.Profile.Banner; b != "" {
		out = append(out, strings.Split(b, "\n")...)
	}
	if w := in.env.Profile.Welcome; w != "" {
		out = append(out, w)
	}
	return out
}

// Submit runs one input line. It is a no-op on a blank line or while a game
// owns focus. The returned response carries the effect for the front-end.
func (in *Interpreter) Submit(line string) Response {
	if in.game != nil {
		return Response{}
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return Response{}
	}

	in.scrollback = append(in.scrollback, Entry{Text: in.Prompt() + "$ " + value, Kind: KindCommand})

	resp := in.Dispatch(Parse(value))
	switch resp.Effect {
	case EffectClear:
		in.scrollback = nil
	case EffectLaunch:
		if err := in.launch(resp.GameID); err != nil {
			resp.Effect = EffectNone
			resp.Entries = []Entry{Output("game unavailable: " + resp.GameID)}
		}
	case EffectQuit:
		in.quitting = true
	}
	in.scrollback = append(in.scrollback, resp.Entries...)

	in.history.Push(value)
	in.input = ""
	return resp
}

// Dispatch maps a command to its response without changing the interpreter.
func (in *Interpreter) Dispatch(cmd Command) Response {
	return Dispatch(in.env, cmd)
}

func (in *Interpreter) launch(id string) error {
	if in.launcher == nil {
		return errNoLauncher
	}
	g, err := in.launcher.Create(id)
	if err != nil {
		return err
	}
	cfg := in.screen
	cfg.Seed = int64(in.env.Rand.Intn(math.MaxInt32)) + 1
	g.Reset(cfg)
	in.game = g
	return nil
}

// RecallPrevious loads the previous history line into the input.
// At the oldest entry it keeps that entry.
func (in *Interpreter) RecallPrevious() {
	if in.game != nil {
		return
	}
	if line, ok := in.history.Prev(); ok {
		in.input = line
	}
}

// RecallNext loads the next history line into the input. Without a
// selection it loads the oldest line. Moving past the newest entry, or an
// empty history, clears the input.
func (in *Interpreter) RecallNext() {
	if in.game != nil {
		return
	}
	line, _ := in.history.Next()
	in.input = line
}

// Input returns the current input line.
func (in *Interpreter) Input() string {
	return in.input
}

// SetInput replaces the input line as the user types.
func (in *Interpreter) SetInput(s string) {
	if in.game != nil {
		return
	}
	in.input = s
}

// Scrollback returns a copy of the scrollback entries.
func (in *Interpreter) Scrollback() []Entry {
	return append([]Entry(nil), in.scrollback...)
}

// History returns a copy of the submitted lines, oldest first.
func (in *Interpreter) History() []string {
	return in.history.Entries()
}

// ActiveGame returns the game that owns focus, or nil.
func (in *Interpreter) ActiveGame() registry.Game {
	return in.game
}

// CancelGame discards the active game and gives focus back to the input line.
// It returns the discarded game, or nil if none was active.
func (in *Interpreter) CancelGame() registry.Game {
	g := in.game
	in.game = nil
	return g
}

// Quitting reports whether quit has been submitted.
func (in *Interpreter) Quitting() bool {
	return in.quitting
}
