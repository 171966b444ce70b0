package tui

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/koisuji02/webterm/internal/content"
	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/registry"
	"github.com/koisuji02/webterm/internal/shell"
)

// stubGame ends after a fixed number of ticks.
type stubGame struct {
	ticks   int
	endAt   int
	score   int
	resets  int
	actions []core.Action
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.ticks = 0; g.resets++ }
func (g *stubGame) TickInterval() time.Duration { return 10 * time.Millisecond }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawTextColored(0, 0, "STUB", core.ColorSky) }
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.score, GameOver: g.ticks >= g.endAt} }
func (g *stubGame) Tick() core.GameState { g.ticks++; return g.State() }
func (g *stubGame) Input(a core.Action) core.GameState {
	g.actions = append(g.actions, a)
	if a == core.ActionRestart {
		g.ticks = 0
	}
	return g.State()
}

type fakeStore struct {
	saved []int
	users []string
}

func (f *fakeStore) SaveScore(gameID, player string, score int) (int64, error) {
	f.saved = append(f.saved, score)
	f.users = append(f.users, player)
	return int64(len(f.saved)), nil
}

type testSession struct {
	model  Model
	game   *stubGame
	store  *fakeStore
	opened []string
}

func newTestSession(t *testing.T) *testSession {
	t.Helper()
	ts := &testSession{
		game:  &stubGame{endAt: 2, score: 7},
		store: &fakeStore{},
	}
	games := registry.New()
	games.Register("stub", func() registry.Game { return ts.game })

	interp := shell.New(shell.Options{
		Env: shell.Env{Profile: content.Profile{
			Prompt:   "koisuji@dev ",
			Welcome:  "Welcome.",
			Contacts: content.Contacts{GitHub: "https://github.com/Koisuji02"},
		}},
		Launcher: games,
	})
	ts.model = NewModel(Options{
		Shell:  interp,
		Store:  ts.store,
		Player: "alice",
		Opener: OpenerFunc(func(url string) error {
			ts.opened = append(ts.opened, url)
			return nil
		}),
		Width:  80,
		Height: 24,
	})
	return ts
}

func (ts *testSession) send(msg tea.Msg) tea.Cmd {
	next, cmd := ts.model.Update(msg)
	ts.model = next.(Model)
	return cmd
}

func (ts *testSession) submit(line string) tea.Cmd {
	ts.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	return ts.send(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmitRendersScrollback(t *testing.T) {
	ts := newTestSession(t)
	ts.submit("ls")

	view := ts.model.View()
	if !strings.Contains(view, "koisuji@dev $ ls") {
		t.Error("view should echo the command")
	}
	if !strings.Contains(view, "about  skills  projects  notes  contacts") {
		t.Error("view should show the command output")
	}
	if !strings.Contains(view, "Welcome.") {
		t.Error("view should show the banner")
	}
	if ts.model.input.Value() != "" {
		t.Errorf("input = %q, expected it cleared", ts.model.input.Value())
	}
}

func TestHistoryKeys(t *testing.T) {
	ts := newTestSession(t)
	ts.submit("about")
	ts.submit("ls")

	ts.send(tea.KeyMsg{Type: tea.KeyUp})
	if ts.model.input.Value() != "ls" {
		t.Errorf("after up = %q", ts.model.input.Value())
	}
	ts.send(tea.KeyMsg{Type: tea.KeyUp})
	if ts.model.input.Value() != "about" {
		t.Errorf("after up up = %q", ts.model.input.Value())
	}
	ts.send(tea.KeyMsg{Type: tea.KeyDown})
	ts.send(tea.KeyMsg{Type: tea.KeyDown})
	if ts.model.input.Value() != "" {
		t.Errorf("past newest = %q", ts.model.input.Value())
	}
}

func TestLaunchTickAndScore(t *testing.T) {
	ts := newTestSession(t)
	if cmd := ts.submit("game stub"); cmd == nil {
		t.Fatal("launch should schedule a tick")
	}
	gen := ts.model.TickGen()

	if !strings.Contains(ts.model.View(), "STUB") {
		t.Error("view should show the game")
	}

	if cmd := ts.send(TickMsg{Gen: gen}); cmd == nil {
		t.Error("a live tick should schedule the next one")
	}
	ts.send(TickMsg{Gen: gen})
	if len(ts.store.saved) != 1 || ts.store.saved[0] != 7 || ts.store.users[0] != "alice" {
		t.Fatalf("saved = %v by %v, expected one save of 7 by alice", ts.store.saved, ts.store.users)
	}

	ts.send(TickMsg{Gen: gen})
	if len(ts.store.saved) != 1 {
		t.Error("a game over must be recorded once")
	}

	ts.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	ts.send(TickMsg{Gen: gen})
	ts.send(TickMsg{Gen: gen})
	if len(ts.store.saved) != 2 {
		t.Errorf("a game over after restart should be recorded again, saved = %v", ts.store.saved)
	}
}

func TestGameKeysReachGame(t *testing.T) {
	ts := newTestSession(t)
	ts.submit("game stub")

	ts.send(tea.KeyMsg{Type: tea.KeyLeft})
	ts.send(tea.KeyMsg{Type: tea.KeyUp})
	ts.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	want := []core.Action{core.ActionLeft, core.ActionUp}
	if len(ts.game.actions) != len(want) {
		t.Fatalf("actions = %v, expected %v", ts.game.actions, want)
	}
	for i := range want {
		if ts.game.actions[i] != want[i] {
			t.Errorf("action %d = %v, expected %v", i, ts.game.actions[i], want[i])
		}
	}
}

func TestCancelDropsPendingTicks(t *testing.T) {
	ts := newTestSession(t)
	ts.submit("game stub")
	stale := ts.model.TickGen()

	ts.send(tea.KeyMsg{Type: tea.KeyEsc})
	if ts.model.shell.ActiveGame() != nil {
		t.Fatal("esc should end the game")
	}
	if ts.model.TickGen() == stale {
		t.Error("cancel should retire the tick generation")
	}

	if cmd := ts.send(TickMsg{Gen: stale}); cmd != nil {
		t.Error("a tick from the cancelled game must not reschedule")
	}
	if ts.game.ticks != 0 {
		t.Errorf("cancelled game advanced %d ticks", ts.game.ticks)
	}

	// A relaunch ignores ticks scheduled by the previous launch
	ts.submit("game stub")
	if cmd := ts.send(TickMsg{Gen: stale}); cmd != nil {
		t.Error("stale tick should be ignored after relaunch")
	}
	if ts.game.ticks != 0 {
		t.Errorf("relaunched game advanced %d ticks from a stale tick", ts.game.ticks)
	}
}

func TestQuitAfterDelay(t *testing.T) {
	ts := newTestSession(t)
	cmd := ts.submit("quit")
	if cmd == nil {
		t.Fatal("quit should schedule the exit")
	}
	if !strings.Contains(ts.model.View(), "Exiting terminal...") {
		t.Error("exit message should be visible during the delay")
	}

	cmd = ts.send(quitMsg{})
	if cmd == nil {
		t.Fatal("quitMsg should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if ts.model.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestOpenContact(t *testing.T) {
	ts := newTestSession(t)
	cmd := ts.submit("github")
	if cmd == nil {
		t.Fatal("github should request an open")
	}
	ts.send(cmd())
	if len(ts.opened) != 1 || ts.opened[0] != "https://github.com/Koisuji02" {
		t.Errorf("opened = %v", ts.opened)
	}
}

func TestClipboardOpener(t *testing.T) {
	var buf bytes.Buffer
	url := "https://github.com/Koisuji02"
	if err := (ClipboardOpener{W: &buf}).Open(url); err != nil {
		t.Fatalf("Open: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;") {
		t.Errorf("expected an OSC 52 sequence, got %q", out)
	}
	if !strings.Contains(out, base64.StdEncoding.EncodeToString([]byte(url))) {
		t.Errorf("sequence does not carry the url: %q", out)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorSky)
	s.DrawText(2, 0, "cd")

	out := NewStyles(nil).RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestGameKeyMapAction(t *testing.T) {
	km := DefaultKeyMap().Game
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%s) = %v, expected %v", tt.msg, got, tt.want)
			}
		})
	}
}
