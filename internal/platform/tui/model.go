package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/shell"
)

// ScoreSaver is the write side of the score store.
type ScoreSaver interface {
	SaveScore(gameID, player string, score int) (int64, error)
}

// Options configure a Model. Every field except Shell is optional.
type Options struct {
	Shell  *shell.Interpreter
	Store  ScoreSaver
	Player string
	Opener Opener
	Styles *Styles
	Logger *log.Logger
	Width  int
	Height int
}

// Model is the Bubble Tea model for one terminal session.
type Model struct {
	shell  *shell.Interpreter
	store  ScoreSaver
	player string
	opener Opener
	logger *log.Logger
	styles Styles

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	screen   *core.Screen

	width  int
	height int

	tickGen    uint64 // incremented on every launch and cancel
	scoreSaved bool   // whether the current game over has been recorded
	quitting   bool
}

// NewModel creates the session model around an interpreter.
func NewModel(opts Options) Model {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		cfg := core.DefaultConfig()
		width, height = cfg.ScreenW, cfg.ScreenH
	}

	styles := NewStyles(nil)
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	ti := textinput.New()
	ti.Prompt = styles.Prompt.Render(opts.Shell.Prompt() + "$ ")
	ti.Focus()

	m := Model{
		shell:    opts.Shell,
		store:    opts.Store,
		player:   opts.Player,
		opener:   opts.Opener,
		logger:   opts.Logger,
		styles:   styles,
		input:    ti,
		viewport: viewport.New(width, 1),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		screen:   core.NewScreen(width, height),
	}
	m.resize(width, height)
	m.refresh()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Shell.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.shell.ActiveGame() != nil {
			return m.handleGameKey(msg)
		}
		return m.handleShellKey(msg)

	case TickMsg:
		return m.handleTick(msg)

	case quitMsg:
		m.quitting = true
		return m, tea.Quit

	case openResultMsg:
		if msg.err != nil && m.logger != nil {
			m.logger.Warn("could not open link", "url", msg.url, "error", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleShellKey processes keys while the input line has focus.
func (m Model) handleShellKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.shell.Quitting() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Shell.Submit):
		resp := m.shell.Submit(m.input.Value())
		m.input.SetValue(m.shell.Input())
		m.refresh()
		return m, m.effect(resp)

	case key.Matches(msg, m.keys.Shell.Previous):
		m.shell.RecallPrevious()
		m.input.SetValue(m.shell.Input())
		m.input.CursorEnd()
		return m, nil

	case key.Matches(msg, m.keys.Shell.Next):
		m.shell.RecallNext()
		m.input.SetValue(m.shell.Input())
		m.input.CursorEnd()
		return m, nil

	case key.Matches(msg, m.keys.Shell.PageUp, m.keys.Shell.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.shell.SetInput(m.input.Value())
	return m, cmd
}

// effect turns a response's side effect into a command.
func (m *Model) effect(resp shell.Response) tea.Cmd {
	switch resp.Effect {
	case shell.EffectLaunch:
		g := m.shell.ActiveGame()
		if g == nil {
			return nil
		}
		m.tickGen++
		m.scoreSaved = false
		return tickCmd(m.tickGen, g.TickInterval())
	case shell.EffectOpen:
		if m.opener == nil {
			return nil
		}
		return openCmd(m.opener, resp.URL)
	case shell.EffectQuit:
		return quitCmd(QuitDelay)
	}
	return nil
}

// handleGameKey processes keys while a game owns focus.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Game.Cancel) {
		m.shell.CancelGame()
		// Pending ticks carry the old generation and are dropped on arrival
		m.tickGen++
		m.refresh()
		return m, nil
	}

	action := m.keys.Game.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	g := m.shell.ActiveGame()
	state := g.Input(action)
	if action == core.ActionRestart {
		m.scoreSaved = false
	}
	m.recordScore(g.ID(), state)
	return m, nil
}

// handleTick advances the active game if the tick belongs to it.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	g := m.shell.ActiveGame()
	if g == nil || msg.Gen != m.tickGen {
		return m, nil
	}

	state := g.Tick()
	m.recordScore(g.ID(), state)
	return m, tickCmd(m.tickGen, g.TickInterval())
}

// recordScore saves the score once per game over.
func (m *Model) recordScore(gameID string, state core.GameState) {
	if !state.GameOver || m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || state.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveScore(gameID, m.player, state.Score)
}

// resize lays out the viewport above the input line and help footer.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.screen.Resize(width, height-1)
	m.help.Width = width
	m.input.Width = core.Clamp(width-len(m.shell.Prompt())-4, 1, max(width, 1))
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1)
}

// refresh rebuilds the viewport from the banner and scrollback.
func (m *Model) refresh() {
	var sb strings.Builder
	for _, line := range m.shell.Banner() {
		sb.WriteString(m.styles.Banner.Render(line))
		sb.WriteByte('\n')
	}
	for _, e := range m.shell.Scrollback() {
		sb.WriteString(m.styles.Entry(e))
		sb.WriteByte('\n')
	}
	m.viewport.SetContent(strings.TrimSuffix(sb.String(), "\n"))
	m.viewport.GotoBottom()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if g := m.shell.ActiveGame(); g != nil {
		m.screen.Clear()
		g.Render(m.screen)
		return m.styles.RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Game)
	}

	return m.viewport.View() + "\n" + m.input.View() + "\n" + m.help.View(m.keys.Shell)
}

// TickGen exposes the launch generation for tests.
func (m Model) TickGen() uint64 {
	return m.tickGen
}

// openResultMsg reports the outcome of an Opener call.
type openResultMsg struct {
	url string
	err error
}

func openCmd(o Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return openResultMsg{url: url, err: o.Open(url)}
	}
}
