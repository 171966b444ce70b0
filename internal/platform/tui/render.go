package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/shell"
)

// palette maps core colours to terminal colours.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorSky:      lipgloss.Color("#6bd5ff"),
	core.ColorSun:      lipgloss.Color("#ffe66b"),
	core.ColorPink:     lipgloss.Color("#ff7dd8"),
	core.ColorMint:     lipgloss.Color("#7df2c7"),
	core.ColorApricot:  lipgloss.Color("#ffad69"),
	core.ColorLavender: lipgloss.Color("#b28dff"),
	core.ColorTeal:     lipgloss.Color("#4fd1c5"),
	core.ColorGray:     lipgloss.Color("245"),
	core.ColorDim:      lipgloss.Color("240"),
	core.ColorRed:      lipgloss.Color("#ff5f56"),
}

// Styles holds every style the front-end uses. Styles are built from a
// renderer so SSH sessions get the colour profile of the remote terminal.
type Styles struct {
	cells   map[core.Color]lipgloss.Style
	Banner  lipgloss.Style
	Prompt  lipgloss.Style
	Command lipgloss.Style
	Output  lipgloss.Style
}

// NewStyles builds the styles for r. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := Styles{
		cells:   make(map[core.Color]lipgloss.Style, len(palette)+1),
		Banner:  r.NewStyle().Foreground(lipgloss.Color("#6bd5ff")).Bold(true),
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("#7df2c7")),
		Command: r.NewStyle().Foreground(lipgloss.Color("#ffe66b")),
		Output:  r.NewStyle().Foreground(lipgloss.Color("252")),
	}
	s.cells[core.ColorNone] = r.NewStyle()
	for c, tc := range palette {
		s.cells[c] = r.NewStyle().Foreground(tc)
	}
	return s
}

// Entry styles one scrollback entry.
func (s Styles) Entry(e shell.Entry) string {
	if e.Kind == shell.KindCommand {
		return s.Command.Render(e.Text)
	}
	return s.Output.Render(e.Text)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (s Styles) RenderScreen(scr *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(scr.Width()*scr.Height()*2 + scr.Height())

	for y := range scr.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < scr.Width() {
			startColor := scr.GetCell(x, y).Color

			var run strings.Builder
			for x < scr.Width() {
				cell := scr.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := s.cells[startColor]
			if !ok {
				style = s.cells[core.ColorNone]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
