package grid

import (
	"fmt"

	"github.com/koisuji02/webterm/internal/core"
)

// hudHeight is the number of screen rows above the board border.
const hudHeight = 2

// Frame is the chrome around a board: a title/score line, a hint line and a
// border. Every board cell is drawn two columns wide so cells look square.
type Frame struct {
	Title string
	Hint  string
	Cols  int
	Rows  int
}

// Size returns the minimum screen size needed to draw the frame.
func (f Frame) Size() (w, h int) {
	return f.Cols*2 + 2, f.Rows + 2 + hudHeight
}

// Draw clears dst and draws the HUD and the border. It returns the screen
// position of board cell (0, 0). When the screen is too small it draws a
// notice instead and reports ok = false.
func (f Frame) Draw(dst *core.Screen, score int) (origin core.Point, ok bool) {
	dst.Clear()

	w, h := f.Size()
	if dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d, Esc to exit", w, h))
		return core.Point{}, false
	}

	left := (dst.Width() - w) / 2
	dst.DrawText(left, 0, fmt.Sprintf("%s | Score: %d", f.Title, score))
	dst.DrawTextColored(left, 1, f.Hint, core.ColorDim)
	dst.DrawBox(core.NewRect(left, hudHeight, w, f.Rows+2), core.ColorGray)

	return core.Pt(left+1, hudHeight+1), true
}

// Plot draws board cell p in colour c. Cells outside the board, such as the
// rows a falling piece occupies above the top edge, are skipped.
func (f Frame) Plot(dst *core.Screen, origin, p core.Point, c core.Color) {
	if p.X < 0 || p.X >= f.Cols || p.Y < 0 || p.Y >= f.Rows {
		return
	}
	x := origin.X + p.X*2
	y := origin.Y + p.Y
	dst.SetColored(x, y, '█', c)
	dst.SetColored(x+1, y, '█', c)
}

// Overlay draws a centered message box over the board.
func (f Frame) Overlay(dst *core.Screen, origin core.Point, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	c := core.NewRect(origin.X, origin.Y, f.Cols*2, f.Rows).Center()
	box := core.NewRect(c.X-boxW/2, c.Y-boxH/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, boxW, ' ', core.ColorNone)
	}
	dst.DrawBox(box, core.ColorPink)
	dst.DrawText(box.X+(boxW-len(line1))/2, box.Y+1, line1)
	dst.DrawTextColored(box.X+(boxW-len(line2))/2, box.Y+3, line2, core.ColorDim)
}
