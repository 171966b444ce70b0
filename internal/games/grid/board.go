// Package grid holds what the grid mini-games have in common: the
// Running/Over phase machine, the settled-cell board, the tick runner that
// separates pure state transitions from scheduling, and the shared chrome
// used to draw a board on a core.Screen.
package grid

import "github.com/koisuji02/webterm/internal/core"

// Board is a fixed-size matrix of settled cells. core.ColorNone marks an empty cell.
// Rows are indexed top to bottom.
type Board struct {
	w, h int
	rows [][]core.Color
}

// NewBoard returns an empty w×h board.
func NewBoard(w, h int) Board {
	b := Board{w: w, h: h, rows: make([][]core.Color, h)}
	for y := range b.rows {
		b.rows[y] = make([]core.Color, w)
	}
	return b
}

// Width returns the number of columns.
func (b Board) Width() int { return b.w }

// Height returns the number of rows.
func (b Board) Height() int { return b.h }

// Bounds returns the board as a rectangle anchored at the origin.
func (b Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.w, b.h)
}

// InBounds reports whether p addresses a cell of the board.
func (b Board) InBounds(p core.Point) bool {
	return b.Bounds().Contains(p)
}

// At returns the colour at p, or core.ColorNone outside the board.
func (b Board) At(p core.Point) core.Color {
	if !b.InBounds(p) {
		return core.ColorNone
	}
	return b.rows[p.Y][p.X]
}

// Occupied reports whether the cell at p holds a settled colour.
func (b Board) Occupied(p core.Point) bool {
	return b.At(p) != core.ColorNone
}

// Set writes c at p. Out-of-bounds writes are ignored.
// Boards are shared between states, so callers Clone before writing.
func (b Board) Set(p core.Point, c core.Color) {
	if !b.InBounds(p) {
		return
	}
	b.rows[p.Y][p.X] = c
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := Board{w: b.w, h: b.h, rows: make([][]core.Color, b.h)}
	for y, row := range b.rows {
		c.rows[y] = append([]core.Color(nil), row...)
	}
	return c
}

// RowFull reports whether every cell of row y is occupied.
func (b Board) RowFull(y int) bool {
	if y < 0 || y >= b.h {
		return false
	}
	for _, c := range b.rows[y] {
		if c == core.ColorNone {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the rows above down and
// prepends the same number of empty rows at the top.
// It returns the new board and the number of rows removed.
func (b Board) ClearFullRows() (Board, int) {
	kept := make([][]core.Color, 0, b.h)
	for y, row := range b.rows {
		if b.RowFull(y) {
			continue
		}
		kept = append(kept, append([]core.Color(nil), row...))
	}

	cleared := b.h - len(kept)
	out := Board{w: b.w, h: b.h, rows: make([][]core.Color, 0, b.h)}
	for range cleared {
		out.rows = append(out.rows, make([]core.Color, b.w))
	}
	out.rows = append(out.rows, kept...)
	return out, cleared
}

// Filled returns the number of occupied cells.
func (b Board) Filled() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c != core.ColorNone {
				n++
			}
		}
	}
	return n
}
