package blocks

import "github.com/koisuji02/webterm/internal/core"

// Shape is a small occupancy matrix, indexed [row][col].
type Shape [][]bool

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Cells returns the occupied offsets of the shape relative to its top-left corner.
func (s Shape) Cells() []core.Point {
	var out []core.Point
	for y, row := range s {
		for x, on := range row {
			if on {
				out = append(out, core.Pt(x, y))
			}
		}
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and occupancy.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns the shape turned 90° clockwise. It is computed from the
// current matrix every time, so four rotations give back the original.
func Rotate(s Shape) Shape {
	rows, cols := s.Height(), s.Width()
	out := make(Shape, cols)
	for x := range out {
		out[x] = make([]bool, rows)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[x][rows-1-y] = s[y][x]
		}
	}
	return out
}

// Tetromino is a catalogue entry.
type Tetromino struct {
	Name  string
	Shape Shape
	Color core.Color
}

// parse builds a shape from rows of '#' and '.'.
func parse(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// Catalog is the fixed set of pieces, each with its colour.
var Catalog = []Tetromino{
	{Name: "I", Shape: parse("####"), Color: core.ColorSky},
	{Name: "O", Shape: parse("##", "##"), Color: core.ColorSun},
	{Name: "T", Shape: parse(".#.", "###"), Color: core.ColorPink},
	{Name: "J", Shape: parse("#..", "###"), Color: core.ColorMint},
	{Name: "L", Shape: parse("..#", "###"), Color: core.ColorApricot},
	{Name: "S", Shape: parse(".##", "##."), Color: core.ColorLavender},
	{Name: "Z", Shape: parse("##.", ".##"), Color: core.ColorTeal},
}
