package blocks

import (
	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/games/grid"
)

// PointsPerRow is the score for each cleared row.
const PointsPerRow = 100

// spawnY lets a fresh piece start one row above the visible board.
const spawnY = -1

// spawnWidth is the widest catalogue shape; every piece spawns at the column
// that centers it, so all pieces share one spawn offset.
const spawnWidth = 4

// Piece is the falling actor: a shape, its colour and the board position of
// the shape's top-left corner.
type Piece struct {
	Shape Shape
	Color core.Color
	Pos   core.Point
}

// Cells returns the board cells the piece covers.
func (p Piece) Cells() []core.Point {
	offsets := p.Shape.Cells()
	for i, o := range offsets {
		offsets[i] = p.Pos.Add(o)
	}
	return offsets
}

// State is one snapshot of a block-stack session. Boards are never written in
// place: every transition that changes the board works on a clone.
type State struct {
	Board grid.Board
	Piece Piece
	Score int
	Phase grid.Phase
}

// Collides reports whether shape placed at pos leaves the board sideways or
// through the bottom, or overlaps a settled cell. Cells above the top edge are free.
func Collides(b grid.Board, shape Shape, pos core.Point) bool {
	for _, o := range shape.Cells() {
		c := pos.Add(o)
		if c.X < 0 || c.X >= b.Width() || c.Y >= b.Height() {
			return true
		}
		if c.Y >= 0 && b.Occupied(c) {
			return true
		}
	}
	return false
}

// Merge returns a copy of b with the piece written into it.
func Merge(b grid.Board, p Piece) grid.Board {
	out := b.Clone()
	for _, c := range p.Cells() {
		out.Set(c, p.Color)
	}
	return out
}

// SpawnPos returns the spawn offset for a well of the given width.
func SpawnPos(width int) core.Point {
	return core.Pt((width-spawnWidth)/2, spawnY)
}

// NewPiece picks a catalogue entry uniformly at random and places it at the
// spawn offset.
func NewPiece(width int, rng grid.Rand) Piece {
	t := Catalog[rng.Intn(len(Catalog))]
	return Piece{
		Shape: t.Shape,
		Color: t.Color,
		Pos:   SpawnPos(width),
	}
}

// Rules implements grid.Rules for a Cols×Rows well.
type Rules struct {
	Cols int
	Rows int
}

// New returns an empty board with a random piece at the spawn position.
func (r Rules) New(rng grid.Rand) State {
	return State{
		Board: grid.NewBoard(r.Cols, r.Rows),
		Piece: NewPiece(r.Cols, rng),
		Phase: grid.Running,
	}
}

// Tick drops the piece one row. A blocked piece is merged, full rows are
// cleared and scored, and a new piece is spawned; if the new piece does not
// fit the game is over.
func (r Rules) Tick(s State, rng grid.Rand) State {
	down := s.Piece.Pos.Add(core.Pt(0, 1))
	if !Collides(s.Board, s.Piece.Shape, down) {
		s.Piece.Pos = down
		return s
	}

	board, cleared := Merge(s.Board, s.Piece).ClearFullRows()
	s.Board = board
	s.Score += PointsPerRow * cleared

	next := NewPiece(r.Cols, rng)
	if Collides(s.Board, next.Shape, next.Pos) {
		s.Phase = grid.Over
		return s
	}
	s.Piece = next
	return s
}

// Apply handles left, right, soft drop and rotation (Up).
func (r Rules) Apply(s State, a core.Action) State {
	switch a {
	case core.ActionLeft:
		return Shift(s, core.Pt(-1, 0))
	case core.ActionRight:
		return Shift(s, core.Pt(1, 0))
	case core.ActionDown:
		return Shift(s, core.Pt(0, 1))
	case core.ActionUp:
		return RotatePiece(s)
	}
	return s
}

// Phase returns the session phase.
func (Rules) Phase(s State) grid.Phase { return s.Phase }

// Score returns the accumulated score.
func (Rules) Score(s State) int { return s.Score }

// Shift moves the piece by delta if the destination is free.
func Shift(s State, delta core.Point) State {
	pos := s.Piece.Pos.Add(delta)
	if Collides(s.Board, s.Piece.Shape, pos) {
		return s
	}
	s.Piece.Pos = pos
	return s
}

// RotatePiece turns the piece clockwise in place if the rotated shape fits at
// the current position.
func RotatePiece(s State) State {
	rotated := Rotate(s.Piece.Shape)
	if Collides(s.Board, rotated, s.Piece.Pos) {
		return s
	}
	s.Piece.Shape = rotated
	return s
}
