package blocks

import (
	"strings"
	"testing"

	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/games/grid"
)

// seqRand replays a fixed sequence of values, modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

const (
	pieceI = 0
	pieceO = 1
	pieceT = 2
)

func piece(idx int, pos core.Point) Piece {
	t := Catalog[idx]
	return Piece{Shape: t.Shape, Color: t.Color, Pos: pos}
}

// fillRow occupies every cell of row y except the listed columns.
func fillRow(b grid.Board, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Set(core.Pt(x, y), core.ColorGray)
		}
	}
}

func TestNewStateSpawnsAboveBoard(t *testing.T) {
	s := Rules{Cols: Cols, Rows: Rows}.New(&seqRand{vals: []int{pieceT}})

	if s.Piece.Pos != core.Pt(3, -1) {
		t.Errorf("spawn = %v, expected (3, -1)", s.Piece.Pos)
	}
	if s.Piece.Color != core.ColorPink {
		t.Errorf("color = %v, expected pink for T", s.Piece.Color)
	}
	if s.Board.Filled() != 0 || s.Score != 0 || s.Phase != grid.Running {
		t.Error("fresh state should be empty, scoreless and running")
	}
}

func TestTickMovesPieceDown(t *testing.T) {
	rules := Rules{Cols: Cols, Rows: Rows}
	s := rules.New(&seqRand{vals: []int{pieceO}})

	next := rules.Tick(s, &seqRand{vals: []int{0}})

	if next.Piece.Pos != core.Pt(3, 0) {
		t.Errorf("pos = %v, expected (3, 0)", next.Piece.Pos)
	}
	if s.Piece.Pos != core.Pt(3, -1) {
		t.Error("Tick mutated its input state")
	}
}

func TestClearTwoRowsScores200(t *testing.T) {
	rules := Rules{Cols: Cols, Rows: Rows}
	s := rules.New(&seqRand{vals: []int{0}})
	fillRow(s.Board, 18, 0)
	fillRow(s.Board, 19, 0)

	// Vertical I resting in the gap of column 0, covering rows 16..19
	s.Piece = Piece{Shape: Rotate(Catalog[pieceI].Shape), Color: core.ColorSky, Pos: core.Pt(0, 16)}
	before := s.Board.Filled()

	next := rules.Tick(s, &seqRand{vals: []int{pieceI}})

	if next.Score != 200 {
		t.Errorf("score = %d, expected 200", next.Score)
	}
	if next.Board.Filled() != 2 {
		t.Errorf("settled cells = %d, expected 2 left over from the piece", next.Board.Filled())
	}
	if !next.Board.Occupied(core.Pt(0, 18)) || !next.Board.Occupied(core.Pt(0, 19)) {
		t.Error("remaining piece cells should shift down to the bottom rows")
	}
	if next.Board.Occupied(core.Pt(5, 19)) {
		t.Error("cleared rows should be gone")
	}
	if next.Phase != grid.Running {
		t.Error("game should still be running")
	}
	if next.Piece.Pos != core.Pt(3, -1) {
		t.Errorf("new piece at %v, expected spawn (3, -1)", next.Piece.Pos)
	}
	if s.Board.Filled() != before {
		t.Error("Tick mutated the input board")
	}
}

func TestMergeWithoutClearKeepsScore(t *testing.T) {
	rules := Rules{Cols: Cols, Rows: Rows}
	s := rules.New(&seqRand{vals: []int{0}})
	s.Score = 300
	s.Piece = piece(pieceO, core.Pt(0, 18))

	next := rules.Tick(s, &seqRand{vals: []int{pieceT}})

	if next.Score != 300 {
		t.Errorf("score = %d, expected 300", next.Score)
	}
	if next.Board.Filled() != 4 {
		t.Errorf("settled cells = %d, expected 4", next.Board.Filled())
	}
	if next.Board.At(core.Pt(1, 19)) != core.ColorSun {
		t.Error("merged cells should keep the piece colour")
	}
	if next.Piece.Color != core.ColorPink {
		t.Error("a new random piece should be spawned")
	}
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	rules := Rules{Cols: Cols, Rows: Rows}
	s := rules.New(&seqRand{vals: []int{0}})
	s.Board.Set(core.Pt(4, 0), core.ColorGray)
	s.Piece = piece(pieceO, core.Pt(0, 18))

	next := rules.Tick(s, &seqRand{vals: []int{pieceO}})

	if next.Phase != grid.Over {
		t.Fatal("spawning onto settled cells should end the game")
	}
	if next.Board.Filled() != 5 {
		t.Errorf("settled cells = %d, expected the merged piece plus the blocker", next.Board.Filled())
	}
}

func TestFourRotationsRestoreShape(t *testing.T) {
	for _, tm := range Catalog {
		t.Run(tm.Name, func(t *testing.T) {
			shape := tm.Shape
			for range 4 {
				shape = Rotate(shape)
			}
			if !shape.Equal(tm.Shape) {
				t.Errorf("four rotations changed %s", tm.Name)
			}
			if got, want := len(shape.Cells()), 4; got != want {
				t.Errorf("cells = %d, expected %d", got, want)
			}
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	got := Rotate(Catalog[pieceT].Shape)
	want := parse("#.", "##", "#.")
	if !got.Equal(want) {
		t.Errorf("rotated T = %v, expected %v", got, want)
	}
}

func TestApply(t *testing.T) {
	rules := Rules{Cols: Cols, Rows: Rows}
	base := rules.New(&seqRand{vals: []int{0}})

	tests := []struct {
		name   string
		piece  Piece
		action core.Action
		want   core.Point
	}{
		{"left", piece(pieceO, core.Pt(3, 5)), core.ActionLeft, core.Pt(2, 5)},
		{"right", piece(pieceO, core.Pt(3, 5)), core.ActionRight, core.Pt(4, 5)},
		{"down", piece(pieceO, core.Pt(3, 5)), core.ActionDown, core.Pt(3, 6)},
		{"left wall", piece(pieceO, core.Pt(0, 5)), core.ActionLeft, core.Pt(0, 5)},
		{"right wall", piece(pieceO, core.Pt(8, 5)), core.ActionRight, core.Pt(8, 5)},
		{"floor", piece(pieceO, core.Pt(3, 18)), core.ActionDown, core.Pt(3, 18)},
		{"ignored", piece(pieceO, core.Pt(3, 5)), core.ActionNone, core.Pt(3, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			s.Piece = tt.piece
			next := rules.Apply(s, tt.action)
			if next.Piece.Pos != tt.want {
				t.Errorf("pos = %v, expected %v", next.Piece.Pos, tt.want)
			}
			if next.Board.Filled() != 0 {
				t.Error("moves must never merge the piece")
			}
		})
	}
}

func TestApplyBlockedBySettledCells(t *testing.T) {
	rules := Rules{Cols: Cols, Rows: Rows}
	s := rules.New(&seqRand{vals: []int{0}})
	s.Board.Set(core.Pt(2, 5), core.ColorGray)
	s.Piece = piece(pieceO, core.Pt(3, 5))

	next := rules.Apply(s, core.ActionLeft)
	if next.Piece.Pos != core.Pt(3, 5) {
		t.Errorf("pos = %v, expected the move to be rejected", next.Piece.Pos)
	}
}

func TestRotateRejectedOnCollision(t *testing.T) {
	rules := Rules{Cols: Cols, Rows: Rows}
	s := rules.New(&seqRand{vals: []int{0}})
	vertical := Rotate(Catalog[pieceI].Shape)
	s.Piece = Piece{Shape: vertical, Color: core.ColorSky, Pos: core.Pt(9, 5)}

	next := rules.Apply(s, core.ActionUp)
	if !next.Piece.Shape.Equal(vertical) {
		t.Error("rotation past the right wall should be rejected")
	}

	s.Piece.Pos = core.Pt(2, 5)
	next = rules.Apply(s, core.ActionUp)
	if !next.Piece.Shape.Equal(Catalog[pieceI].Shape) {
		t.Error("rotation with room should be accepted")
	}
}

func TestCollidesAboveTop(t *testing.T) {
	b := grid.NewBoard(Cols, Rows)
	if Collides(b, Catalog[pieceO].Shape, core.Pt(3, -1)) {
		t.Error("cells above the top edge should be free")
	}
	if !Collides(b, Catalog[pieceO].Shape, core.Pt(-1, 0)) {
		t.Error("left edge should collide")
	}
	if !Collides(b, Catalog[pieceO].Shape, core.Pt(3, 19)) {
		t.Error("bottom edge should collide")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New()

	// Unsteered pieces stack in the middle columns and never complete a row
	for i := 0; i < 5000 && !g.State().GameOver; i++ {
		g.Tick()
	}
	if !g.State().GameOver {
		t.Fatal("expected the stack to reach the top")
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d, expected 0 without cleared rows", g.State().Score)
	}

	frozen := g.Snapshot()
	g.Tick()
	g.Input(core.ActionLeft)
	if g.Snapshot() != frozen {
		t.Error("state should be frozen once the game is over")
	}

	g.Input(core.ActionRestart)
	snap := g.Snapshot()
	if snap.GameOver || snap.Settled != 0 || snap.Tick != 0 {
		t.Errorf("restart should give a fresh state, got %+v", snap)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	a, b := New(), New()
	a.Reset(cfg)
	b.Reset(cfg)

	inputs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := 0; i < 200; i++ {
		a.Input(inputs[i%len(inputs)])
		b.Input(inputs[i%len(inputs)])
		a.Tick()
		b.Tick()
	}

	if a.Snapshot() != b.Snapshot() {
		t.Errorf("same seed diverged: %+v vs %+v", a.Snapshot(), b.Snapshot())
	}
}

func TestIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "tetris" {
		t.Errorf("ID = %q, expected tetris", g.ID())
	}
	if g.Title() != "Tetris" {
		t.Errorf("Title = %q, expected Tetris", g.Title())
	}
	if g.TickInterval() != TickInterval {
		t.Errorf("TickInterval = %v, expected %v", g.TickInterval(), TickInterval)
	}
}

func TestRender(t *testing.T) {
	g := New()
	for range 3 {
		g.Tick()
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Tetris") || !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the title and score")
	}
	if !strings.Contains(out, "█") {
		t.Error("the falling piece should be drawn")
	}
}
