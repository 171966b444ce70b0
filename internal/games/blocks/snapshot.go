package blocks

import "github.com/koisuji02/webterm/internal/core"

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Score    int
	Settled  int
	PiecePos core.Point
	Color    core.Color
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.runner.State()
	return Snapshot{
		Tick:     g.runner.Ticks(),
		Score:    s.Score,
		Settled:  s.Board.Filled(),
		PiecePos: s.Piece.Pos,
		Color:    s.Piece.Color,
		GameOver: g.runner.Status().GameOver,
	}
}
