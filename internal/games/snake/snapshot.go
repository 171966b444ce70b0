package snake

import "github.com/koisuji02/webterm/internal/core"

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.Point
	Dir      core.Point
	Food     core.Point
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.runner.State()
	return Snapshot{
		Tick:     g.runner.Ticks(),
		Score:    s.Score,
		SnakeLen: len(s.Body),
		Head:     s.Head(),
		Dir:      s.Dir,
		Food:     s.Food,
		GameOver: g.runner.Status().GameOver,
	}
}
