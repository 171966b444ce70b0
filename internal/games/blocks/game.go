// Package blocks implements the block-stack mini-game: random tetrominoes
// fall into a well, full rows are cleared and scored.
package blocks

import (
	"time"

	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/games/grid"
	"github.com/koisuji02/webterm/internal/registry"
)

const (
	// Cols and Rows are the well dimensions.
	Cols = 10
	Rows = 20

	// TickInterval is the gravity period.
	TickInterval = 500 * time.Millisecond
)

// Game adapts the block-stack rules to registry.Game.
type Game struct {
	runner *grid.Runner[State]
	frame  grid.Frame
}

// New creates a block-stack game ready to play.
func New() *Game {
	g := &Game{
		frame: grid.Frame{
			Title: "Tetris",
			Hint:  "Arrows to move/rotate. Press R to restart. Esc to exit.",
			Cols:  Cols,
			Rows:  Rows,
		},
	}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset starts a new session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runner = grid.NewRunner[State](Rules{Cols: Cols, Rows: Rows}, grid.NewRand(cfg.Seed))
}

// TickInterval returns the gravity period.
func (g *Game) TickInterval() time.Duration { return TickInterval }

// Tick applies gravity once.
func (g *Game) Tick() core.GameState {
	g.runner.Tick()
	return g.State()
}

// Input applies a move, a rotation or a restart.
func (g *Game) Input(a core.Action) core.GameState {
	g.runner.Input(a)
	return g.State()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.runner.Status()
}

// Render draws the settled cells and the falling piece.
func (g *Game) Render(dst *core.Screen) {
	s := g.runner.State()
	origin, ok := g.frame.Draw(dst, s.Score)
	if !ok {
		return
	}

	for y := 0; y < s.Board.Height(); y++ {
		for x := 0; x < s.Board.Width(); x++ {
			p := core.Pt(x, y)
			if c := s.Board.At(p); c != core.ColorNone {
				g.frame.Plot(dst, origin, p, c)
			}
		}
	}
	for _, c := range s.Piece.Cells() {
		g.frame.Plot(dst, origin, c, s.Piece.Color)
	}

	if s.Phase == grid.Over {
		g.frame.Overlay(dst, origin, "Game Over", "Press R to restart")
	}
}
