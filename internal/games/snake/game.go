// Package snake implements the snake mini-game: a growing path on a square
// grid that eats food and dies on walls or on itself.
package snake

import (
	"time"

	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/games/grid"
	"github.com/koisuji02/webterm/internal/registry"
)

const (
	// Size is the board edge length in cells.
	Size = 20

	// TickInterval is the time between two moves.
	TickInterval = 130 * time.Millisecond
)

// Game adapts the snake rules to registry.Game.
type Game struct {
	runner *grid.Runner[State]
	frame  grid.Frame
}

// New creates a snake game ready to play.
func New() *Game {
	g := &Game{
		frame: grid.Frame{
			Title: "Snake",
			Hint:  "Arrows to move. Press R to restart. Esc to exit.",
			Cols:  Size,
			Rows:  Size,
		},
	}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset starts a new session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runner = grid.NewRunner[State](Rules{Size: Size}, grid.NewRand(cfg.Seed))
}

// TickInterval returns the move period.
func (g *Game) TickInterval() time.Duration { return TickInterval }

// Tick advances the snake one cell.
func (g *Game) Tick() core.GameState {
	g.runner.Tick()
	return g.State()
}

// Input applies a turn or a restart.
func (g *Game) Input(a core.Action) core.GameState {
	g.runner.Input(a)
	return g.State()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.runner.Status()
}

// Render draws the board, the snake and the food.
func (g *Game) Render(dst *core.Screen) {
	s := g.runner.State()
	origin, ok := g.frame.Draw(dst, s.Score)
	if !ok {
		return
	}

	// Tail first so the head wins if anything overlaps after game over
	for i := len(s.Body) - 1; i >= 0; i-- {
		g.frame.Plot(dst, origin, s.Body[i], core.ColorSky)
	}
	g.frame.Plot(dst, origin, s.Food, core.ColorPink)

	if s.Phase == grid.Over {
		g.frame.Overlay(dst, origin, "Game Over", "Press R to restart")
	}
}
