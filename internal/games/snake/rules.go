package snake

import (
	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/games/grid"
)

// Unit direction vectors.
var (
	DirUp    = core.Pt(0, -1)
	DirDown  = core.Pt(0, 1)
	DirLeft  = core.Pt(-1, 0)
	DirRight = core.Pt(1, 0)
)

// StartBody is the initial snake, head first.
var StartBody = []core.Point{{X: 8, Y: 10}, {X: 7, Y: 10}, {X: 6, Y: 10}}

// State is one immutable snapshot of a snake session.
type State struct {
	Body  []core.Point // Head at index 0
	Dir   core.Point   // Direction of the last move
	Next  core.Point   // Direction the next tick will use
	Food  core.Point
	Score int
	Phase grid.Phase
}

// Head returns the head cell.
func (s State) Head() core.Point {
	return s.Body[0]
}

// Occupies reports whether p is part of the body.
func (s State) Occupies(p core.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// Rules implements grid.Rules for a Size×Size snake board.
type Rules struct {
	Size int
}

// New returns the starting configuration: a three-cell snake heading right
// and food on a random free cell.
func (r Rules) New(rng grid.Rand) State {
	body := append([]core.Point(nil), StartBody...)
	return State{
		Body:  body,
		Dir:   DirRight,
		Next:  DirRight,
		Food:  PlaceFood(body, r.Size, rng),
		Phase: grid.Running,
	}
}

// Tick moves the snake one cell. Leaving the board or running into any body
// cell ends the game with the body left where it was.
func (r Rules) Tick(s State, rng grid.Rand) State {
	dir := s.Next
	head := s.Head().Add(dir)

	bounds := core.NewRect(0, 0, r.Size, r.Size)
	if !bounds.Contains(head) || s.Occupies(head) {
		s.Phase = grid.Over
		return s
	}

	body := make([]core.Point, 0, len(s.Body)+1)
	body = append(body, head)
	body = append(body, s.Body...)

	if head == s.Food {
		s.Score++
		s.Food = PlaceFood(body, r.Size, rng)
	} else {
		body = body[:len(body)-1]
	}

	s.Body = body
	s.Dir = dir
	return s
}

// Apply maps arrow actions to turns. Other actions leave the state alone.
func (r Rules) Apply(s State, a core.Action) State {
	switch a {
	case core.ActionUp:
		return Turn(s, DirUp)
	case core.ActionDown:
		return Turn(s, DirDown)
	case core.ActionLeft:
		return Turn(s, DirLeft)
	case core.ActionRight:
		return Turn(s, DirRight)
	}
	return s
}

// Phase returns the session phase.
func (Rules) Phase(s State) grid.Phase { return s.Phase }

// Score returns the number of food cells eaten.
func (Rules) Score(s State) int { return s.Score }

// Turn sets the direction of the next move. A turn that exactly reverses the
// direction of the last move is rejected.
func Turn(s State, dir core.Point) State {
	if dir == s.Dir.Neg() {
		return s
	}
	s.Next = dir
	return s
}

// PlaceFood picks a uniformly random cell outside the body by rejection
// sampling. It returns (-1, -1) when the body covers the whole board.
func PlaceFood(body []core.Point, size int, rng grid.Rand) core.Point {
	if len(body) >= size*size {
		return core.Pt(-1, -1)
	}

	occupied := make(map[core.Point]bool, len(body))
	for _, seg := range body {
		occupied[seg] = true
	}

	for {
		p := core.Pt(rng.Intn(size), rng.Intn(size))
		if !occupied[p] {
			return p
		}
	}
}
