package grid

import "github.com/koisuji02/webterm/internal/core"

// Runner owns one game session's state and feeds it tick and input events in
// arrival order. It holds no timer: the platform decides when Tick is called.
type Runner[S any] struct {
	rules Rules[S]
	rng   Rand
	state S
	ticks uint64
}

// NewRunner creates a runner and starts a session with the given source.
func NewRunner[S any](rules Rules[S], rng Rand) *Runner[S] {
	r := &Runner[S]{rules: rules}
	r.Reset(rng)
	return r
}

// Reset replaces the whole state with a fresh starting configuration.
func (r *Runner[S]) Reset(rng Rand) {
	r.rng = rng
	r.ticks = 0
	r.state = r.rules.New(rng)
}

// Tick applies one timer step. Ticks are no-ops once the phase is Over.
func (r *Runner[S]) Tick() {
	if r.rules.Phase(r.state) == Over {
		return
	}
	r.ticks++
	r.state = r.rules.Tick(r.state, r.rng)
}

// Input applies one input event. Restart works in any phase; other actions
// are ignored once the game is over.
func (r *Runner[S]) Input(a core.Action) {
	if a == core.ActionRestart {
		r.ticks = 0
		r.state = r.rules.New(r.rng)
		return
	}
	if r.rules.Phase(r.state) == Over {
		return
	}
	r.state = r.rules.Apply(r.state, a)
}

// State returns the current state value.
func (r *Runner[S]) State() S {
	return r.state
}

// Ticks returns the number of ticks applied since the last reset or restart.
func (r *Runner[S]) Ticks() uint64 {
	return r.ticks
}

// Status summarizes the state for the platform.
func (r *Runner[S]) Status() core.GameState {
	return core.GameState{
		Score:    r.rules.Score(r.state),
		GameOver: r.rules.Phase(r.state) == Over,
	}
}
