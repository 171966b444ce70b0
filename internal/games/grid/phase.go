package grid

import (
	"math/rand"

	"github.com/koisuji02/webterm/internal/core"
)

// Phase is the lifecycle state of a grid game.
// Over is terminal: only a restart re-enters Running.
type Phase int

const (
	Running Phase = iota
	Over
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Rand is the random source games draw from.
// *rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Rules is the pure transition contract of a grid game over its state type S.
// Implementations never mutate the state they receive: an illegal move
// returns the input state unchanged, a legal one returns a new state.
type Rules[S any] interface {
	// New returns the starting configuration.
	New(rng Rand) S

	// Tick advances the actor by one discrete step.
	Tick(s S, rng Rand) S

	// Apply reacts to a directional input.
	Apply(s S, a core.Action) S

	// Phase and Score expose the shared parts of the state.
	Phase(s S) Phase
	Score(s S) int
}
