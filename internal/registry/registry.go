// Package registry provides the catalogue of launchable games.
// Games register themselves in init() functions, allowing the shell and the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/koisuji02/webterm/internal/core"
)

// Game is the interface every launchable game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform owns timing, key mapping and rendering.
type Game interface {
	// ID returns the identifier used by the "game" command (e.g. "snake").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session. Called once at launch.
	Reset(cfg core.RuntimeConfig)

	// TickInterval is the fixed period between two Tick calls.
	TickInterval() time.Duration

	// Tick advances the simulation by one step.
	Tick() core.GameState

	// Input applies one input event immediately.
	Input(a core.Action) core.GameState

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Registry maps game identifiers to factories. It is safe for concurrent use
// so SSH sessions can launch games in parallel.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	titles    map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		titles:    make(map[string]string),
	}
}

var std = New()

// Default returns the process-wide registry that games register into.
func Default() *Registry {
	return std
}

// Register adds a game factory to the default registry.
// Typically called from a game's init() function.
func Register(id string, f Factory) {
	std.Register(id, f)
}

// List returns the games of the default registry, sorted by ID.
func List() []GameInfo {
	return std.List()
}

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) {
	return std.Create(id)
}

// Exists checks the default registry for id.
func Exists(id string) bool {
	return std.Exists(id)
}

// Title looks up a title in the default registry.
func Title(id string) string {
	return std.Title(id)
}

// Register adds a game factory.
// Panics if a game with the same ID is already registered.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	r.factories[id] = f
	r.titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.factories))
	for id := range r.factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: r.titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the sorted identifiers of all registered games.
func (r *Registry) IDs() []string {
	games := r.List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// Title returns the display title for id, or id itself if it is unknown.
func (r *Registry) Title(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.titles[id]; ok {
		return t
	}
	return id
}
