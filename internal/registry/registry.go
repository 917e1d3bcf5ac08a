// Package registry provides a global registry for minigame factories.
// Minigames register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kunstkammer/dadaspiel/internal/core"
)

// Minigame is the interface every playable round implements. Minigames
// contain pure logic with no external dependencies (especially no Bubble
// Tea); the platform handles input mapping, timing, and display.
//
// A minigame reports at most one non-None Outcome per playthrough and owns
// no timer of its own: the platform feeds it elapsed-time deltas from the
// frame clock it owns for the round.
type Minigame interface {
	// ID returns a unique identifier (e.g. "soupe"), matching the id used
	// in the case definitions.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the round with the session-supplied
	// modifiers (slow motion, inverted rules, mistake forgiveness hook).
	Reset(cfg core.RuntimeConfig, mods core.Modifiers)

	// Step advances the simulation by the elapsed wall-clock time dt.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)
}

// Info contains metadata about a registered minigame.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a minigame.
type Factory func() Minigame

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a minigame factory to the registry.
// Typically called from a minigame's init() function.
// Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: minigame %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered minigames, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new minigame by its ID.
func Create(id string) (Minigame, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown minigame %q", id)
	}

	return f(), nil
}

// Exists checks if a minigame with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
