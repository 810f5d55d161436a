// Package registry provides a global registry for screen factories.
// Screens register themselves in init() functions, allowing the CLI
// to discover and build screens without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wordrpg/internal/core"
)

// Screen is implemented by everything the CLI can show: splash text, menus,
// frames and maps.
type Screen interface {
	// ID returns a unique identifier for this screen (e.g., "splash", "map").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Build composes the screen into a fresh buffer sized from cfg.
	// Asset failures are returned; drawing problems are only reported.
	Build(cfg core.RuntimeConfig) (*core.Screen, error)
}

// ScreenInfo contains metadata about a registered screen.
type ScreenInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a screen.
type Factory func() Screen

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a screen factory to the registry.
// Typically called from a screen's init() function.
// Panics if a screen with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: screen %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered screens, sorted by ID.
func List() []ScreenInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScreenInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ScreenInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new screen by its ID.
// Returns an error if the screen ID is not registered.
func Create(id string) (Screen, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown screen %q", id)
	}

	return f(), nil
}

// Exists checks if a screen with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
