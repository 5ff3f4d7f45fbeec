// Package registry provides a global registry of level object factories.
// Object packages register themselves in init() functions, so the level
// loader can build objects by their type name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/level"
)

// Factory builds an object from its level file attributes.
type Factory func(attrs level.Attributes, cfg config.GameConfig) (level.Sprite, error)

// TypeInfo contains metadata about a registered object type.
type TypeInfo struct {
	Type string
	Name string
}

type entry struct {
	factory Factory
	name    string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a factory for the given object type.
// name is the display name shown by listings.
// Panics if the type is already registered.
func Register(typeName, name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[typeName]; exists {
		panic(fmt.Sprintf("registry: object type %q already registered", typeName))
	}
	entries[typeName] = entry{factory: f, name: name}
}

// List returns all registered object types, sorted by type.
func List() []TypeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TypeInfo, 0, len(entries))
	for t, e := range entries {
		result = append(result, TypeInfo{Type: t, Name: e.name})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Type < result[j].Type
	})

	return result
}

// Create builds an object of the given type.
// Returns an error if the type is not registered or the factory fails.
func Create(typeName string, attrs level.Attributes, cfg config.GameConfig) (level.Sprite, error) {
	mu.RLock()
	e, ok := entries[typeName]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown object type %q", typeName)
	}

	s, err := e.factory(attrs, cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", typeName, err)
	}
	return s, nil
}

// Exists checks if an object type is registered.
func Exists(typeName string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[typeName]
	return ok
}
