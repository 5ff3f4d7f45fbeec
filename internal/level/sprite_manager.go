package level

import "github.com/vovakirdan/tui-maryo/internal/core"

// SpriteManager owns every sprite in a level. Sprites added to it are
// updated, drawn and, unless spawned, saved with the level.
type SpriteManager struct {
	objects []Sprite
	byID    map[string]Sprite
}

// NewSpriteManager creates an empty manager.
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{
		byID: make(map[string]Sprite),
	}
}

// Add takes ownership of s. Adding the same sprite twice is a no-op.
func (m *SpriteManager) Add(s Sprite) {
	if _, exists := m.byID[s.ID()]; exists {
		return
	}
	m.objects = append(m.objects, s)
	m.byID[s.ID()] = s
}

// Remove drops the sprite with the given ID. It returns false if absent.
func (m *SpriteManager) Remove(id string) bool {
	if _, ok := m.byID[id]; !ok {
		return false
	}
	delete(m.byID, id)
	kept := m.objects[:0]
	for _, s := range m.objects {
		if s.ID() != id {
			kept = append(kept, s)
		}
	}
	m.objects = kept
	return true
}

// Find returns the sprite with the given ID, or nil.
func (m *SpriteManager) Find(id string) Sprite {
	return m.byID[id]
}

// Len returns the number of sprites.
func (m *SpriteManager) Len() int {
	return len(m.objects)
}

// At returns the sprite at index i in insertion order.
func (m *SpriteManager) At(i int) Sprite {
	if i < 0 || i >= len(m.objects) {
		return nil
	}
	return m.objects[i]
}

// Objects returns the sprites in insertion order. The slice must not be modified.
func (m *SpriteManager) Objects() []Sprite {
	return m.objects
}

// Persistent returns the sprites that belong in a saved level.
func (m *SpriteManager) Persistent() []Sprite {
	result := make([]Sprite, 0, len(m.objects))
	for _, s := range m.objects {
		if !s.IsSpawned() {
			result = append(result, s)
		}
	}
	return result
}

// Update advances every sprite by one tick.
func (m *SpriteManager) Update(ctx *Context) {
	// Sprites may be added during an update; only the current ones run this tick.
	current := m.objects[:len(m.objects):len(m.objects)]
	for _, s := range current {
		s.Update(ctx)
	}
}

// Draw renders every sprite.
func (m *SpriteManager) Draw(dst *core.Screen, cam *Camera) {
	for _, s := range m.objects {
		s.Draw(dst, cam)
	}
}
