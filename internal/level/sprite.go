// Package level holds the object model of a level: sprites, the sprite
// manager, the camera, the player and the level simulation itself.
package level

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-maryo/internal/core"
)

// Sprite is a placeable, updatable level entity.
type Sprite interface {
	// ID returns a unique identifier for this instance.
	ID() string

	// TypeName returns the level file object type (e.g. "enemy/spika").
	TypeName() string

	// Name returns a human-readable name for editors and logs.
	Name() string

	// Rect returns the current collision rectangle.
	Rect() core.Rect

	// Update advances the sprite by one tick.
	Update(ctx *Context)

	// Draw renders the sprite relative to the camera.
	Draw(dst *core.Screen, cam *Camera)

	// Save returns the properties written to the level file.
	Save() Properties

	// IsSpawned reports whether the sprite was created at runtime.
	// Spawned sprites are not saved with the level.
	IsSpawned() bool
}

// Activatable is implemented by objects the player can trigger.
type Activatable interface {
	Sprite
	CanActivate() bool
	Activate(host Host)
}

// Solid is implemented by objects the player collides with vertically.
type Solid interface {
	Sprite
	// SolidFromAbove reports whether the player can stand on it.
	SolidFromAbove() bool
	// SolidFromBelow reports whether the player's head bumps it.
	SolidFromBelow() bool
}

// Hazard is implemented by objects that end the run on contact.
type Hazard interface {
	Sprite
	Hurts(r core.Rect) bool
}

// Base carries the state every sprite shares. Embed it in concrete types.
type Base struct {
	id          string
	name        string
	posX, posY  float64
	startX      float64
	startY      float64
	w, h        float64
	spawned     bool
	validUpdate bool
}

// NewBase creates a sprite base with a fresh ID and the given size.
func NewBase(name string, w, h float64) Base {
	return Base{
		id:          uuid.NewString(),
		name:        name,
		w:           w,
		h:           h,
		validUpdate: true,
	}
}

// ID implements Sprite.
func (b *Base) ID() string { return b.id }

// Name implements Sprite.
func (b *Base) Name() string { return b.name }

// SetName changes the display name.
func (b *Base) SetName(name string) { b.name = name }

// Rect implements Sprite.
func (b *Base) Rect() core.Rect {
	return core.NewRect(b.posX, b.posY, b.w, b.h)
}

// Pos returns the current position.
func (b *Base) Pos() (float64, float64) { return b.posX, b.posY }

// StartPos returns the position the sprite was placed at.
func (b *Base) StartPos() (float64, float64) { return b.startX, b.startY }

// SetPos moves the sprite. With newStart the start position moves too.
func (b *Base) SetPos(x, y float64, newStart bool) {
	b.posX, b.posY = x, y
	if newStart {
		b.startX, b.startY = x, y
	}
}

// Move translates the current position.
func (b *Base) Move(dx, dy float64) {
	b.posX += dx
	b.posY += dy
}

// SetSize changes the collision size.
func (b *Base) SetSize(w, h float64) {
	b.w, b.h = w, h
}

// IsSpawned implements Sprite.
func (b *Base) IsSpawned() bool { return b.spawned }

// SetSpawned marks the sprite as created at runtime.
func (b *Base) SetSpawned(spawned bool) { b.spawned = spawned }

// ValidUpdate reports whether the sprite takes part in updates.
func (b *Base) ValidUpdate() bool { return b.validUpdate }

// SetValidUpdate enables or disables updates.
func (b *Base) SetValidUpdate(v bool) { b.validUpdate = v }

// IsInRange reports whether the sprite is close enough to the camera view to update.
func (b *Base) IsInRange(cam *Camera) bool {
	if cam == nil {
		return true
	}
	return cam.InRange(b.Rect())
}

// SavePos writes the start position, which is what level files store.
func (b *Base) SavePos(p *Properties) {
	p.AddFloat("posx", b.startX)
	p.AddFloat("posy", b.startY)
}

// LoadPos reads posx/posy and places the sprite there.
func (b *Base) LoadPos(a Attributes) error {
	x, err := a.Float("posx", 0)
	if err != nil {
		return err
	}
	y, err := a.Float("posy", 0)
	if err != nil {
		return err
	}
	b.SetPos(x, y, true)
	return nil
}
