// Package enemies implements the hostile level objects.
package enemies

import (
	"github.com/vovakirdan/tui-maryo/internal/core"
	"github.com/vovakirdan/tui-maryo/internal/level"
)

// Enemy carries the state every enemy shares. Embed it in concrete enemies.
type Enemy struct {
	level.Base

	dead          bool
	fireResistant bool
	iceResistance float64 // 0 = freezes normally, 1 = immune
	killPoints    int
}

// NewEnemy creates an enemy base with the given size.
func NewEnemy(name string, w, h float64) Enemy {
	return Enemy{Base: level.NewBase(name, w, h)}
}

// Dead reports whether the enemy was killed.
func (e *Enemy) Dead() bool { return e.dead }

// Kill removes the enemy from play. It stays in the sprite manager so a
// saved level still contains it.
func (e *Enemy) Kill() {
	e.dead = true
	e.SetValidUpdate(false)
}

// FireResistant reports whether fireballs hurt the enemy.
func (e *Enemy) FireResistant() bool { return e.fireResistant }

// SetFireResistant changes fire resistance.
func (e *Enemy) SetFireResistant(v bool) { e.fireResistant = v }

// IceResistance returns the ice resistance in [0, 1].
func (e *Enemy) IceResistance() float64 { return e.iceResistance }

// SetIceResistance changes ice resistance, clamped to [0, 1].
func (e *Enemy) SetIceResistance(v float64) {
	e.iceResistance = core.ClampF(v, 0, 1)
}

// KillPoints returns the points awarded for killing the enemy.
func (e *Enemy) KillPoints() int { return e.killPoints }

// SetKillPoints changes the points awarded for killing the enemy.
func (e *Enemy) SetKillPoints(p int) { e.killPoints = p }

// Hurts reports whether a live enemy touches r.
func (e *Enemy) Hurts(r core.Rect) bool {
	return !e.dead && e.Rect().Intersects(r)
}
