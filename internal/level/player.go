package level

import (
	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/core"
)

// Visual characters for the player
const (
	PlayerHead = '◉'
	PlayerBody = '█'
	PlayerLeg1 = '╱'
	PlayerLeg2 = '╲'
)

// Player is the character the user controls.
type Player struct {
	X, Y     float64 // top-left
	VelY     float64
	W, H     float64
	Grounded bool
	Facing   int // -1 left, +1 right

	physics  config.PhysicsConfig
	walkAnim int
}

// NewPlayer creates a player of the configured size at (x, y).
func NewPlayer(x, y float64, pc config.PlayerConfig, physics config.PhysicsConfig) *Player {
	return &Player{
		X:       x,
		Y:       y,
		W:       pc.Width,
		H:       pc.Height,
		Facing:  1,
		physics: physics,
	}
}

// Rect returns the collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Step moves the player by one tick and resolves vertical collisions
// against the ground and solid objects. It returns the object bumped
// from below, if any.
func (p *Player) Step(in core.InputFrame, factor float64, bounds core.Rect, groundY float64, solids []Solid) Solid {
	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= p.physics.WalkSpeed * factor
		p.Facing = -1
	}
	if in.Has(core.ActionRight) {
		dx += p.physics.WalkSpeed * factor
		p.Facing = 1
	}
	if dx != 0 {
		p.walkAnim++
	}
	p.X = core.ClampF(p.X+dx, bounds.X, bounds.Right()-p.W)

	if in.Has(core.ActionJump) && p.Grounded {
		p.VelY = p.physics.JumpImpulse
		p.Grounded = false
	}

	p.VelY += p.physics.Gravity * factor
	if p.VelY > p.physics.MaxFallSpeed {
		p.VelY = p.physics.MaxFallSpeed
	}

	prev := p.Rect()
	p.Y += p.VelY * factor
	p.Grounded = false

	var bumped Solid
	cur := p.Rect()
	for _, s := range solids {
		r := s.Rect()
		if !cur.OverlapsX(r) {
			continue
		}
		switch {
		case p.VelY >= 0 && s.SolidFromAbove() && prev.Bottom() <= r.Y && cur.Bottom() > r.Y:
			p.Y = r.Y - p.H
			p.VelY = 0
			p.Grounded = true
		case p.VelY < 0 && s.SolidFromBelow() && prev.Y >= r.Bottom() && cur.Y < r.Bottom():
			p.Y = r.Bottom()
			p.VelY = 0
			bumped = s
		}
		cur = p.Rect()
	}

	if p.Y+p.H >= groundY {
		p.Y = groundY - p.H
		p.VelY = 0
		p.Grounded = true
	}
	return bumped
}

// Draw renders the player relative to the camera.
func (p *Player) Draw(dst *core.Screen, cam *Camera) {
	x, y := cam.ToScreen(p.X, p.Y)
	w := core.Max(1, core.ToCell(p.W))
	h := core.Max(1, core.ToCell(p.H))

	headX := x
	if p.Facing > 0 {
		headX = x + w - 1
	}
	for dx := 0; dx < w; dx++ {
		dst.SetColored(x+dx, y, PlayerBody, core.ColorBrightRed)
	}
	dst.SetColored(headX, y, PlayerHead, core.ColorBrightRed)
	for dy := 1; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r := PlayerLeg1
			if (dx+p.walkAnim/4)%2 == 1 {
				r = PlayerLeg2
			}
			dst.SetColored(x+dx, y+dy, r, core.ColorBlue)
		}
	}
}
