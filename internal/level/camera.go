package level

import "github.com/vovakirdan/tui-maryo/internal/core"

// updateMargin is how far outside the view sprites keep updating.
const updateMargin = 10

// Camera is the view into the level. Coordinates are level cells.
type Camera struct {
	X, Y float64 // top-left of the view
	W, H float64 // view size

	// YOffset shifts the view down while the player looks down.
	YOffset float64

	// Limit bounds the view, normally the level rectangle.
	Limit core.Rect
}

// NewCamera creates a camera with the given view size and limit.
func NewCamera(w, h float64, limit core.Rect) *Camera {
	return &Camera{W: w, H: h, Limit: limit}
}

// View returns the visible rectangle.
func (c *Camera) View() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Center centers the view on target, applies YOffset and clamps to Limit.
func (c *Camera) Center(target core.Rect) {
	cx, cy := target.Center()
	c.X = cx - c.W/2
	c.Y = cy - c.H/2 + c.YOffset
	c.clamp()
}

func (c *Camera) clamp() {
	if c.W >= c.Limit.W {
		c.X = c.Limit.X
	} else {
		c.X = core.ClampF(c.X, c.Limit.X, c.Limit.Right()-c.W)
	}
	if c.H >= c.Limit.H {
		// Anchor to the bottom so the ground stays visible.
		c.Y = c.Limit.Bottom() - c.H
	} else {
		c.Y = core.ClampF(c.Y, c.Limit.Y, c.Limit.Bottom()-c.H)
	}
}

// ToScreen converts a level position to a screen cell.
func (c *Camera) ToScreen(x, y float64) (int, int) {
	return core.ToCell(x - c.X), core.ToCell(y - c.Y)
}

// ScreenRect converts a level rectangle to screen space.
func (c *Camera) ScreenRect(r core.Rect) core.Rect {
	return r.Moved(-c.X, -c.Y)
}

// InRange reports whether r is within the update margin around the view.
func (c *Camera) InRange(r core.Rect) bool {
	v := c.View()
	v.X -= updateMargin
	v.Y -= updateMargin
	v.W += 2 * updateMargin
	v.H += 2 * updateMargin
	return v.Intersects(r)
}
