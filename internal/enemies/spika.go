package enemies

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/core"
	"github.com/vovakirdan/tui-maryo/internal/level"
	"github.com/vovakirdan/tui-maryo/internal/registry"
)

// SpikaType is the level file object type for spikas.
const SpikaType = "enemy/spika"

// Visual characters for rendering
const (
	SpikaBody  = '●'
	SpikaSpike = '✹'
)

// DefaultColor selects a spika variant.
type DefaultColor int

const (
	ColorOrange DefaultColor = iota
	ColorGreen
	ColorGrey
	ColorRed
)

// ErrNegativeSpeed is returned when a spika speed below zero is requested.
var ErrNegativeSpeed = errors.New("spika speed must be >= 0")

// String returns the color name used in level files and scripts.
func (c DefaultColor) String() string {
	switch c {
	case ColorOrange:
		return "orange"
	case ColorGreen:
		return "green"
	case ColorGrey:
		return "grey"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}

// ParseColor parses a color name.
func ParseColor(name string) (DefaultColor, bool) {
	switch name {
	case "orange":
		return ColorOrange, true
	case "green":
		return ColorGreen, true
	case "grey":
		return ColorGrey, true
	case "red":
		return ColorRed, true
	default:
		return 0, false
	}
}

// variant holds the size, screen color and points of each spika color.
type variant struct {
	w, h   float64
	color  core.Color
	points int
}

var variants = map[DefaultColor]variant{
	ColorOrange: {w: 2, h: 1, color: core.ColorOrange, points: 50},
	ColorGreen:  {w: 2, h: 2, color: core.ColorGreen, points: 200},
	ColorGrey:   {w: 3, h: 2, color: core.ColorGray, points: 500},
	ColorRed:    {w: 4, h: 3, color: core.ColorRed, points: 1000},
}

// Spika is a big rolling ball armed with spikes. It rolls after the player
// once the player comes close.
type Spika struct {
	Enemy

	color DefaultColor
	speed float64

	cfg       config.SpikaConfig
	rollFrame float64
}

// NewSpika creates an orange spika with default speed.
func NewSpika(cfg config.SpikaConfig) *Spika {
	s := &Spika{
		Enemy: NewEnemy("Spika", 2, 1),
		cfg:   cfg,
	}
	s.SetColor(ColorOrange)
	return s
}

// TypeName implements level.Sprite.
func (s *Spika) TypeName() string { return SpikaType }

// Color returns the current color.
func (s *Spika) Color() DefaultColor { return s.color }

// SetColor changes the variant. Size, kill points and speed follow the color.
func (s *Spika) SetColor(c DefaultColor) {
	v, ok := variants[c]
	if !ok {
		return
	}
	s.color = c
	s.SetSize(v.w, v.h)
	s.SetKillPoints(v.points)
	s.speed = s.cfg.SpikaSpeed(c.String())
}

// Speed returns the rolling speed.
func (s *Spika) Speed() float64 { return s.speed }

// SetSpeed changes the rolling speed.
func (s *Spika) SetSpeed(v float64) error {
	if v < 0 {
		return ErrNegativeSpeed
	}
	s.speed = v
	return nil
}

// Update rolls the spika toward the player when the player is near.
func (s *Spika) Update(ctx *level.Context) {
	if s.Dead() || !s.ValidUpdate() || !s.IsInRange(ctx.Camera) || ctx.Player == nil {
		return
	}

	r := s.Rect()
	pr := ctx.Player.Rect()
	sx, _ := r.Center()
	px, _ := pr.Center()

	dist := px - sx
	if math.Abs(dist) > s.cfg.DetectRange {
		return
	}
	// Only follow a player on roughly the same level.
	if pr.Bottom() < r.Y-2 || pr.Y > r.Bottom()+2 {
		return
	}

	step := s.speed * s.cfg.SpeedScale * ctx.SpeedFactor
	if step > math.Abs(dist) {
		step = math.Abs(dist)
	}
	if dist < 0 {
		step = -step
	}
	s.Move(step, 0)
	s.rollFrame += step
}

// Draw renders the spika relative to the camera.
func (s *Spika) Draw(dst *core.Screen, cam *level.Camera) {
	if s.Dead() {
		return
	}
	r := s.Rect()
	x, y := cam.ToScreen(r.X, r.Y)
	w, h := core.ToCell(r.W), core.ToCell(r.H)
	c := variants[s.color].color

	spin := core.ToCell(math.Abs(s.rollFrame))
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := SpikaBody
			if (dx+dy+spin)%2 == 0 {
				ch = SpikaSpike
			}
			dst.SetColored(x+dx, y+dy, ch, c)
		}
	}
}

// LoadFromXML reads posx, posy and color.
func (s *Spika) LoadFromXML(attrs level.Attributes) error {
	if err := s.LoadPos(attrs); err != nil {
		return err
	}
	name := attrs.String("color", ColorOrange.String())
	c, ok := ParseColor(name)
	if !ok {
		return fmt.Errorf("invalid spika color %q", name)
	}
	s.SetColor(c)
	return nil
}

// Save implements level.Sprite.
func (s *Spika) Save() level.Properties {
	var p level.Properties
	s.SavePos(&p)
	p.Add("color", s.color.String())
	return p
}

// Copy returns an unspawned spika with the same start position and color.
func (s *Spika) Copy() *Spika {
	c := NewSpika(s.cfg)
	x, y := s.StartPos()
	c.SetPos(x, y, true)
	c.SetColor(s.color)
	return c
}

func init() {
	registry.Register(SpikaType, "Spika", func(attrs level.Attributes, cfg config.GameConfig) (level.Sprite, error) {
		s := NewSpika(cfg.Spika)
		if err := s.LoadFromXML(attrs); err != nil {
			return nil, err
		}
		return s, nil
	})
}
