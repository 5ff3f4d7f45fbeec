// Package objects implements the interactive level objects: boxes the
// player bumps from below or activates with the action key.
package objects

import (
	"fmt"

	"github.com/vovakirdan/tui-maryo/internal/audio"
	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/core"
	"github.com/vovakirdan/tui-maryo/internal/level"
	"github.com/vovakirdan/tui-maryo/internal/registry"
)

// BoxType is the level file object type shared by all boxes.
// The concrete box is chosen by the "type" property.
const BoxType = "box"

// Box sizes in cells.
const (
	BoxWidth  = 2
	BoxHeight = 1
)

// UnlimitedUses marks a box that can be activated forever.
const UnlimitedUses = -1

// Visual characters for rendering
const (
	BoxChar     = '▣'
	BoxUsedChar = '□'
)

// bumpTicks is how long a box stays raised after activation.
const bumpTicks = 8

// BaseBox carries the state every box shares. Embed it in concrete boxes.
type BaseBox struct {
	level.Base

	boxType           string
	useableCount      int
	startUseableCount int
	invisible         bool
	animType          string

	bump float64
}

// NewBaseBox creates a visible box of the given kind with one use.
func NewBaseBox(name, boxType string) BaseBox {
	return BaseBox{
		Base:              level.NewBase(name, BoxWidth, BoxHeight),
		boxType:           boxType,
		useableCount:      1,
		startUseableCount: 1,
		animType:          "Bonus",
	}
}

// TypeName implements level.Sprite.
func (b *BaseBox) TypeName() string { return BoxType }

// BoxKind returns the value of the "type" property.
func (b *BaseBox) BoxKind() string { return b.boxType }

// UseableCount returns the remaining uses, or UnlimitedUses.
func (b *BaseBox) UseableCount() int { return b.useableCount }

// SetUseableCount changes the remaining uses. With newStart the count is
// also what the box is saved with.
func (b *BaseBox) SetUseableCount(count int, newStart bool) {
	b.useableCount = count
	if newStart {
		b.startUseableCount = count
	}
}

// Invisible reports whether the box is hidden until bumped.
func (b *BaseBox) Invisible() bool { return b.invisible }

// SetInvisible hides or shows the box.
func (b *BaseBox) SetInvisible(v bool) { b.invisible = v }

// AnimationType returns the box animation name.
func (b *BaseBox) AnimationType() string { return b.animType }

// SetAnimationType changes the box animation name.
func (b *BaseBox) SetAnimationType(name string) { b.animType = name }

// CanActivate implements level.Activatable.
func (b *BaseBox) CanActivate() bool {
	return b.useableCount != 0
}

// SolidFromAbove implements level.Solid. Invisible boxes can only be
// found by jumping into them.
func (b *BaseBox) SolidFromAbove() bool { return !b.invisible }

// SolidFromBelow implements level.Solid.
func (b *BaseBox) SolidFromBelow() bool { return true }

// Activate consumes one use and plays the activation sound. A used up box
// only plays the empty sound.
func (b *BaseBox) Activate(host level.Host) {
	if b.useableCount == 0 {
		host.PlaySound(audio.SoundBoxEmpty)
		return
	}
	host.PlaySound(audio.SoundBoxActivate)
	if b.useableCount > 0 {
		b.useableCount--
	}
	b.invisible = false
	b.bump = bumpTicks
}

// UpdateBox advances the bump animation.
func (b *BaseBox) UpdateBox(factor float64) {
	if b.bump > 0 {
		b.bump -= factor
		if b.bump < 0 {
			b.bump = 0
		}
	}
}

// DrawBox renders the box. Raised boxes are drawn one row higher.
func (b *BaseBox) DrawBox(dst *core.Screen, cam *level.Camera, c core.Color) {
	if b.invisible {
		return
	}
	r := b.Rect()
	x, y := cam.ToScreen(r.X, r.Y)
	if b.bump > bumpTicks/2 {
		y--
	}
	ch := BoxChar
	if b.useableCount == 0 {
		ch = BoxUsedChar
		c = core.ColorGray
	}
	for dx := 0; dx < core.ToCell(r.W); dx++ {
		dst.SetColored(x+dx, y, ch, c)
	}
}

// LoadBox reads the shared box properties.
func (b *BaseBox) LoadBox(attrs level.Attributes) error {
	if err := b.LoadPos(attrs); err != nil {
		return err
	}
	b.animType = attrs.String("animation", b.animType)

	count, err := attrs.Int("useable_count", b.startUseableCount)
	if err != nil {
		return err
	}
	b.SetUseableCount(count, true)

	invisible, err := attrs.Bool("invisible", b.invisible)
	if err != nil {
		return err
	}
	b.invisible = invisible
	return nil
}

// SaveBox writes the shared box properties.
func (b *BaseBox) SaveBox(p *level.Properties) {
	b.SavePos(p)
	p.Add("type", b.boxType)
	p.Add("animation", b.animType)
	p.AddInt("useable_count", b.startUseableCount)
	p.AddBool("invisible", b.invisible)
}

// boxKinds maps the "type" property to a constructor.
var boxKinds = map[string]registry.Factory{
	TextBoxKind: newTextBoxFromXML,
}

func createBox(attrs level.Attributes, cfg config.GameConfig) (level.Sprite, error) {
	kind := attrs.String("type", "")
	f, ok := boxKinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown box type %q", kind)
	}
	return f(attrs, cfg)
}

func init() {
	registry.Register(BoxType, "Box", createBox)
}
