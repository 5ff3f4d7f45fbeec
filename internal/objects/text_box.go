package objects

import (
	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/core"
	"github.com/vovakirdan/tui-maryo/internal/level"
	"github.com/vovakirdan/tui-maryo/internal/registry"
)

// TextBoxKind is the "type" property of text boxes.
const TextBoxKind = "text"

// TextBoxType is the direct level file type of text boxes.
const TextBoxType = "box/text"

// viewerGap is the space between the viewer window and the box below it.
const viewerGap = 5

// TextBox shows a message in a scrollable window when activated.
type TextBox struct {
	BaseBox

	text       string
	winW, winH int
}

// NewTextBox creates an empty text box that opens a window of the
// configured size.
func NewTextBox(cfg config.TextBoxConfig) *TextBox {
	b := &TextBox{
		BaseBox: NewBaseBox("Text Box", TextBoxKind),
		winW:    cfg.WindowWidth,
		winH:    cfg.WindowHeight,
	}
	b.SetUseableCount(UnlimitedUses, true)
	b.SetAnimationType("Default")
	return b
}

// Copy returns a new box with the same start position, text and visibility.
func (b *TextBox) Copy() *TextBox {
	c := NewTextBox(config.TextBoxConfig{WindowWidth: b.winW, WindowHeight: b.winH})
	x, y := b.StartPos()
	c.SetPos(x, y, true)
	c.SetText(b.text)
	c.SetInvisible(b.Invisible())
	return c
}

// SetText changes the message.
func (b *TextBox) SetText(text string) { b.text = text }

// Text implements level.Dialog.
func (b *TextBox) Text() string { return b.text }

// LoadFromXML reads the box properties and the text.
func (b *TextBox) LoadFromXML(attrs level.Attributes) error {
	if err := b.LoadBox(attrs); err != nil {
		return err
	}
	b.text = attrs.String("text", "")
	return nil
}

// SaveToXML writes the box properties and the text.
func (b *TextBox) SaveToXML(p *level.Properties) {
	b.SaveBox(p)
	p.Add("text", b.text)
}

// Save implements level.Sprite.
func (b *TextBox) Save() level.Properties {
	var p level.Properties
	b.SaveToXML(&p)
	return p
}

// Update implements level.Sprite.
func (b *TextBox) Update(ctx *level.Context) {
	if !b.ValidUpdate() || !b.IsInRange(ctx.Camera) {
		return
	}
	b.UpdateBox(ctx.SpeedFactor)
}

// Draw implements level.Sprite.
func (b *TextBox) Draw(dst *core.Screen, cam *level.Camera) {
	b.DrawBox(dst, cam, core.ColorBrightYellow)
}

// Activate plays the box activation and asks the host to show the text.
func (b *TextBox) Activate(host level.Host) {
	b.BaseBox.Activate(host)
	host.ShowDialog(b)
}

// WindowSize implements level.Dialog.
func (b *TextBox) WindowSize() (int, int) { return b.winW, b.winH }

// Owner implements level.Dialog.
func (b *TextBox) Owner() level.Sprite { return b }

// Placement implements level.Dialog. The window is centered above the box,
// kept inside the level horizontally and below the top of the view, and
// returned in screen cells.
func (b *TextBox) Placement(cam *level.Camera) (int, int) {
	r := b.Rect()
	w, h := float64(b.winW), float64(b.winH)

	x := r.X - w/2 + r.W/2
	if x < 0 {
		x = 0
	}
	if limit := cam.Limit.Right() - w; x > limit {
		x = limit
	}

	y := r.Y - viewerGap - h
	if y < cam.Y {
		y = cam.Y
	}

	return cam.ToScreen(x, y)
}

func newTextBoxFromXML(attrs level.Attributes, cfg config.GameConfig) (level.Sprite, error) {
	b := NewTextBox(cfg.TextBox)
	if err := b.LoadFromXML(attrs); err != nil {
		return nil, err
	}
	return b, nil
}

func init() {
	registry.Register(TextBoxType, "Text Box", newTextBoxFromXML)
}
