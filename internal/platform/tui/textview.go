package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maryo/internal/core"
	"github.com/vovakirdan/tui-maryo/internal/level"
)

// Scroll markers drawn on the viewer border
const (
	scrollUpMark   = '▲'
	scrollDownMark = '▼'
)

// TextViewer is the modal window of an activated text box. The text is
// word-wrapped into a viewport that scrolls vertically only.
type TextViewer struct {
	dialog level.Dialog
	vp     viewport.Model
	x, y   int
	w, h   int
}

// NewTextViewer creates a viewer for d, placed for the camera.
func NewTextViewer(d level.Dialog, cam *level.Camera) *TextViewer {
	w, h := d.WindowSize()
	innerW, innerH := core.Max(1, w-2), core.Max(1, h-2)

	vp := viewport.New(innerW, innerH)
	vp.SetContent(wrapText(d.Text(), innerW))

	v := &TextViewer{dialog: d, vp: vp, w: w, h: h}
	v.Reposition(cam)
	return v
}

// wrapText word-wraps text to width cells.
func wrapText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}

// Dialog returns the dialog being shown.
func (v *TextViewer) Dialog() level.Dialog { return v.dialog }

// Position returns the top-left screen cell of the window.
func (v *TextViewer) Position() (int, int) { return v.x, v.y }

// Reposition places the window for the camera's current position.
func (v *TextViewer) Reposition(cam *level.Camera) {
	v.x, v.y = v.dialog.Placement(cam)
}

// Scroll moves the text by lines; negative scrolls up.
func (v *TextViewer) Scroll(lines int) {
	v.vp.SetYOffset(v.vp.YOffset + lines)
}

// Offset returns the first visible line.
func (v *TextViewer) Offset() int { return v.vp.YOffset }

// AtTop reports whether the first line is visible.
func (v *TextViewer) AtTop() bool { return v.vp.AtTop() }

// AtBottom reports whether the last line is visible.
func (v *TextViewer) AtBottom() bool { return v.vp.AtBottom() }

// ScrollLines converts the scrollbar step into whole lines for one
// held key tick.
func ScrollLines(step, speedFactor float64) int {
	n := int(math.Round(step * 0.25 * speedFactor))
	if n < 1 {
		n = 1
	}
	return n
}

// Draw renders the window onto the screen.
func (v *TextViewer) Draw(dst *core.Screen) {
	dst.DrawRect(core.NewRect(float64(v.x), float64(v.y), float64(v.w), float64(v.h)), ' ', core.ColorDefault)
	dst.DrawBox(v.x, v.y, v.w, v.h)

	for i, line := range strings.Split(v.vp.View(), "\n") {
		if i >= v.h-2 {
			break
		}
		dst.DrawTextColored(v.x+1, v.y+1+i, line, core.ColorBrightWhite)
	}

	if !v.vp.AtTop() {
		dst.SetColored(v.x+v.w-2, v.y, scrollUpMark, core.ColorBrightYellow)
	}
	if !v.vp.AtBottom() {
		dst.SetColored(v.x+v.w-2, v.y+v.h-1, scrollDownMark, core.ColorBrightYellow)
	}
}
