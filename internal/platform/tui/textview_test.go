package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/core"
	"github.com/vovakirdan/tui-maryo/internal/level"
	"github.com/vovakirdan/tui-maryo/internal/objects"
)

func longText(lines int) string {
	parts := make([]string, lines)
	for i := range parts {
		parts[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(parts, "\n")
}

func newTestViewer(text string) (*TextViewer, *level.Camera) {
	b := objects.NewTextBox(config.DefaultGameConfig().TextBox)
	b.SetText(text)
	b.SetPos(50, 20, true)
	cam := level.NewCamera(80, 24, core.NewRect(0, 0, 200, 24))
	cam.X = 20
	return NewTextViewer(b, cam), cam
}

func TestScrollLines(t *testing.T) {
	tests := []struct {
		step, factor float64
		want         int
	}{
		{4, 1, 1},
		{4, 2, 2},
		{8, 1, 2},
		{1, 1, 1},
		{0, 1, 1},
		{10, 1, 3},
	}

	for _, tt := range tests {
		if got := ScrollLines(tt.step, tt.factor); got != tt.want {
			t.Errorf("ScrollLines(%v, %v) = %d, want %d", tt.step, tt.factor, got, tt.want)
		}
	}
}

func TestTextViewerPosition(t *testing.T) {
	v, cam := newTestViewer("hi")

	if x, y := v.Position(); x != 13 || y != 6 {
		t.Errorf("Position() = (%d, %d), want (13, 6)", x, y)
	}

	cam.X = 30
	v.Reposition(cam)
	if x, _ := v.Position(); x != 3 {
		t.Errorf("after camera move x = %d, want 3", x)
	}
}

func TestTextViewerScroll(t *testing.T) {
	v, _ := newTestViewer(longText(20))

	if !v.AtTop() || v.AtBottom() {
		t.Fatalf("new viewer: AtTop=%v AtBottom=%v, want true false", v.AtTop(), v.AtBottom())
	}

	v.Scroll(2)
	if v.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", v.Offset())
	}

	v.Scroll(-10)
	if v.Offset() != 0 {
		t.Errorf("scrolling past the top: Offset() = %d, want 0", v.Offset())
	}

	v.Scroll(1000)
	if !v.AtBottom() {
		t.Error("scrolling past the end should stop at the bottom")
	}
	if v.Offset() != 20-7 {
		t.Errorf("Offset() = %d, want %d", v.Offset(), 20-7)
	}
}

func TestTextViewerShortTextDoesNotScroll(t *testing.T) {
	v, _ := newTestViewer("short")

	v.Scroll(3)
	if v.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", v.Offset())
	}
	if !v.AtTop() || !v.AtBottom() {
		t.Error("short text should be at top and bottom")
	}
}

func TestTextViewerWrapsLongLines(t *testing.T) {
	v, _ := newTestViewer(strings.Repeat("word ", 80))

	if v.AtBottom() {
		t.Error("a paragraph wider than the window should wrap into more lines than fit")
	}
}

func TestTextViewerDraw(t *testing.T) {
	v, _ := newTestViewer(longText(20))
	dst := core.NewScreen(80, 24)
	x, y := v.Position()

	v.Draw(dst)

	if !strings.Contains(dst.Row(y+1), "line 1") {
		t.Errorf("first row = %q, want it to contain %q", dst.Row(y+1), "line 1")
	}
	if got := dst.Get(x+v.w-2, y+v.h-1); got != scrollDownMark {
		t.Errorf("down mark = %q, want %q", got, scrollDownMark)
	}
	if got := dst.Get(x+v.w-2, y); got == scrollUpMark {
		t.Error("up mark drawn at the top of the text")
	}

	v.Scroll(3)
	v.Draw(dst)
	if !strings.Contains(dst.Row(y+1), "line 4") {
		t.Errorf("first row after scrolling = %q, want it to contain %q", dst.Row(y+1), "line 4")
	}
	if got := dst.Get(x+v.w-2, y); got != scrollUpMark {
		t.Errorf("up mark = %q, want %q", got, scrollUpMark)
	}
}
