package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maryo/internal/core"
)

func TestColorStylesCoverPalette(t *testing.T) {
	if len(colorStyles) != core.NumColors {
		t.Errorf("colorStyles has %d entries, want %d", len(colorStyles), core.NumColors)
	}
	for c := core.Color(0); c < core.Color(core.NumColors); c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	tests := []struct {
		name  string
		color core.Color
	}{
		{"default", core.ColorDefault},
		{"ground", core.ColorGreen},
		{"goal", core.ColorBrightYellow},
		{"spika", core.ColorOrange},
		{"outside palette", core.Color(core.NumColors + 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(6, 2)
			s.DrawTextColored(0, 0, "ab", tt.color)
			s.DrawTextColored(2, 1, "cd", core.ColorDefault)

			got := RenderScreen(s)
			lines := strings.Split(got, "\n")
			if len(lines) != 2 {
				t.Fatalf("RenderScreen returned %d lines, want 2", len(lines))
			}
			if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "cd") {
				t.Errorf("RenderScreen lost text: %q", got)
			}
		})
	}
}
