package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded defaults differ from DefaultGameConfig():\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := []byte("text_box:\n  window_width: 50\nspika:\n  speeds:\n    grey: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TextBox.WindowWidth != 50 {
		t.Errorf("WindowWidth = %d, expected 50", cfg.TextBox.WindowWidth)
	}
	// Unset fields keep their defaults
	if cfg.TextBox.WindowHeight != DefaultGameConfig().TextBox.WindowHeight {
		t.Errorf("WindowHeight = %d, expected default", cfg.TextBox.WindowHeight)
	}
	if cfg.Spika.Speeds["grey"] != 9 {
		t.Errorf("grey speed = %v, expected 9", cfg.Spika.Speeds["grey"])
	}
	if cfg.Spika.Speeds["orange"] != 3 {
		t.Errorf("orange speed = %v, expected default 3", cfg.Spika.Speeds["orange"])
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("Load() of malformed yaml = %v, expected parse error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr string
	}{
		{"defaults are valid", func(*GameConfig) {}, ""},
		{"zero player", func(c *GameConfig) { c.Player.Width = 0 }, "player size"},
		{"tiny window", func(c *GameConfig) { c.TextBox.WindowHeight = 2 }, "text box window"},
		{"negative color speed", func(c *GameConfig) { c.Spika.Speeds["red"] = -1 }, "spika red speed"},
		{"no action key", func(c *GameConfig) { c.Keys.Action = "" }, "keys.action"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestSpikaSpeedFallback(t *testing.T) {
	c := SpikaConfig{Speeds: map[string]float64{"green": 1}}
	if got := c.SpikaSpeed("green"); got != 1 {
		t.Errorf("SpikaSpeed(green) = %v, expected 1", got)
	}
	if got := c.SpikaSpeed("red"); got != 10 {
		t.Errorf("SpikaSpeed(red) = %v, expected built-in 10", got)
	}
}
