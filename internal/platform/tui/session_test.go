package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/enemies"
	"github.com/vovakirdan/tui-maryo/internal/scripting"
)

func TestLevelSourceRunsScript(t *testing.T) {
	src := LevelSource{
		Path:   filepath.Join("..", "..", "..", "levels", "intro.xml"),
		Script: filepath.Join("..", "..", "..", "levels", "_scripts", "intro.go"),
		Config: config.DefaultGameConfig(),
	}

	lvl, err := src.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.ID != "intro" {
		t.Errorf("ID = %q, want intro", lvl.ID)
	}
	if got := len(lvl.Sprites.Persistent()); got != 6 {
		t.Errorf("objects from the file = %d, want 6", got)
	}

	last := lvl.Sprites.At(lvl.Sprites.Len() - 1)
	guard, ok := last.(*enemies.Spika)
	if !ok {
		t.Fatalf("last object is %T, want *enemies.Spika", last)
	}
	if !guard.IsSpawned() {
		t.Error("scripted spika should be spawned")
	}
	if guard.Color() != enemies.ColorRed || guard.Speed() != 6 {
		t.Errorf("guard = %v at speed %v, want red at 6", guard.Color(), guard.Speed())
	}
	if x, y := guard.Pos(); x != 210 || y != 20 {
		t.Errorf("guard at (%v, %v), want (210, 20)", x, y)
	}

	if files := src.Files(); len(files) != 2 {
		t.Errorf("Files() = %v, want level and script", files)
	}
}

func TestLevelSourceScriptError(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "bad.go")
	body := `package main

import "maryo"

func Init() error {
	s, err := maryo.New("Spika")
	if err != nil {
		return err
	}
	_, err = maryo.Send(s, "speed=", -2.0)
	return err
}
`
	if err := os.WriteFile(script, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	src := LevelSource{
		Path:   filepath.Join("..", "..", "..", "levels", "intro.xml"),
		Script: script,
		Config: config.DefaultGameConfig(),
	}

	_, err := src.Load()
	if !scripting.IsRangeError(err) {
		t.Errorf("Load() error = %v, want a range error", err)
	}
}

func TestLevelSourceMissingFile(t *testing.T) {
	src := LevelSource{Path: filepath.Join(t.TempDir(), "missing.xml"), Config: config.DefaultGameConfig()}
	if _, err := src.Load(); err == nil {
		t.Error("Load() of a missing file should fail")
	}
	if files := src.Files(); len(files) != 1 {
		t.Errorf("Files() = %v, want only the level", files)
	}
}
