package scripting

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maryo/internal/enemies"
)

const spawnScript = `package main

import (
	"errors"

	"maryo"
)

func Init() error {
	s, err := maryo.New("Spika")
	if err != nil {
		return err
	}
	if _, err := maryo.Send(s, "warp", 40.0, 21.0); err != nil {
		return err
	}
	if _, err := maryo.Send(s, "color=", maryo.Symbol("grey")); err != nil {
		return err
	}
	if _, err := maryo.Send(s, "speed=", -1.0); !maryo.IsRangeError(err) {
		return errors.New("negative speed was accepted")
	}
	maryo.Log("spika ready", "level", maryo.Level().ID)
	return nil
}
`

func TestEngineRunsInit(t *testing.T) {
	rt, lvl := newTestRuntime(t)
	var logs bytes.Buffer
	e := NewEngine(rt, log.New(&logs))

	if err := e.Run("spawn.go", spawnScript); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if lvl.Sprites.Len() != 1 {
		t.Fatalf("sprites = %d, want 1", lvl.Sprites.Len())
	}
	s := lvl.Sprites.At(0).(*enemies.Spika)
	if s.Color() != enemies.ColorGrey {
		t.Errorf("color = %v, want grey", s.Color())
	}
	if x, y := s.Pos(); x != 40 || y != 21 {
		t.Errorf("pos = (%v, %v), want (40, 21)", x, y)
	}
	if !strings.Contains(logs.String(), "spika ready") {
		t.Errorf("script log missing: %q", logs.String())
	}
}

func TestEngineInitErrorKeepsType(t *testing.T) {
	rt, _ := newTestRuntime(t)
	src := `package main

import "maryo"

func Init() error {
	s, err := maryo.New("Spika")
	if err != nil {
		return err
	}
	_, err = maryo.Send(s, "color=", "blue")
	return err
}
`
	err := NewEngine(rt, nil).Run("bad_color.go", src)
	if !IsArgumentError(err) {
		t.Fatalf("Run error = %v, want ArgumentError", err)
	}
	if !strings.Contains(err.Error(), "bad_color.go") || !strings.Contains(err.Error(), "Invalid spika color blue") {
		t.Errorf("error %q should name the script and the color", err)
	}
}

func TestEngineCompileError(t *testing.T) {
	rt, _ := newTestRuntime(t)
	err := NewEngine(rt, nil).Run("broken.go", "package main\n\nfunc Init() error { return undefinedThing }\n")
	if err == nil || !strings.Contains(err.Error(), "broken.go") {
		t.Errorf("Run error = %v, want compile error naming the script", err)
	}
}

func TestEngineWithoutInit(t *testing.T) {
	rt, _ := newTestRuntime(t)
	if err := NewEngine(rt, nil).Run("empty.go", "package main\n"); err != nil {
		t.Errorf("Run without Init: %v", err)
	}
}

func TestEngineRunFile(t *testing.T) {
	rt, lvl := newTestRuntime(t)
	path := filepath.Join(t.TempDir(), "spawn.go")
	if err := os.WriteFile(path, []byte(spawnScript), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewEngine(rt, nil).RunFile(path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if lvl.Sprites.Len() != 1 {
		t.Errorf("sprites = %d, want 1", lvl.Sprites.Len())
	}
	if err := NewEngine(rt, nil).RunFile(filepath.Join(t.TempDir(), "missing.go")); err == nil {
		t.Error("expected error for missing script")
	}
}
