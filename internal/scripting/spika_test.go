package scripting

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/enemies"
	"github.com/vovakirdan/tui-maryo/internal/level"
)

func newTestRuntime(t *testing.T) (*Runtime, *level.Level) {
	t.Helper()
	lvl := level.New("test", level.DefaultSettings(), config.DefaultGameConfig())
	return NewRuntime(lvl, nil), lvl
}

func newSpika(t *testing.T, rt *Runtime) *Object {
	t.Helper()
	obj, err := rt.New("Spika")
	if err != nil {
		t.Fatalf("Spika.new: %v", err)
	}
	return obj
}

func TestSpikaNewAddsSpawnedSprite(t *testing.T) {
	rt, lvl := newTestRuntime(t)
	obj := newSpika(t, rt)

	if lvl.Sprites.Len() != 1 {
		t.Fatalf("sprites = %d, want 1", lvl.Sprites.Len())
	}
	s, ok := lvl.Sprites.At(0).(*enemies.Spika)
	if !ok || obj.Data != s {
		t.Fatal("object should wrap the sprite added to the level")
	}
	if !s.IsSpawned() {
		t.Error("script-created spika should be marked spawned")
	}
	if len(lvl.Sprites.Persistent()) != 0 {
		t.Error("spawned spika should not be saved with the level")
	}
}

func TestSpikaNewWithoutLevel(t *testing.T) {
	rt := NewRuntime(nil, nil)
	if _, err := rt.New("Spika"); err != ErrNoLevel {
		t.Errorf("Spika.new error = %v, want ErrNoLevel", err)
	}
}

func TestSpikaColorRoundTrip(t *testing.T) {
	rt, _ := newTestRuntime(t)
	obj := newSpika(t, rt)

	for _, c := range []Symbol{"orange", "green", "grey"} {
		ret, err := rt.Send(obj, "color=", c)
		if err != nil {
			t.Fatalf("color=(%s): %v", c, err)
		}
		if ret != c {
			t.Errorf("color=(%s) returned %v", c, ret)
		}
		got, err := rt.Send(obj, "color")
		if err != nil || got != c {
			t.Errorf("color after %s = %v, %v", c, got, err)
		}
	}
}

func TestSpikaColorAcceptsString(t *testing.T) {
	rt, _ := newTestRuntime(t)
	obj := newSpika(t, rt)

	if _, err := rt.Send(obj, "color=", "green"); err != nil {
		t.Fatalf("color=(\"green\"): %v", err)
	}
	if got, _ := rt.Send(obj, "color"); got != Symbol("green") {
		t.Errorf("color = %v, want :green", got)
	}
}

func TestSpikaRedHasNoColorSymbol(t *testing.T) {
	rt, _ := newTestRuntime(t)
	obj := newSpika(t, rt)

	ret, err := rt.Send(obj, "color=", Symbol("red"))
	if err != nil {
		t.Fatalf("color=(red): %v", err)
	}
	if ret != Symbol("red") {
		t.Errorf("color=(red) returned %v", ret)
	}

	got, err := rt.Send(obj, "color")
	if err != nil || got != nil {
		t.Errorf("color for red = %v, %v; want nil", got, err)
	}
	if obj.Data.(*enemies.Spika).Color() != enemies.ColorRed {
		t.Error("native spika should be red")
	}
	if speed, _ := rt.Send(obj, "speed"); speed != 10.0 {
		t.Errorf("red speed = %v, want 10", speed)
	}
}

func TestSpikaInvalidColor(t *testing.T) {
	rt, _ := newTestRuntime(t)
	obj := newSpika(t, rt)

	_, err := rt.Send(obj, "color=", Symbol("purple"))
	if !IsArgumentError(err) {
		t.Fatalf("color=(purple) error = %v, want ArgumentError", err)
	}
	if !strings.Contains(err.Error(), "purple") {
		t.Errorf("error %q should name the color", err)
	}
	if got, _ := rt.Send(obj, "color"); got != Symbol("orange") {
		t.Errorf("color changed to %v after invalid color", got)
	}

	if _, err := rt.Send(obj, "color=", 3); !IsTypeError(err) {
		t.Errorf("color=(3) error = %v, want TypeError", err)
	}
}

func TestSpikaSpeed(t *testing.T) {
	rt, _ := newTestRuntime(t)
	obj := newSpika(t, rt)

	for _, v := range []Value{0.0, 2.5, 100.0, 7} {
		ret, err := rt.Send(obj, "speed=", v)
		if err != nil {
			t.Fatalf("speed=(%v): %v", v, err)
		}
		got, _ := rt.Send(obj, "speed")
		if got != ret {
			t.Errorf("speed after speed=(%v) = %v, want %v", v, got, ret)
		}
	}
	if got, _ := rt.Send(obj, "speed"); got != 7.0 {
		t.Errorf("integer speed should read back as 7.0, got %v", got)
	}

	_, err := rt.Send(obj, "speed=", -0.5)
	if !IsRangeError(err) {
		t.Fatalf("speed=(-0.5) error = %v, want RangeError", err)
	}
	if err.Error() != "Spika speed must be >= 0" {
		t.Errorf("message = %q", err.Error())
	}
	if got, _ := rt.Send(obj, "speed"); got != 7.0 {
		t.Errorf("speed changed to %v after rejected value", got)
	}
}

func TestSpikaInheritsEnemyAndSprite(t *testing.T) {
	rt, _ := newTestRuntime(t)
	obj := newSpika(t, rt)

	if _, err := rt.Send(obj, "warp", 30, 21.5); err != nil {
		t.Fatalf("warp: %v", err)
	}
	if x, _ := rt.Send(obj, "x"); x != 30.0 {
		t.Errorf("x = %v, want 30", x)
	}

	if _, err := rt.Send(obj, "kill_points=", 250); err != nil {
		t.Fatalf("kill_points=: %v", err)
	}
	if p, _ := rt.Send(obj, "kill_points"); p != 250 {
		t.Errorf("kill_points = %v, want 250", p)
	}

	if _, err := rt.Send(obj, "ice_resistance=", 1.5); !IsRangeError(err) {
		t.Errorf("ice_resistance=(1.5) error = %v, want RangeError", err)
	}

	if dead, _ := rt.Send(obj, "dead?"); dead != false {
		t.Error("new spika should be alive")
	}
	if _, err := rt.Send(obj, "kill"); err != nil {
		t.Fatalf("kill: %v", err)
	}
	if dead, _ := rt.Send(obj, "dead?"); dead != true {
		t.Error("spika should be dead after kill")
	}
}
