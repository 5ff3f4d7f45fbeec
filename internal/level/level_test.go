package level

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/core"
)

// stubBox is a minimal activatable, solid sprite.
type stubBox struct {
	Base
	uses int
}

func newStubBox(x, y float64) *stubBox {
	b := &stubBox{Base: NewBase("Stub", 2, 1)}
	b.SetPos(x, y, true)
	return b
}

func (b *stubBox) TypeName() string           { return "stub" }
func (b *stubBox) Update(*Context)            {}
func (b *stubBox) Draw(*core.Screen, *Camera) {}
func (b *stubBox) CanActivate() bool          { return true }
func (b *stubBox) SolidFromAbove() bool       { return true }
func (b *stubBox) SolidFromBelow() bool       { return true }

func (b *stubBox) Save() Properties {
	var p Properties
	b.SavePos(&p)
	return p
}

func (b *stubBox) Activate(h Host) {
	b.uses++
	h.ShowDialog(stubDialog{b})
}

type stubDialog struct{ owner *stubBox }

func (d stubDialog) Text() string                 { return "hello" }
func (d stubDialog) WindowSize() (int, int)       { return 10, 4 }
func (d stubDialog) Placement(*Camera) (int, int) { return 0, 0 }
func (d stubDialog) Owner() Sprite                { return d.owner }

// stubHazard ends the run on contact.
type stubHazard struct {
	Base
}

func (h *stubHazard) TypeName() string           { return "hazard" }
func (h *stubHazard) Update(*Context)            {}
func (h *stubHazard) Draw(*core.Screen, *Camera) {}
func (h *stubHazard) Save() Properties           { return nil }
func (h *stubHazard) Hurts(r core.Rect) bool     { return h.Rect().Intersects(r) }

func newTestLevel(width float64) *Level {
	settings := DefaultSettings()
	settings.Width = width
	settings.Height = 20
	l := New("test", settings, config.DefaultGameConfig())
	l.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60})
	return l
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestLevelResetPlacesPlayerOnGround(t *testing.T) {
	l := newTestLevel(100)

	if !l.Player.Grounded {
		t.Error("player should start grounded")
	}
	if got := l.Player.Y + l.Player.H; got != l.GroundY() {
		t.Errorf("player bottom = %v, expected ground %v", got, l.GroundY())
	}
}

func TestLevelWalkToGoal(t *testing.T) {
	l := newTestLevel(30)

	var result core.StepResult
	for i := 0; i < 200 && !result.State.Done(); i++ {
		result = l.Step(frame(core.ActionRight))
	}

	if !result.State.Finished {
		t.Fatalf("expected the level to be finished, state = %+v", result.State)
	}
	if result.State.Score != FinishBonus {
		t.Errorf("Score = %d, expected %d", result.State.Score, FinishBonus)
	}

	// Finished levels do not advance
	tick := l.Tick()
	l.Step(frame(core.ActionRight))
	if l.Tick() != tick {
		t.Error("Step should not advance a finished level")
	}
}

func TestLevelTimeBonus(t *testing.T) {
	l := newTestLevel(30)
	l.Settings.TimeLimit = 100

	for i := 0; i < 200 && !l.State().Done(); i++ {
		l.Step(frame(core.ActionRight))
	}

	if !l.State().Finished {
		t.Fatal("expected finish")
	}
	if l.State().Score <= FinishBonus {
		t.Errorf("Score = %d, expected a time bonus", l.State().Score)
	}
}

func TestLevelTimeLimitEndsRun(t *testing.T) {
	l := newTestLevel(100)
	l.Settings.TimeLimit = 1

	for i := 0; i < 200 && !l.State().Done(); i++ {
		l.Step(frame())
	}
	if !l.State().GameOver {
		t.Error("standing still past the time limit should end the run")
	}
}

func TestLevelHazard(t *testing.T) {
	l := newTestLevel(100)
	h := &stubHazard{Base: NewBase("Hazard", 2, 2)}
	h.SetPos(l.Player.X+3, l.Player.Y, true)
	l.Sprites.Add(h)

	for i := 0; i < 60 && !l.State().Done(); i++ {
		l.Step(frame(core.ActionRight))
	}
	if !l.State().GameOver {
		t.Error("walking into a hazard should end the run")
	}
	if l.State().Score != 0 {
		t.Errorf("Score = %d, expected 0 on game over", l.State().Score)
	}
}

func TestLevelPause(t *testing.T) {
	l := newTestLevel(100)

	l.Step(frame(core.ActionPause))
	if !l.State().Paused {
		t.Fatal("expected paused")
	}
	x := l.Player.X
	l.Step(frame(core.ActionRight))
	if l.Player.X != x {
		t.Error("player should not move while paused")
	}
	l.Step(frame(core.ActionPause))
	if l.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestLevelUseActivatesNearbyBox(t *testing.T) {
	l := newTestLevel(100)
	box := newStubBox(l.Player.X, l.Player.Y-1.5)
	l.Sprites.Add(box)

	if got := l.NearbyActivatable(); got != box {
		t.Fatalf("NearbyActivatable() = %v, expected the box", got)
	}

	l.Step(frame(core.ActionUse))
	if box.uses != 1 {
		t.Errorf("box uses = %d, expected 1", box.uses)
	}

	dialogs := l.TakeDialogs()
	if len(dialogs) != 1 || dialogs[0].Owner() != box {
		t.Fatalf("TakeDialogs() = %v, expected one dialog from the box", dialogs)
	}
	if len(l.TakeDialogs()) != 0 {
		t.Error("TakeDialogs should clear the queue")
	}
}

type recordPresenter struct {
	shown []Dialog
}

func (p *recordPresenter) ShowDialog(d Dialog) {
	p.shown = append(p.shown, d)
}

func TestLevelJumpBumpsBox(t *testing.T) {
	l := newTestLevel(100)
	p := &recordPresenter{}
	l.SetPresenter(p)

	box := newStubBox(l.Player.X, l.Player.Y-4)
	l.Sprites.Add(box)

	for i := 0; i < 30 && box.uses == 0; i++ {
		l.Step(frame(core.ActionJump))
	}
	if box.uses != 1 {
		t.Fatalf("box uses = %d, expected a bump to activate it once", box.uses)
	}
	if len(p.shown) != 1 {
		t.Errorf("presenter got %d dialogs, expected 1", len(p.shown))
	}
	if l.Player.Y < box.Rect().Bottom() {
		t.Error("player should not pass through the box")
	}
}

func TestLevelLookDownOffset(t *testing.T) {
	l := newTestLevel(100)

	for i := 0; i < 20; i++ {
		l.Step(frame(core.ActionDown))
	}
	if l.Camera.YOffset != l.Config().Camera.LookDownOffset {
		t.Errorf("YOffset = %v, expected %v", l.Camera.YOffset, l.Config().Camera.LookDownOffset)
	}

	for i := 0; i < 100; i++ {
		l.Step(frame())
	}
	if l.Camera.YOffset != 0 {
		t.Errorf("YOffset = %v, expected it to decay to 0", l.Camera.YOffset)
	}
}

func TestLevelRender(t *testing.T) {
	l := newTestLevel(100)
	l.Settings.Name = "Hills"
	screen := core.NewScreen(40, 20)

	l.Render(screen)

	_, groundRow := l.Camera.ToScreen(0, l.GroundY())
	if screen.Get(0, groundRow) != GroundChar {
		t.Errorf("expected ground at row %d, got %q", groundRow, screen.Get(0, groundRow))
	}
	if got := screen.Row(0); !strings.Contains(got, "Hills") {
		t.Errorf("HUD row = %q, expected the level name", got)
	}
}
