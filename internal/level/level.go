package level

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-maryo/internal/audio"
	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/core"
)

// Visual characters for the level itself
const (
	GroundChar = '▀'
	GoalChar   = '⚑'
)

// Scoring
const (
	FinishBonus     = 1000
	PointsPerSecond = 10
)

// Settings are the level-wide properties stored in the level file.
type Settings struct {
	Name      string
	Width     float64 // level width in cells
	Height    float64 // level height in cells, ground is the last row
	TimeLimit int     // seconds, 0 = unlimited
	StartX    float64 // player start
	StartY    float64
}

// DefaultSettings returns the settings used when a level file omits them.
func DefaultSettings() Settings {
	return Settings{
		Name:   "Untitled",
		Width:  200,
		Height: 24,
		StartX: 2,
		StartY: 0,
	}
}

// RawObject is a level file object kept as read.
type RawObject struct {
	Index      int // position among the file's objects
	Type       string
	Properties Properties
}

// Level is a running level: settings, objects, player and camera.
type Level struct {
	ID       string
	Settings Settings
	Sprites  *SpriteManager
	Player   *Player
	Camera   *Camera
	Audio    *audio.Audio

	// Unknown holds level file objects of types that could not be
	// created. They are written back unchanged when the level is saved.
	Unknown []RawObject

	cfg     config.GameConfig
	runtime core.RuntimeConfig
	host    *levelHost
	tick    int
	state   core.GameState
}

// New creates an empty level.
func New(id string, settings Settings, cfg config.GameConfig) *Level {
	a := audio.New(nil, cfg.Audio.Enabled)
	l := &Level{
		ID:       id,
		Settings: settings,
		Sprites:  NewSpriteManager(),
		Audio:    a,
		cfg:      cfg,
		host:     &levelHost{audio: a},
	}
	l.Reset(core.DefaultConfig())
	return l
}

// Config returns the game config the level was created with.
func (l *Level) Config() config.GameConfig {
	return l.cfg
}

// SetAudio replaces the level's audio output.
func (l *Level) SetAudio(a *audio.Audio) {
	l.Audio = a
	l.host.audio = a
}

// SetPresenter routes dialogs from activated objects to p.
func (l *Level) SetPresenter(p Presenter) {
	l.host.presenter = p
}

// TakeDialogs returns and clears the dialogs requested while no presenter was set.
func (l *Level) TakeDialogs() []Dialog {
	d := l.host.pending
	l.host.pending = nil
	return d
}

// Bounds returns the level rectangle.
func (l *Level) Bounds() core.Rect {
	return core.NewRect(0, 0, l.Settings.Width, l.Settings.Height)
}

// GroundY returns the y coordinate of the ground surface.
func (l *Level) GroundY() float64 {
	return l.Settings.Height - 1
}

// Reset places the player at the start and sizes the camera to the screen.
// Objects keep their state; reload the level file for a full restart.
func (l *Level) Reset(rt core.RuntimeConfig) {
	l.runtime = rt

	startY := l.Settings.StartY
	if startY <= 0 {
		startY = l.GroundY() - l.cfg.Player.Height
	}
	l.Player = NewPlayer(l.Settings.StartX, startY, l.cfg.Player, l.cfg.Physics)
	l.Player.Grounded = startY+l.Player.H >= l.GroundY()

	l.Camera = NewCamera(float64(rt.ScreenW), float64(rt.ScreenH), l.Bounds())
	l.Camera.Center(l.Player.Rect())

	l.tick = 0
	l.state = core.GameState{}
}

// Resize changes the camera view without restarting the level.
func (l *Level) Resize(w, h int) {
	l.runtime.ScreenW = w
	l.runtime.ScreenH = h
	l.Camera.W = float64(w)
	l.Camera.H = float64(h)
	l.Camera.Center(l.Player.Rect())
}

// Tick returns the number of simulated ticks.
func (l *Level) Tick() int {
	return l.tick
}

// Context returns the update context for the current tick.
func (l *Level) Context() *Context {
	return &Context{
		Player:      l.Player,
		Camera:      l.Camera,
		Audio:       l.Audio,
		Tick:        l.tick,
		SpeedFactor: l.runtime.SpeedFactor(),
	}
}

// Step advances the level by one tick.
func (l *Level) Step(in core.InputFrame) core.StepResult {
	if l.state.Done() {
		return core.StepResult{State: l.state}
	}

	if in.Has(core.ActionPause) {
		l.state.Paused = !l.state.Paused
	}
	if l.state.Paused {
		return core.StepResult{State: l.state}
	}

	l.tick++
	factor := l.runtime.SpeedFactor()

	l.updateLookDown(in)

	if bumped := l.Player.Step(in, factor, l.Bounds(), l.GroundY(), l.solids()); bumped != nil {
		if a, ok := bumped.(Activatable); ok && a.CanActivate() {
			l.Activate(a)
		}
	}

	if in.Has(core.ActionUse) {
		if a := l.NearbyActivatable(); a != nil {
			l.Activate(a)
		}
	}

	l.Sprites.Update(l.Context())

	playerRect := l.Player.Rect()
	for _, s := range l.Sprites.Objects() {
		if h, ok := s.(Hazard); ok && h.Hurts(playerRect) {
			l.state.GameOver = true
			l.Audio.Play(audio.SoundPlayerDeath)
			break
		}
	}

	if !l.state.GameOver {
		if l.Player.X+l.Player.W >= l.Settings.Width-1 {
			l.state.Finished = true
			l.state.Score = l.finishScore()
			l.Audio.Play(audio.SoundLevelGoal)
		} else if l.Settings.TimeLimit > 0 && l.elapsedSeconds() > l.Settings.TimeLimit {
			l.state.GameOver = true
		}
	}

	l.Camera.Center(l.Player.Rect())

	return core.StepResult{State: l.state}
}

func (l *Level) updateLookDown(in core.InputFrame) {
	if in.Has(core.ActionDown) && l.Player.Grounded {
		l.Camera.YOffset = math.Min(l.Camera.YOffset+1, l.cfg.Camera.LookDownOffset)
		return
	}
	l.Camera.YOffset = math.Max(l.Camera.YOffset-0.25, 0)
}

func (l *Level) elapsedSeconds() int {
	rate := l.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return l.tick / rate
}

func (l *Level) finishScore() int {
	score := FinishBonus
	if l.Settings.TimeLimit > 0 {
		if left := l.Settings.TimeLimit - l.elapsedSeconds(); left > 0 {
			score += left * PointsPerSecond
		}
	}
	return score
}

func (l *Level) solids() []Solid {
	var result []Solid
	for _, s := range l.Sprites.Objects() {
		if solid, ok := s.(Solid); ok {
			result = append(result, solid)
		}
	}
	return result
}

// NearbyActivatable returns the closest activatable object touching the player.
func (l *Level) NearbyActivatable() Activatable {
	reach := l.Player.Rect()
	reach.X--
	reach.Y--
	reach.W += 2
	reach.H += 2
	px, py := reach.Center()

	var best Activatable
	bestDist := math.MaxFloat64
	for _, s := range l.Sprites.Objects() {
		a, ok := s.(Activatable)
		if !ok || !a.CanActivate() || !reach.Intersects(a.Rect()) {
			continue
		}
		ax, ay := a.Rect().Center()
		if d := math.Hypot(ax-px, ay-py); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}

// Activate triggers an object with the level as host.
func (l *Level) Activate(a Activatable) {
	a.Activate(l.host)
}

// State returns the current state.
func (l *Level) State() core.GameState {
	return l.state
}

// Render draws the level, its objects, the player and the HUD.
func (l *Level) Render(dst *core.Screen) {
	dst.Clear()

	_, groundRow := l.Camera.ToScreen(0, l.GroundY())
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGreen)

	goalX, _ := l.Camera.ToScreen(l.Settings.Width-1, 0)
	dst.SetColored(goalX, groundRow-1, GoalChar, core.ColorBrightYellow)

	l.Sprites.Draw(dst, l.Camera)
	l.Player.Draw(dst, l.Camera)

	l.drawHUD(dst)

	switch {
	case l.state.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case l.state.GameOver:
		drawCenteredMessage(dst, "GAME OVER", "Press R to restart")
	case l.state.Finished:
		drawCenteredMessage(dst, "LEVEL COMPLETE", fmt.Sprintf("Score: %d  |  Press R to replay", l.state.Score))
	}
}

func (l *Level) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" %s ", l.Settings.Name))

	var timeText string
	if l.Settings.TimeLimit > 0 {
		left := core.Max(0, l.Settings.TimeLimit-l.elapsedSeconds())
		timeText = fmt.Sprintf(" Time: %d ", left)
	} else {
		timeText = fmt.Sprintf(" Time: %d ", l.elapsedSeconds())
	}
	dst.DrawText(dst.Width()-len(timeText)-2, 0, timeText)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(float64(boxX), float64(boxY), float64(boxW), float64(boxH)), ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
