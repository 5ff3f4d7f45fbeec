package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maryo/internal/audio"
	"github.com/vovakirdan/tui-maryo/internal/core"
	"github.com/vovakirdan/tui-maryo/internal/level"
	"github.com/vovakirdan/tui-maryo/internal/storage"
)

// helpRows is the space below the level reserved for the help line.
const helpRows = 1

// PlayOptions configures a play session.
type PlayOptions struct {
	Source  LevelSource
	Store   *storage.Store // may be nil
	Runtime core.RuntimeConfig
	Sink    audio.Sink // may be nil
	Logger  *log.Logger
	Watch   bool
}

// Model is the Bubble Tea model for playing a level.
//
// While a text box is open the model is in its modal state: the level
// does not advance, the viewer owns the keys and only the box that opened
// it keeps updating.
type Model struct {
	opts   PlayOptions
	lvl    *level.Level
	screen *core.Screen
	keys   *KeyMapper
	help   help.Model
	held   *core.KeyState
	frame  core.InputFrame
	frames int
	viewer *TextViewer

	watcher    *fileWatcher
	logger     *log.Logger
	state      core.GameState
	status     string
	scoreSaved bool
	quitting   bool
}

// NewModel creates a play model for an already loaded level.
func NewModel(lvl *level.Level, opts PlayOptions) *Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg := opts.Source.Config

	m := &Model{
		opts:   opts,
		screen: core.NewScreen(opts.Runtime.ScreenW, core.Max(1, opts.Runtime.ScreenH-helpRows)),
		keys:   NewKeyMapper(cfg.Keys),
		help:   help.New(),
		held:   core.NewKeyState(cfg.Player.HoldTicks),
		frame:  core.NewInputFrame(),
		logger: opts.Logger,
	}
	m.attach(lvl)
	return m
}

// attach makes lvl the running level.
func (m *Model) attach(lvl *level.Level) {
	m.lvl = lvl
	m.viewer = nil
	m.scoreSaved = false
	lvl.SetPresenter(m)
	lvl.SetAudio(audio.New(m.opts.Sink, m.opts.Source.Config.Audio.Enabled))

	rt := m.opts.Runtime
	rt.ScreenH = m.screen.Height()
	lvl.Reset(rt)
	m.state = lvl.State()
}

// Level returns the running level.
func (m *Model) Level() *level.Level { return m.lvl }

// Viewer returns the open text box viewer, or nil.
func (m *Model) Viewer() *TextViewer { return m.viewer }

// ShowDialog implements level.Presenter. It switches the model into its
// modal state.
func (m *Model) ShowDialog(d level.Dialog) {
	m.viewer = NewTextViewer(d, m.lvl.Camera)
	m.logger.Debug("text box opened", "level", m.lvl.ID, "object", d.Owner().ID())

	if m.opts.Store != nil {
		if err := m.opts.Store.RecordActivation(m.lvl.ID, d.Owner().ID()); err != nil {
			m.logger.Warn("cannot record activation", "error", err)
		}
	}
}

// Init starts the tick loop and the file watcher.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.opts.Runtime.TickRate)}
	if m.opts.Watch {
		fw, err := newFileWatcher(m.opts.Source.Files()...)
		if err != nil {
			m.logger.Error("watch disabled", "error", err)
			m.status = err.Error()
		} else {
			m.watcher = fw
			cmds = append(cmds, fw.wait())
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.viewer != nil {
			return m.handleViewerKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case reloadMsg:
		m.reload(fmt.Sprintf("reloaded %s", filepath.Base(msg.path)))
		return m, m.watcher.wait()

	case watchErrMsg:
		m.logger.Error("watch failed", "error", msg.err)
		m.status = msg.err.Error()
		return m, m.watcher.wait()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionRestart:
		if m.state.Done() {
			m.reload("")
		}
	case IsHeld(action):
		m.holdKey(action)
	case action != core.ActionNone:
		m.frame.Set(action)
	}
	return m, nil
}

// holdKey presses a movement key. Opposite directions release each other.
func (m *Model) holdKey(a core.Action) {
	switch a {
	case core.ActionLeft:
		m.held.KeyUp(core.ActionRight)
	case core.ActionRight:
		m.held.KeyUp(core.ActionLeft)
	}
	m.held.KeyDown(a, m.frames)
}

// handleViewerKey processes keyboard input while a text box is open.
func (m *Model) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.isViewerExit(msg) {
		m.closeViewer()
		return m, nil
	}

	k := m.keys.Keys()
	switch {
	case key.Matches(msg, k.Left):
		m.holdKey(core.ActionLeft)
	case key.Matches(msg, k.Right):
		m.holdKey(core.ActionRight)
	case key.Matches(msg, k.Up):
		m.viewer.Scroll(-m.scrollLines())
	case key.Matches(msg, k.Down):
		m.viewer.Scroll(m.scrollLines())
	}
	return m, nil
}

func (m *Model) isViewerExit(msg tea.KeyMsg) bool {
	if key.Matches(msg, m.keys.Keys().Action) {
		return true
	}
	switch msg.String() {
	case "esc", "enter", " ":
		return true
	}
	return false
}

func (m *Model) scrollLines() int {
	return ScrollLines(m.lvl.Config().TextBox.ScrollStep, m.opts.Runtime.SpeedFactor())
}

// closeViewer leaves the modal state. The viewer is dropped whatever the
// way out was.
func (m *Model) closeViewer() {
	m.viewer = nil
}

// handleResize processes window resize events.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	h := core.Max(1, msg.Height-helpRows)
	m.screen.Resize(msg.Width, h)
	m.lvl.Resize(msg.Width, h)
	m.help.Width = msg.Width
	if m.viewer != nil {
		m.viewer.Reposition(m.lvl.Camera)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.frames++

	if m.viewer != nil {
		m.tickViewer()
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	m.held.Apply(&m.frame, m.frames)

	result := m.lvl.Step(m.frame)
	m.state = result.State

	if m.state.Finished && !m.scoreSaved {
		if m.opts.Store != nil {
			if _, err := m.opts.Store.SaveScore(m.lvl.ID, m.state.Score); err != nil {
				m.logger.Warn("cannot save score", "error", err)
			}
		}
		m.scoreSaved = true
	}

	m.lvl.Audio.Update()
	m.frame.Clear()

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// tickViewer runs one frame of the modal state: the camera eases back from
// looking down, the box that opened the viewer updates, and audio plays.
func (m *Model) tickViewer() {
	cam := m.lvl.Camera
	if cam.YOffset > 0 {
		cam.YOffset -= m.lvl.Config().TextBox.CameraStep
		if cam.YOffset < 0 {
			cam.YOffset = 0
		}
		cam.Center(m.lvl.Player.Rect())
		m.viewer.Reposition(cam)
	}

	if owner := m.viewer.Dialog().Owner(); owner != nil {
		owner.Update(m.lvl.Context())
	}
	m.lvl.Audio.Update()
}

// reload rebuilds the level from its files.
func (m *Model) reload(status string) {
	lvl, err := m.opts.Source.Load()
	if err != nil {
		m.logger.Error("reload failed", "error", err)
		m.status = err.Error()
		return
	}
	m.attach(lvl)
	m.held = core.NewKeyState(m.opts.Source.Config.Player.HoldTicks)
	m.frame.Clear()
	m.status = status
	if status != "" {
		m.logger.Info(status, "level", lvl.ID)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".maryo", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.lvl.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.status = "saved " + path
}

func (m *Model) render() {
	m.lvl.Render(m.screen)
	if m.viewer != nil {
		m.viewer.Draw(m.screen)
	}
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()

	footer := m.help.View(m.keys.Keys())
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(footer)
}

// Close releases the file watcher.
func (m *Model) Close() error {
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}

// Run loads the level and plays it until the user quits.
func Run(opts PlayOptions) error {
	lvl, err := opts.Source.Load()
	if err != nil {
		return err
	}

	model := NewModel(lvl, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
