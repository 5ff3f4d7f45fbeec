package level

import "github.com/vovakirdan/tui-maryo/internal/audio"

// Dialog is a modal text window requested by an activated object.
type Dialog interface {
	// Text returns the content to show.
	Text() string

	// WindowSize returns the window size in cells.
	WindowSize() (w, h int)

	// Placement returns the window's top-left screen cell for the camera.
	// It is called again whenever the camera moves.
	Placement(cam *Camera) (x, y int)

	// Owner is the sprite that keeps updating while the dialog is shown.
	Owner() Sprite
}

// Host is what an activated object may ask of its surroundings.
type Host interface {
	ShowDialog(d Dialog)
	PlaySound(name string)
}

// Presenter shows dialogs on a concrete platform.
type Presenter interface {
	ShowDialog(d Dialog)
}

// Context is handed to sprites on every update.
type Context struct {
	Player      *Player
	Camera      *Camera
	Audio       *audio.Audio
	Tick        int
	SpeedFactor float64
}

// levelHost routes sounds to the level's audio and dialogs to the presenter.
// Without a presenter, dialogs queue up and can be drained with Level.TakeDialogs.
type levelHost struct {
	audio     *audio.Audio
	presenter Presenter
	pending   []Dialog
}

func (h *levelHost) ShowDialog(d Dialog) {
	if h.presenter != nil {
		h.presenter.ShowDialog(d)
		return
	}
	h.pending = append(h.pending, d)
}

func (h *levelHost) PlaySound(name string) {
	h.audio.Play(name)
}
