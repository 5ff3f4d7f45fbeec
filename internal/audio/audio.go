// Package audio queues sound effects raised by the simulation and hands them
// to a platform sink once per frame.
package audio

import (
	"io"
	"sync"
)

// Sound names used by level objects.
const (
	SoundBoxActivate = "item/box_activate"
	SoundBoxEmpty    = "item/empty_box"
	SoundPlayerDeath = "player/death"
	SoundLevelGoal   = "level/goal"
)

// Sink plays sounds on a concrete output.
type Sink interface {
	Play(name string)
}

// Audio buffers sounds between frames.
// Play may be called from level code; Update drains on the render loop.
type Audio struct {
	mu      sync.Mutex
	sink    Sink
	enabled bool
	queue   []string
	played  int
}

// New creates an Audio that plays through sink. A nil sink discards sounds.
func New(sink Sink, enabled bool) *Audio {
	if sink == nil {
		sink = NopSink{}
	}
	return &Audio{
		sink:    sink,
		enabled: enabled,
	}
}

// Play queues a sound for the next Update.
func (a *Audio) Play(name string) {
	if a == nil || name == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return
	}
	a.queue = append(a.queue, name)
}

// Update hands all queued sounds to the sink.
func (a *Audio) Update() {
	if a == nil {
		return
	}
	a.mu.Lock()
	queue := a.queue
	a.queue = nil
	a.played += len(queue)
	sink := a.sink
	a.mu.Unlock()

	for _, name := range queue {
		sink.Play(name)
	}
}

// SetEnabled toggles sound output. Disabling drops anything queued.
func (a *Audio) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
	if !enabled {
		a.queue = nil
	}
}

// Pending returns the number of queued sounds.
func (a *Audio) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queue)
}

// Played returns how many sounds have been handed to the sink.
func (a *Audio) Played() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.played
}

// NopSink discards every sound.
type NopSink struct{}

// Play implements Sink.
func (NopSink) Play(string) {}

// BellSink rings the terminal bell for the sounds in Sounds.
// An empty Sounds set rings for every sound.
type BellSink struct {
	W      io.Writer
	Sounds map[string]bool
}

// NewBellSink rings on w for the box activation and goal sounds.
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{
		W: w,
		Sounds: map[string]bool{
			SoundBoxActivate: true,
			SoundLevelGoal:   true,
		},
	}
}

// Play implements Sink.
func (b *BellSink) Play(name string) {
	if len(b.Sounds) > 0 && !b.Sounds[name] {
		return
	}
	//nolint:errcheck // A missed bell is not worth failing a frame over
	b.W.Write([]byte{'\a'})
}
