package core

// RuntimeConfig contains configuration passed to a level at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SpeedFactor scales per-frame movement so that speeds, which are tuned for
// 60 ticks per second, stay the same at other tick rates.
func (c RuntimeConfig) SpeedFactor() float64 {
	if c.TickRate <= 0 {
		return 1
	}
	return 60.0 / float64(c.TickRate)
}

// GameState represents the current state of a level run.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Player was caught
	Finished bool // Player reached the level goal
	Paused   bool // Whether the level is paused
}

// Done reports whether the run has ended either way.
func (s GameState) Done() bool {
	return s.GameOver || s.Finished
}

// StepResult is returned by Level.Step after each simulation tick.
type StepResult struct {
	State GameState
}
