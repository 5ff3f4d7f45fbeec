// Package config provides YAML-based game configuration loading for the
// level engine: physics, player, enemy defaults, the text box viewer and the
// key preferences.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tunable parameters.
type GameConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	Spika   SpikaConfig   `yaml:"spika"`
	TextBox TextBoxConfig `yaml:"text_box"`
	Keys    KeysConfig    `yaml:"keys"`
	Audio   AudioConfig   `yaml:"audio"`
}

// PhysicsConfig defines player movement. Values are cells per tick at 60 fps.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	WalkSpeed    float64 `yaml:"walk_speed"`
}

// PlayerConfig defines the player's size and input hold time.
type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	HoldTicks int     `yaml:"hold_ticks"` // ticks one key press keeps walking
}

// CameraConfig defines camera behavior.
type CameraConfig struct {
	LookDownOffset float64 `yaml:"look_down_offset"` // y offset applied while looking down
}

// SpikaConfig defines spika defaults.
type SpikaConfig struct {
	// Speeds maps color names to the default speed for that color.
	Speeds map[string]float64 `yaml:"speeds"`
	// SpeedScale converts a spika speed into cells per tick.
	SpeedScale float64 `yaml:"speed_scale"`
	// DetectRange is the horizontal distance at which a spika starts rolling.
	DetectRange float64 `yaml:"detect_range"`
}

// TextBoxConfig defines the text box viewer window.
type TextBoxConfig struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	ScrollStep   float64 `yaml:"scroll_step"` // scrollbar step size in lines
	CameraStep   float64 `yaml:"camera_step"` // y offset removed per frame while open
}

// KeysConfig holds the key preferences, in Bubble Tea key-string form.
type KeysConfig struct {
	Action string `yaml:"action"`
	Jump   string `yaml:"jump"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Up     string `yaml:"up"`
	Down   string `yaml:"down"`
}

// AudioConfig toggles sound output.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate checks that the config can drive a level.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.TextBox.WindowWidth <= 2 || c.TextBox.WindowHeight <= 2 {
		errs = append(errs, fmt.Errorf("text box window must be larger than 2x2, got %dx%d",
			c.TextBox.WindowWidth, c.TextBox.WindowHeight))
	}
	if c.Spika.SpeedScale < 0 {
		errs = append(errs, errors.New("spika speed_scale must be >= 0"))
	}
	for color, speed := range c.Spika.Speeds {
		if speed < 0 {
			errs = append(errs, fmt.Errorf("spika %s speed must be >= 0", color))
		}
	}
	if c.Keys.Action == "" {
		errs = append(errs, errors.New("keys.action must be set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// SpikaSpeed returns the configured default speed for a color name,
// falling back to the built-in defaults.
func (c SpikaConfig) SpikaSpeed(color string) float64 {
	if v, ok := c.Speeds[color]; ok {
		return v
	}
	return DefaultGameConfig().Spika.Speeds[color]
}
