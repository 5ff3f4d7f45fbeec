package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration. It matches the
// embedded defaults/game.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:      0.06,
			JumpImpulse:  -1.1,
			MaxFallSpeed: 1.2,
			WalkSpeed:    0.5,
		},
		Player: PlayerConfig{
			Width:     2,
			Height:    2,
			HoldTicks: 8,
		},
		Camera: CameraConfig{
			LookDownOffset: 6,
		},
		Spika: SpikaConfig{
			Speeds: map[string]float64{
				"orange": 3.0,
				"green":  4.0,
				"grey":   7.0,
				"red":    10.0,
			},
			SpeedScale:  0.05,
			DetectRange: 30,
		},
		TextBox: TextBoxConfig{
			WindowWidth:  36,
			WindowHeight: 9,
			ScrollStep:   4,
			CameraStep:   2,
		},
		Keys: KeysConfig{
			Action: "e",
			Jump:   " ",
			Left:   "left",
			Right:  "right",
			Up:     "up",
			Down:   "down",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
