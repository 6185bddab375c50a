package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration.
// It mirrors defaults/breakout.yaml and is used if the embedded file is unusable.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Size: 13,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       9,
			Speed:        8,
			BottomOffset: 20,
			CenterOffset: 40,
		},
		Bricks: BrickConfig{
			Rows:    9,
			Columns: 5,
			Width:   65,
			Height:  18,
			Padding: 9,
			OffsetX: 45,
			OffsetY: 60,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			RespawnSpeed: 4,
		},
		Modes: ModesConfig{
			Easy:   Preset{Speed: 3.5, DX: 4, DY: -4},
			Medium: Preset{Speed: 4.8, DX: 5.2, DY: -5.2},
			Hard:   Preset{Speed: 5.6, DX: 5.9, DY: -5.9},
		},
		Input: InputConfig{
			ReleaseAfterMS: 250,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
