// Package config provides YAML-based game configuration loading and the
// difficulty presets offered by the mode selector.
package config

// BreakoutConfig contains all configuration for the game.
// Distances are in logical surface units, speeds in units per tick.
type BreakoutConfig struct {
	Surface  SurfaceConfig  `yaml:"surface"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Modes    ModesConfig    `yaml:"modes"`
	Input    InputConfig    `yaml:"input"`
}

// SurfaceConfig is the logical size of the playfield.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Size float64 `yaml:"size"` // Radius
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from paddle top to surface bottom
	CenterOffset float64 `yaml:"center_offset"` // Start x is surface centre minus this
}

// BrickConfig defines the brick grid.
// Rows advance left to right and columns top to bottom, so the board is
// Rows bricks wide and Columns bricks tall.
type BrickConfig struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// Count returns the number of bricks on the board.
func (b BrickConfig) Count() int {
	return b.Rows * b.Columns
}

// GameplayConfig defines lives and the respawn serve.
type GameplayConfig struct {
	Lives        int     `yaml:"lives"`
	RespawnSpeed float64 `yaml:"respawn_speed"` // |dx| and -dy after a lost life
}

// InputConfig tunes the terminal input layer.
type InputConfig struct {
	// ReleaseAfterMS is how long a held key may go without an auto-repeat
	// before it is treated as released.
	ReleaseAfterMS int `yaml:"release_after_ms"`
}
