package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadBreakout loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BreakoutConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults.
func parse(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal encodes the configuration as YAML.
func (c BreakoutConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable board.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Surface.Width <= 0 || c.Surface.Height <= 0:
		return fmt.Errorf("%w: surface must have a positive size", ErrInvalidConfig)
	case c.Ball.Size <= 0:
		return fmt.Errorf("%w: ball size must be positive", ErrInvalidConfig)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have a positive size", ErrInvalidConfig)
	case c.Paddle.Width > c.Surface.Width:
		return fmt.Errorf("%w: paddle is wider than the surface", ErrInvalidConfig)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative", ErrInvalidConfig)
	case c.Bricks.Rows < 1 || c.Bricks.Columns < 1:
		return fmt.Errorf("%w: brick grid needs at least one row and column", ErrInvalidConfig)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: bricks must have a positive size", ErrInvalidConfig)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalidConfig)
	case c.Input.ReleaseAfterMS < 0:
		return fmt.Errorf("%w: release_after_ms must not be negative", ErrInvalidConfig)
	}

	for _, m := range AllModes {
		p, _ := c.Modes.Preset(m)
		if p.Speed <= 0 {
			return fmt.Errorf("%w: %s preset needs a positive speed", ErrInvalidConfig, m)
		}
	}
	return nil
}
