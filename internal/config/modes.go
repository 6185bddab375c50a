package config

import (
	"fmt"
	"strings"
)

// Mode names one of the fixed difficulty presets.
type Mode string

const (
	ModeEasy   Mode = "easy"
	ModeMedium Mode = "medium"
	ModeHard   Mode = "hard"
)

// AllModes lists the presets in selector order.
var AllModes = []Mode{ModeEasy, ModeMedium, ModeHard}

// ParseMode converts a user-supplied name to a Mode.
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllModes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", name)
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeEasy:
		return "Easy"
	case ModeMedium:
		return "Medium"
	case ModeHard:
		return "Hard"
	default:
		return string(m)
	}
}

// Preset is the ball setup a mode applies: rebound speed and initial velocity.
type Preset struct {
	Speed float64 `yaml:"speed"`
	DX    float64 `yaml:"dx"`
	DY    float64 `yaml:"dy"`
}

// ModesConfig holds one preset per mode.
type ModesConfig struct {
	Easy   Preset `yaml:"easy"`
	Medium Preset `yaml:"medium"`
	Hard   Preset `yaml:"hard"`
}

// Preset returns the preset for a mode.
func (c ModesConfig) Preset(m Mode) (Preset, bool) {
	switch m {
	case ModeEasy:
		return c.Easy, true
	case ModeMedium:
		return c.Medium, true
	case ModeHard:
		return c.Hard, true
	default:
		return Preset{}, false
	}
}
