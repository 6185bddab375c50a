package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// ErrSelectorClosed is returned when a preset is chosen while the
	// difficulty selector is not open.
	ErrSelectorClosed = errors.New("breakout: difficulty selector is not open")

	// ErrUnknownMode is returned for a mode without a preset.
	ErrUnknownMode = errors.New("breakout: unknown difficulty")
)

// Start opens the difficulty selector. Returns false if the game has
// already been started.
func (g *Game) Start() bool {
	if g.phase != PhaseNotStarted {
		return false
	}
	g.setPhase(PhaseSelectingDifficulty)
	return true
}

// SelectMode applies a difficulty preset and puts the ball in motion.
// A preset can be applied only once, while the selector is open.
func (g *Game) SelectMode(m config.Mode) error {
	if g.phase != PhaseSelectingDifficulty {
		return fmt.Errorf("select %s in phase %s: %w", m, g.phase, ErrSelectorClosed)
	}

	preset, ok := g.cfg.Modes.Preset(m)
	if !ok {
		return fmt.Errorf("select %q: %w", m, ErrUnknownMode)
	}

	g.ball.Speed = preset.Speed
	g.ball.DX = preset.DX
	g.ball.DY = preset.DY
	g.mode = m

	g.emit(ModeSelectedEvent{Mode: m, Preset: preset})
	g.setPhase(PhasePlaying)
	return nil
}
