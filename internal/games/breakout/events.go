package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PhaseChangedEvent is emitted on every state machine transition.
type PhaseChangedEvent struct {
	From, To Phase
}

func (PhaseChangedEvent) EventName() string { return "phase_changed" }

func (e PhaseChangedEvent) KeyVals() []any {
	return []any{"from", e.From.String(), "to", e.To.String()}
}

// ModeSelectedEvent is emitted when a difficulty preset is applied.
type ModeSelectedEvent struct {
	Mode   config.Mode
	Preset config.Preset
}

func (ModeSelectedEvent) EventName() string { return "mode_selected" }

func (e ModeSelectedEvent) KeyVals() []any {
	return []any{"mode", string(e.Mode), "speed", e.Preset.Speed, "dx", e.Preset.DX, "dy", e.Preset.DY}
}

// BrickHitEvent is emitted for each brick destroyed.
type BrickHitEvent struct {
	Row, Column int
	Score       int
}

func (BrickHitEvent) EventName() string { return "brick_hit" }

func (e BrickHitEvent) KeyVals() []any {
	return []any{"row", e.Row, "column", e.Column, "score", e.Score}
}

// LapClearedEvent is emitted when the board is cleared and refilled.
type LapClearedEvent struct {
	Lap   int
	Score int
}

func (LapClearedEvent) EventName() string { return "lap_cleared" }

func (e LapClearedEvent) KeyVals() []any {
	return []any{"lap", e.Lap, "score", e.Score}
}

// LifeLostEvent is emitted when the ball leaves through the bottom.
type LifeLostEvent struct {
	Lives int // Remaining
}

func (LifeLostEvent) EventName() string { return "life_lost" }

func (e LifeLostEvent) KeyVals() []any {
	return []any{"lives", e.Lives}
}

// GameOverEvent is emitted once, when the last life is lost.
type GameOverEvent struct {
	Score int
	Laps  int
	Ticks uint64
}

func (GameOverEvent) EventName() string { return "game_over" }

func (e GameOverEvent) KeyVals() []any {
	return []any{"score", e.Score, "laps", e.Laps, "ticks", e.Ticks}
}

var (
	_ core.Event = PhaseChangedEvent{}
	_ core.Event = ModeSelectedEvent{}
	_ core.Event = BrickHitEvent{}
	_ core.Event = LapClearedEvent{}
	_ core.Event = LifeLostEvent{}
	_ core.Event = GameOverEvent{}
)
