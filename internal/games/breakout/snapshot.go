package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick  uint64
	Phase Phase
	Mode  config.Mode
	Score int
	Lives int
	Laps  int

	BallX, BallY   float64
	BallDX, BallDY float64
	BallSpeed      float64

	PaddleX  float64
	PaddleDX float64

	// Brick visibility flattened row by row
	Visible []bool

	WinShown  bool
	LoseShown bool

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	visible := make([]bool, 0, g.bricks.Size())
	for _, row := range g.bricks {
		for _, b := range row {
			visible = append(visible, b.Visible)
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Mode:      g.mode,
		Score:     g.score,
		Lives:     g.lives,
		Laps:      g.laps,
		BallX:     g.ball.X,
		BallY:     g.ball.Y,
		BallDX:    g.ball.DX,
		BallDY:    g.ball.DY,
		BallSpeed: g.ball.Speed,
		PaddleX:   g.paddle.X,
		PaddleDX:  g.paddle.DX,
		Visible:   visible,
		WinShown:  g.winShown,
		LoseShown: g.loseShown,
		RNGState:  g.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	for _, r := range snap.Mode {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Laps)  //#nosec G115 -- hash computation

	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, snap.BallSpeed, snap.PaddleX, snap.PaddleDX} {
		h = h*31 + math.Float64bits(f)
	}

	for _, v := range snap.Visible {
		h = h*31 + boolBit(v)
	}
	h = h*31 + boolBit(snap.WinShown)
	h = h*31 + boolBit(snap.LoseShown)

	h = h*31 + snap.RNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
