package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the game's state machine position.
type Phase int

const (
	PhaseNotStarted          Phase = iota // Title screen, ball parked at centre
	PhaseSelectingDifficulty              // Selector open, ball still parked
	PhasePlaying                          // Ball in motion
	PhaseGameOver                         // Terminal: no further ticks
)

// String returns a lower-case name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseSelectingDifficulty:
		return "selecting_difficulty"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game holds the whole session state. It is not safe for concurrent use;
// the host serialises input and ticks.
type Game struct {
	cfg config.BreakoutConfig

	ball   Ball
	paddle Paddle
	bricks Grid

	phase Phase
	mode  config.Mode
	score int
	lives int
	laps  int // Times the board has been cleared

	// Overlay signals for the presentation layer
	winShown  bool
	loseShown bool

	tick   uint64
	seed   int64
	rng    *SimpleRNG
	events []core.Event
}

// New creates a game from a validated configuration.
func New(cfg config.BreakoutConfig, seed int64) *Game {
	g := &Game{cfg: cfg}
	g.Reset(seed)
	return g
}

// Reset puts the game back on the title screen.
func (g *Game) Reset(seed int64) {
	w, h := g.cfg.Surface.Width, g.cfg.Surface.Height

	g.ball = Ball{
		X:    w / 2,
		Y:    h / 2,
		Size: g.cfg.Ball.Size,
	}
	g.paddle = Paddle{
		X:     w/2 - g.cfg.Paddle.CenterOffset,
		Y:     h - g.cfg.Paddle.BottomOffset,
		W:     g.cfg.Paddle.Width,
		H:     g.cfg.Paddle.Height,
		Speed: g.cfg.Paddle.Speed,
	}
	g.bricks = NewGrid(g.cfg.Bricks)

	g.phase = PhaseNotStarted
	g.mode = ""
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.laps = 0
	g.winShown = false
	g.loseShown = false
	g.tick = 0
	g.seed = seed
	g.rng = NewSimpleRNG(seed)
	g.events = nil
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Step advances the game by one tick: input first, then paddle and ball.
// Once the game is over Step does nothing, so callers may keep calling it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range in.Keys {
		switch ev.Type {
		case core.KeyDown:
			g.KeyDown(ev.Key)
		case core.KeyUp:
			g.KeyUp(ev.Key)
		}
	}
	g.applyActions(in)

	g.tick++
	g.movePaddle()
	g.moveBall()

	// Events from direct Start/SelectMode calls since the last tick ride along
	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

// applyActions handles the UI actions the game itself owns.
func (g *Game) applyActions(in core.InputFrame) {
	if in.Has(core.ActionStart) {
		g.Start()
	}

	for _, p := range presetActions {
		if in.Has(p.action) {
			//nolint:errcheck // A preset pressed outside the selector is ignored
			g.SelectMode(p.mode)
		}
	}
}

// presetActions maps selector actions to modes, in selector order.
var presetActions = []struct {
	action core.Action
	mode   config.Mode
}{
	{core.ActionEasy, config.ModeEasy},
	{core.ActionMedium, config.ModeMedium},
	{core.ActionHard, config.ModeHard},
}

func (g *Game) movePaddle() {
	MovePaddle(&g.paddle, g.cfg.Surface.Width)
}

// moveBall runs the ball half of the tick: move, walls, paddle, bricks, floor.
func (g *Game) moveBall() {
	if g.phase == PhaseGameOver {
		return
	}

	MoveBall(&g.ball)
	CollideSideWalls(&g.ball, g.cfg.Surface.Width)
	CollideTopWall(&g.ball)
	CollidePaddle(&g.ball, &g.paddle)
	CollideBricks(&g.ball, g.bricks, g.onBrickHit)

	if PastBottom(&g.ball, g.cfg.Surface.Height) {
		g.loseLife()
	}
}

// onBrickHit scores a destroyed brick and refills the board after every
// full clear. The win overlay stays up but play carries on.
func (g *Game) onBrickHit(row, col int) {
	g.score++
	g.emit(BrickHitEvent{Row: row, Column: col, Score: g.score})

	if g.score%g.bricks.Size() == 0 {
		g.bricks.ShowAll()
		g.laps++
		g.winShown = true
		g.emit(LapClearedEvent{Lap: g.laps, Score: g.score})
	}
}

// loseLife handles the ball leaving through the bottom.
func (g *Game) loseLife() {
	g.lives--
	g.emit(LifeLostEvent{Lives: g.lives})

	if g.lives <= 0 {
		g.endGame()
		return
	}
	g.resetBallAndPaddle()
}

// resetBallAndPaddle re-serves from the centre in a random horizontal direction.
func (g *Game) resetBallAndPaddle() {
	w, h := g.cfg.Surface.Width, g.cfg.Surface.Height
	speed := g.cfg.Gameplay.RespawnSpeed

	g.ball.X = w / 2
	g.ball.Y = h / 2
	g.ball.DX = speed * g.rng.Sign()
	g.ball.DY = -speed
	g.paddle.X = w/2 - g.cfg.Paddle.CenterOffset
}

func (g *Game) endGame() {
	g.loseShown = true
	g.setPhase(PhaseGameOver)
	g.emit(GameOverEvent{Score: g.score, Laps: g.laps, Ticks: g.tick})
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.emit(PhaseChangedEvent{From: g.phase, To: p})
	g.phase = p
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase { return g.phase }

// Mode returns the selected difficulty, or "" before one is chosen.
func (g *Game) Mode() config.Mode { return g.mode }

// Score returns the number of bricks destroyed.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Laps returns how many times the board has been cleared.
func (g *Game) Laps() int { return g.laps }

// WinShown reports whether the win overlay is up.
func (g *Game) WinShown() bool { return g.winShown }

// LoseShown reports whether the lose overlay is up.
func (g *Game) LoseShown() bool { return g.loseShown }

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball { return g.ball }

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle { return g.paddle }

// Brick returns a copy of the brick at (row, col).
func (g *Game) Brick(row, col int) Brick { return g.bricks[row][col] }
