package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Colours for game elements.
const (
	BallColor      = core.ColorWhite
	PaddleColor    = core.ColorPurple
	BrickColor     = core.ColorPurple
	BrickAltColor  = core.ColorMagenta // Every other row, so neighbours stay distinct on coarse surfaces
	HUDColor       = core.ColorDefault
	PanelColor     = core.ColorBrightWhite
	WinPanelColor  = core.ColorBrightYellow
	LosePanelColor = core.ColorBrightRed
)

// HUD text positions, as baseline-left corners.
const (
	hudBaseline    = 30
	livesX         = 30
	scoreRightPad  = 100 // Score starts this far from the right edge
	panelLineSpace = 30
)

// Render draws the current game state onto the surface.
// It reads state only, so rendering twice without a tick draws the same frame.
func (g *Game) Render(s core.Surface) {
	s.ClearRect(0, 0, g.cfg.Surface.Width, g.cfg.Surface.Height)

	g.drawBall(s)
	g.drawPaddle(s)
	g.drawScore(s)
	g.drawLives(s)
	g.drawBricks(s)

	g.drawOverlays(s)
}

func (g *Game) drawBall(s core.Surface) {
	s.FillCircle(g.ball.X, g.ball.Y, g.ball.Size, BallColor)
}

func (g *Game) drawPaddle(s core.Surface) {
	s.FillRect(g.paddle.X, g.paddle.Y, g.paddle.W, g.paddle.H, PaddleColor)
}

func (g *Game) drawScore(s core.Surface) {
	s.FillText(g.cfg.Surface.Width-scoreRightPad, hudBaseline, fmt.Sprintf("Score: %d", g.score), HUDColor)
}

func (g *Game) drawLives(s core.Surface) {
	s.FillText(livesX, hudBaseline, fmt.Sprintf("Lives: %d", g.lives), HUDColor)
}

// drawBricks draws visible bricks; hidden ones are skipped entirely.
func (g *Game) drawBricks(s core.Surface) {
	for i := range g.bricks {
		color := BrickColor
		if i%2 == 1 {
			color = BrickAltColor
		}
		for _, b := range g.bricks[i] {
			if !b.Visible {
				continue
			}
			s.FillRect(b.X, b.Y, b.W, b.H, color)
		}
	}
}

// drawOverlays draws the title, selector, win and lose panels.
func (g *Game) drawOverlays(s core.Surface) {
	switch g.phase {
	case PhaseNotStarted:
		g.drawPanel(s, PanelColor,
			"B R E A K O U T",
			"",
			"Press ENTER to start",
			"? rules   q quit",
		)
		return

	case PhaseSelectingDifficulty:
		g.drawPanel(s, PanelColor,
			"Choose difficulty",
			"",
			selectorLine(),
		)
		return

	case PhaseGameOver:
		g.drawPanel(s, LosePanelColor,
			"GAME OVER",
			fmt.Sprintf("Final score: %d", g.score),
			"Press Q to quit",
		)
		return
	}

	if g.winShown {
		msg := "YOU WIN! Keep playing"
		if g.laps > 1 {
			msg = fmt.Sprintf("YOU WIN! x%d  Keep playing", g.laps)
		}
		x := (g.cfg.Surface.Width - s.MeasureText(msg)) / 2
		y := g.cfg.Surface.Height * 0.6
		s.FillText(x, y, msg, WinPanelColor)
	}
}

// selectorLine lists the presets with the number key that picks each one.
func selectorLine() string {
	items := make([]string, len(config.AllModes))
	for i, m := range config.AllModes {
		items[i] = fmt.Sprintf("%d %s", i+1, m.Title())
	}
	return strings.Join(items, "   ")
}

// drawPanel clears a centred box and writes the lines inside it.
func (g *Game) drawPanel(s core.Surface, color core.Color, lines ...string) {
	w, h := g.cfg.Surface.Width, g.cfg.Surface.Height

	widest := 0.0
	for _, line := range lines {
		widest = max(widest, s.MeasureText(line))
	}
	pad := s.MeasureText("  ")

	boxW := widest + 2*pad
	boxH := float64(panelLineSpace * (len(lines) + 1))
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	s.ClearRect(x0, y0, boxW, boxH)
	for i, line := range lines {
		if line == "" {
			continue
		}
		x := (w - s.MeasureText(line)) / 2
		s.FillText(x, y0+float64(panelLineSpace*(i+1)), line, color)
	}
}
