package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// KeyDown starts the paddle moving. Unrecognised keys are ignored.
// There is no debouncing: the most recent event decides the velocity.
func (g *Game) KeyDown(key string) {
	switch key {
	case core.KeyArrowRight, core.KeyRight:
		g.paddle.DX = g.paddle.Speed
	case core.KeyArrowLeft, core.KeyLeft:
		g.paddle.DX = -g.paddle.Speed
	}
}

// KeyUp stops the paddle when either arrow is released.
func (g *Game) KeyUp(key string) {
	if isArrowKey(key) {
		g.paddle.DX = 0
	}
}

func isArrowKey(key string) bool {
	switch key {
	case core.KeyArrowRight, core.KeyRight, core.KeyArrowLeft, core.KeyLeft:
		return true
	}
	return false
}
