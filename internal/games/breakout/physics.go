package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// All collision tests are strict bounding-box comparisons evaluated once per
// tick after the ball moves. There is no swept test, so a ball moving further
// than an obstacle's thickness in one tick can pass through it.

// MovePaddle applies the paddle's velocity and keeps it on the surface.
func MovePaddle(p *Paddle, surfaceW float64) {
	p.X += p.DX
	p.X = core.ClampF(p.X, 0, surfaceW-p.W)
}

// MoveBall advances the ball by its velocity.
func MoveBall(b *Ball) {
	b.X += b.DX
	b.Y += b.DY
}

// CollideSideWalls reverses horizontal velocity when the ball's edge is past
// the left or right boundary. Returns true on a bounce.
func CollideSideWalls(b *Ball, surfaceW float64) bool {
	if b.X+b.Size > surfaceW || b.X-b.Size < 0 {
		b.DX = -b.DX
		return true
	}
	return false
}

// CollideTopWall reverses vertical velocity when the ball's top edge is above
// the surface. Returns true on a bounce.
func CollideTopWall(b *Ball) bool {
	if b.Y-b.Size < 0 {
		b.DY = -b.DY
		return true
	}
	return false
}

// CollidePaddle sends the ball straight up at its rebound speed when it sits
// strictly within the paddle's width and its bottom edge has reached the
// paddle's top. Glancing hits over either paddle edge do not count.
func CollidePaddle(b *Ball, p *Paddle) bool {
	ball := b.Bounds()
	paddle := p.Bounds()
	if ball.InsideX(paddle) && ball.Bottom > paddle.Top {
		b.DY = -b.Speed
		return true
	}
	return false
}

// CollideBricks tests the ball against every visible brick in grid order.
// Each overlapping brick reverses vertical velocity, is hidden, and is
// reported to onHit before the next brick is tested, so onHit may change
// the visibility of bricks that have not been tested yet.
// Returns the number of bricks hit.
func CollideBricks(b *Ball, grid Grid, onHit func(row, col int)) int {
	hits := 0
	for i := range grid {
		for j := range grid[i] {
			brick := &grid[i][j]
			if !brick.Visible {
				continue
			}

			ball := b.Bounds()
			bounds := brick.Bounds()
			if ball.InsideX(bounds) && ball.OverlapsY(bounds) {
				b.DY = -b.DY
				brick.Visible = false
				hits++
				if onHit != nil {
					onHit(i, j)
				}
			}
		}
	}
	return hits
}

// PastBottom reports whether the ball's bottom edge is below the surface.
func PastBottom(b *Ball, surfaceH float64) bool {
	return b.Y+b.Size > surfaceH
}
