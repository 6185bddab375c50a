// Package breakout implements a single-board brick breaker: one ball, one
// paddle and a fixed grid of bricks that refills whenever it is cleared.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the ball state. X and Y are the centre; Size is the radius.
type Ball struct {
	X, Y   float64
	Size   float64
	DX, DY float64 // Velocity per tick
	Speed  float64 // Upward speed after a paddle rebound
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Bounds {
	return core.CircleBounds(b.X, b.Y, b.Size)
}

// Paddle is the player's paddle. X and Y are the top-left corner.
type Paddle struct {
	X, Y  float64
	W, H  float64
	DX    float64 // Set by the input handler
	Speed float64
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.Bounds {
	return core.BoxBounds(p.X, p.Y, p.W, p.H)
}

// Brick is one cell of the grid. Bricks are hidden when hit, never removed.
type Brick struct {
	X, Y    float64
	W, H    float64
	Visible bool
}

// Bounds returns the brick's bounding box.
func (b *Brick) Bounds() core.Bounds {
	return core.BoxBounds(b.X, b.Y, b.W, b.H)
}

// Grid is the brick board indexed [row][column].
// Rows advance along x and columns along y, matching config.BrickConfig.
type Grid [][]Brick

// NewGrid lays out every brick of the board, all visible.
func NewGrid(cfg config.BrickConfig) Grid {
	grid := make(Grid, cfg.Rows)
	for i := range grid {
		grid[i] = make([]Brick, cfg.Columns)
		for j := range grid[i] {
			grid[i][j] = Brick{
				X:       float64(i)*(cfg.Width+cfg.Padding) + cfg.OffsetX,
				Y:       float64(j)*(cfg.Height+cfg.Padding) + cfg.OffsetY,
				W:       cfg.Width,
				H:       cfg.Height,
				Visible: true,
			}
		}
	}
	return grid
}

// ShowAll makes every brick visible again.
func (g Grid) ShowAll() {
	for i := range g {
		for j := range g[i] {
			g[i][j].Visible = true
		}
	}
}

// CountVisible returns the number of bricks still standing.
func (g Grid) CountVisible() int {
	count := 0
	for _, row := range g {
		for _, b := range row {
			if b.Visible {
				count++
			}
		}
	}
	return count
}

// Size returns the total number of bricks.
func (g Grid) Size() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}
