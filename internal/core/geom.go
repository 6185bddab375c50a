// Package core provides fundamental types and utilities for the breakout game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Bounds is an axis-aligned bounding box in surface coordinates.
// All comparisons on it are strict, so touching edges never count as contact.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// BoxBounds returns the bounds of a box given its top-left corner and size.
func BoxBounds(x, y, w, h float64) Bounds {
	return Bounds{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// CircleBounds returns the bounding box of a circle centred at (x, y).
func CircleBounds(x, y, radius float64) Bounds {
	return Bounds{Left: x - radius, Top: y - radius, Right: x + radius, Bottom: y + radius}
}

// InsideX reports whether b's horizontal extent lies strictly within o's.
func (b Bounds) InsideX(o Bounds) bool {
	return b.Left > o.Left && b.Right < o.Right
}

// OverlapsY reports whether b and o strictly overlap vertically.
func (b Bounds) OverlapsY(o Bounds) bool {
	return b.Bottom > o.Top && b.Top < o.Bottom
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
