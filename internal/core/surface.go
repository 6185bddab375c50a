package core

import (
	"math"
	"unicode/utf8"
)

// Surface is a 2D drawing context in logical surface coordinates.
// The origin is the top-left corner; y grows downwards.
type Surface interface {
	Width() float64
	Height() float64
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(x, y, radius float64, c Color)
	// FillText draws text whose baseline-left corner is at (x, y).
	FillText(x, y float64, text string, c Color)
	// MeasureText returns the width FillText would use for text.
	MeasureText(text string) float64
}

// Glyphs used when rasterising shapes onto cells.
const (
	RectGlyph   = '█'
	CircleGlyph = '●'
)

// Canvas rasterises a logical surface onto a Screen.
// A cell is covered by a shape when the cell's centre lies inside the shape's
// extent on both axes; shapes thinner than a cell still cover one cell line.
type Canvas struct {
	screen        *Screen
	width, height float64
}

// NewCanvas creates a canvas of the given logical size drawing onto screen.
func NewCanvas(screen *Screen, width, height float64) *Canvas {
	return &Canvas{screen: screen, width: width, height: height}
}

// Screen returns the backing cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Width returns the logical width.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the logical height.
func (c *Canvas) Height() float64 {
	return c.height
}

// cellSize returns the logical size of one screen cell.
func (c *Canvas) cellSize() (sx, sy float64) {
	sx = c.width / float64(Max(c.screen.Width(), 1))
	sy = c.height / float64(Max(c.screen.Height(), 1))
	return sx, sy
}

// cellAt returns the cell containing the logical point (x, y).
func (c *Canvas) cellAt(x, y float64) (col, row int) {
	sx, sy := c.cellSize()
	return int(math.Floor(x / sx)), int(math.Floor(y / sy))
}

// span returns the first and last cell index whose centre lies in [lo, hi).
// A range too narrow to contain any centre maps to the cell holding its midpoint.
func span(lo, hi, size float64) (first, last int) {
	first = int(math.Ceil(lo/size - 0.5))
	last = int(math.Ceil(hi/size-0.5)) - 1
	if first > last {
		first = int(math.Floor((lo + hi) / 2 / size))
		last = first
	}
	return first, last
}

// fill sets every cell covered by the box to cell.
func (c *Canvas) fill(x, y, w, h float64, cell Cell) {
	sx, sy := c.cellSize()
	c0, c1 := span(x, x+w, sx)
	r0, r1 := span(y, y+h, sy)
	c.screen.DrawRect(NewRect(c0, r0, c1-c0+1, r1-r0+1), cell)
}

// ClearRect blanks every cell covered by the rectangle.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= c.width && y+h >= c.height {
		c.screen.Clear()
		return
	}
	c.fill(x, y, w, h, blank)
}

// FillRect fills the rectangle with RectGlyph.
func (c *Canvas) FillRect(x, y, w, h float64, color Color) {
	c.fill(x, y, w, h, Cell{Rune: RectGlyph, Color: color})
}

// FillCircle fills the circle's bounding box with CircleGlyph.
// At terminal resolution a ball spans at most a couple of cells, so the box
// is a closer match than testing cell centres against the circle.
func (c *Canvas) FillCircle(x, y, radius float64, color Color) {
	c.fill(x-radius, y-radius, 2*radius, 2*radius, Cell{Rune: CircleGlyph, Color: color})
}

// FillText writes text on the row just above the baseline.
func (c *Canvas) FillText(x, y float64, text string, color Color) {
	col, row := c.cellAt(x, y-1)
	c.screen.DrawTextColored(col, row, text, color)
}

// MeasureText returns one cell width per rune.
func (c *Canvas) MeasureText(text string) float64 {
	sx, _ := c.cellSize()
	return float64(utf8.RuneCountInString(text)) * sx
}

var _ Surface = (*Canvas)(nil)
