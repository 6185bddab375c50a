package core

import "testing"

func TestBoundsInsideX(t *testing.T) {
	brick := BoxBounds(45, 60, 65, 18)

	tests := []struct {
		name     string
		ball     Bounds
		expected bool
	}{
		{"well inside", CircleBounds(77, 70, 13), true},
		{"touching left edge", CircleBounds(58, 70, 13), false},
		{"touching right edge", CircleBounds(97, 70, 13), false},
		{"overhanging left", CircleBounds(50, 70, 13), false},
		{"wider than brick", CircleBounds(77, 70, 40), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ball.InsideX(brick); got != tc.expected {
				t.Errorf("InsideX() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsOverlapsY(t *testing.T) {
	brick := BoxBounds(45, 60, 65, 18)

	tests := []struct {
		name     string
		ball     Bounds
		expected bool
	}{
		{"centred on brick", CircleBounds(77, 69, 13), true},
		{"just below", CircleBounds(77, 91, 13), false},
		{"just above", CircleBounds(77, 47, 13), false},
		{"clipping bottom", CircleBounds(77, 90, 13), true},
		{"clipping top", CircleBounds(77, 48, 13), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ball.OverlapsY(brick); got != tc.expected {
				t.Errorf("OverlapsY() = %v, expected %v", got, tc.expected)
			}
			// Overlap is symmetric
			if got := brick.OverlapsY(tc.ball); got != tc.expected {
				t.Errorf("OverlapsY() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 700.0, 5.5},
		{-8, 0.0, 700.0, 0.0},
		{708, 0.0, 700.0, 700.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
