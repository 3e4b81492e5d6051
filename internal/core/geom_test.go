package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        RectAt(V(0, 0), 10, 10),
			b:        RectAt(V(5, 5), 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        RectAt(V(0, 0), 10, 10),
			b:        RectAt(V(15, 0), 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        RectAt(V(0, 0), 10, 10),
			b:        RectAt(V(0, -15), 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        RectAt(V(0, 0), 10, 10),
			b:        RectAt(V(10, 0), 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        RectAt(V(0, 0), 40, 40),
			b:        RectAt(V(3, -3), 5, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        RectAt(V(0, 0), 10, 10),
			b:        RectAt(V(9.9, 9.9), 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := RectAt(V(10, 20), 4, 6)
	if r.Left() != 8 || r.Right() != 12 {
		t.Errorf("Left/Right = %v/%v, expected 8/12", r.Left(), r.Right())
	}
	if r.Bottom() != 17 || r.Top() != 23 {
		t.Errorf("Bottom/Top = %v/%v, expected 17/23", r.Bottom(), r.Top())
	}
	if !r.Contains(V(10, 20)) {
		t.Error("Contains(center) = false, expected true")
	}
	if r.Contains(V(12, 20)) {
		t.Error("Contains(right edge) = true, expected false")
	}
}

func TestVec2(t *testing.T) {
	a := V(3, 4)
	if a.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", a.Len())
	}
	if d := V(1, 1).Dist(V(4, 5)); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
	if got := V(0, 0).Lerp(V(10, -10), 0.25); got != V(2.5, -2.5) {
		t.Errorf("Lerp() = %v, expected (2.5,-2.5)", got)
	}
	if got := V(0, 2).Angle(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Angle() = %v, expected pi/2", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}

func TestRuntimeConfigMapping(t *testing.T) {
	cfg := DefaultConfig()

	w, h := cfg.PlaySize()
	if w != 640 || h != 368 {
		t.Fatalf("PlaySize() = %vx%v, expected 640x368", w, h)
	}

	col, row := cfg.WorldToCell(V(4, 360))
	if col != 0 || row != 0 {
		t.Errorf("WorldToCell(top-left) = (%d,%d), expected (0,0)", col, row)
	}

	col, row = cfg.WorldToCell(V(639, 1))
	if col != 79 || row != 22 {
		t.Errorf("WorldToCell(bottom-right) = (%d,%d), expected (79,22)", col, row)
	}

	col, row = cfg.WorldToCell(V(-1, h+1))
	if col != -1 || row != -1 {
		t.Errorf("WorldToCell(off-screen) = (%d,%d), expected (-1,-1)", col, row)
	}

	p := cfg.CellToWorld(10, 5)
	col, row = cfg.WorldToCell(p)
	if col != 10 || row != 5 {
		t.Errorf("CellToWorld/WorldToCell round trip = (%d,%d), expected (10,5)", col, row)
	}

	col, row = cfg.WorldToScreen(cfg.ScreenToWorld(12, 3))
	if col != 12 || row != 3 {
		t.Errorf("ScreenToWorld/WorldToScreen round trip = (%d,%d), expected (12,3)", col, row)
	}

	// Clicking the status bar maps to the top edge of the play area
	if p := cfg.ScreenToWorld(0, 0); p.Y != h {
		t.Errorf("ScreenToWorld(status bar).Y = %v, expected %v", p.Y, h)
	}
}
