// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
//
// World coordinates are float64 units with the origin at the bottom-left of
// the play area and Y growing upward.
package core

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Angle returns the direction of v in radians, as atan2(Y, X).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp interpolates linearly from v to o; t=0 yields v, t=1 yields o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Rect is an axis-aligned bounding box described by its center and size.
// Sprites in the play area are anchored at their center.
type Rect struct {
	Center Vec2
	W, H   float64
}

// RectAt creates a rectangle of the given size centered on c.
func RectAt(c Vec2, w, h float64) Rect {
	return Rect{Center: c, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.Center.X - r.W/2 }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.Center.X + r.W/2 }

// Bottom returns the y-coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Center.Y - r.H/2 }

// Top returns the y-coordinate of the upper edge.
func (r Rect) Top() float64 { return r.Center.Y + r.H/2 }

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Left() >= other.Right() || other.Left() >= r.Right() {
		return false
	}
	if r.Bottom() >= other.Top() || other.Bottom() >= r.Top() {
		return false
	}
	return true
}

// Contains returns true if p lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Bottom() && p.Y < r.Top()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
