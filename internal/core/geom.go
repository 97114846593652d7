// Package core provides fundamental types and utilities for the arena shooter.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to
// keep simulation logic pure and testable.
package core

// Rect represents an integer rectangle, used for sprite sheet source
// rectangles and screen cell regions.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a position or size in arena-local pixel coordinates.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box in arena coordinates.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// BoxAt builds a box from a position and a size.
func BoxAt(pos, size Vec2) Box {
	return Box{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Collides reports whether b overlaps other.
//
// The test is asymmetric: b's right and bottom edges are
// exclusive (touching other's left/top edge is not a hit), while other's
// right and bottom edges are inclusive. So b.Collides(o) and o.Collides(b)
// can differ when the boxes only touch.
func (b Box) Collides(other Box) bool {
	return !(b.Right() <= other.X ||
		b.X > other.Right() ||
		b.Bottom() <= other.Y ||
		b.Y > other.Bottom())
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
