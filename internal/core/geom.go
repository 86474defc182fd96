// Package core provides the screen buffer, colors, geometry and input actions
// shared by the presentation adapters. It has no external dependencies so the
// rendering helpers stay testable without a terminal.
package core

// Rect is an axis-aligned area on the screen.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredRect returns a w×h rectangle centered inside outer.
// The result is clamped so its top-left corner never leaves outer.
func CenteredRect(outer Rect, w, h int) Rect {
	cx, cy := outer.Center()
	x := Clamp(cx-w/2, outer.X, max(outer.X, outer.Right()-w))
	y := Clamp(cy-h/2, outer.Y, max(outer.Y, outer.Bottom()-h))
	return NewRect(x, y, w, h)
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
