// Package core provides fundamental types and utilities for the trainer.
// It contains no external dependencies (especially no Bubble Tea) so the
// division logic and its geometry stay pure and testable.
package core

import "math"

// Rect represents an axis-aligned area on the character grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = ClampF(t, 0, 1)
	return a + (b-a)*t
}

// EaseInOut is a quadratic ease-in-out curve over [0, 1].
func EaseInOut(t float64) float64 {
	t = ClampF(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// PercentToCell maps a percentage of an extent (0-100) to a cell index.
// The result is clamped to [0, extent-1]; an empty extent maps to 0.
func PercentToCell(pct float64, extent int) int {
	if extent <= 0 {
		return 0
	}
	cell := int(math.Floor(pct / 100 * float64(extent)))
	return Clamp(cell, 0, extent-1)
}
