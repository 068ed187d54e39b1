// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec is an integer 2D vector used both for grid positions and for
// translation deltas. X grows rightward, Y grows downward.
type Vec struct {
	X, Y int
}

// Add returns the vector sum v + d.
func (v Vec) Add(d Vec) Vec {
	return Vec{X: v.X + d.X, Y: v.Y + d.Y}
}

// Sub returns the vector difference v - d.
func (v Vec) Sub(d Vec) Vec {
	return Vec{X: v.X - d.X, Y: v.Y - d.Y}
}

// Canonical movement deltas.
var (
	VecDown  = Vec{X: 0, Y: 1}
	VecUp    = Vec{X: 0, Y: -1}
	VecLeft  = Vec{X: -1, Y: 0}
	VecRight = Vec{X: 1, Y: 0}
)

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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
