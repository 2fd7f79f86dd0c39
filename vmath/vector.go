package vmath

import "math"

// Vec2 is a float vector used for velocities and directions
type Vec2 struct {
	X, Y float64
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the reversed vector
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ReflectAxisY returns velocity reflected off a horizontal wall and scaled by damping
// Use for top/bottom edge collision
func (v Vec2) ReflectAxisY(damping float64) Vec2 {
	return Vec2{X: v.X, Y: -v.Y * damping}
}
