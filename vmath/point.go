package vmath

// Point is an integer pixel coordinate
type Point struct {
	X, Y int
}

// Size is an integer pixel extent
type Size struct {
	W, H int
}

// Center returns the integer midpoint of the extent
func (s Size) Center() Point {
	return Point{X: s.W / 2, Y: s.H / 2}
}

// Sub returns p - o as a float vector
func (p Point) Sub(o Point) Vec2 {
	return Vec2{X: float64(p.X - o.X), Y: float64(p.Y - o.Y)}
}

// DistSq returns squared distance in integer space
func DistSq(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// FromNormalized maps a [0,1] coordinate pair onto the extent, truncating toward zero
func FromNormalized(x, y float64, s Size) Point {
	return Point{X: int(float64(s.W) * x), Y: int(float64(s.H) * y)}
}
