package physics

import (
	"github.com/lixenwraith/tuio-hockey/vmath"
)

// Overlap reports whether two circles intersect; touching counts as overlapping
func Overlap(a vmath.Point, ra int, b vmath.Point, rb int) bool {
	r := ra + rb
	return vmath.DistSq(a, b) <= r*r
}

// Transfer returns the ball velocity after a strike by the paddle.
// Magnitude is the ball's speed plus the paddle's estimated speed; direction
// runs from the paddle center through the ball center. The ball's incoming
// direction plays no part. Coincident centers give a zero velocity.
func Transfer(ball Ball, paddle Paddle) vmath.Vec2 {
	speed := ball.Vel.Len() + paddle.Speed

	// Estimator convention points from ball back toward paddle; reverse it
	toward := paddle.Pos.Sub(ball.Pos).Normalize()
	if toward.IsZero() {
		return vmath.Vec2{}
	}
	return toward.Neg().Scale(speed)
}
