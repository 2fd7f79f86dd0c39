package physics

import (
	"github.com/lixenwraith/tuio-hockey/constant"
	"github.com/lixenwraith/tuio-hockey/vmath"
)

// Outcome reports what Resolve did to the ball in one frame
type Outcome struct {
	// Hit is the id of the paddle that struck the ball, 0 for none
	Hit int
	// Scorer is the player credited with a point, 0 for none
	Scorer int
	// Bounced is set when the ball was reflected off the top or bottom edge
	Bounced bool
}

// Advance moves the ball by its velocity over dt milliseconds.
// Each axis truncates the new position toward zero.
func Advance(b Ball, dt float64) Ball {
	b.Pos = vmath.Point{
		X: int(float64(b.Pos.X) + b.Vel.X*constant.AdvanceScale*dt),
		Y: int(float64(b.Pos.Y) + b.Vel.Y*constant.AdvanceScale*dt),
	}
	return b
}

// Resolve applies paddle strikes, goal exits and wall bounces in that order.
// p1 is tested before p2 and wins when both overlap the ball.
// A goal exit resets the ball before the bounce check runs.
func Resolve(b Ball, p1, p2 Paddle, field vmath.Size) (Ball, Outcome) {
	var out Outcome

	if Overlap(p1.Pos, constant.PaddleSize, b.Pos, constant.BallSize) {
		b.Vel = Transfer(b, p1)
		out.Hit = p1.ID
	} else if Overlap(p2.Pos, constant.PaddleSize, b.Pos, constant.BallSize) {
		b.Vel = Transfer(b, p2)
		out.Hit = p2.ID
	}

	// Exit on the left credits player 1, exit on the right credits player 2
	if b.Pos.X < 0 {
		out.Scorer = constant.Player1ID
		return NewBall(field), out
	} else if b.Pos.X > field.W {
		out.Scorer = constant.Player2ID
		return NewBall(field), out
	}

	if b.Pos.Y < 0 || b.Pos.Y > field.H {
		b.Vel = b.Vel.ReflectAxisY(constant.BounceDamping)
		out.Bounced = true
	}

	return b, out
}
