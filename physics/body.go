package physics

import (
	"github.com/lixenwraith/tuio-hockey/vmath"
)

// Ball is the puck state, mutated only by the physics step
type Ball struct {
	Pos vmath.Point
	// Vel is in pixels per millisecond before AdvanceScale is applied
	Vel vmath.Vec2
}

// NewBall returns a ball resting at the center of the field
func NewBall(field vmath.Size) Ball {
	return Ball{Pos: field.Center()}
}

// Paddle is a marker-driven striker
type Paddle struct {
	ID  int
	Pos vmath.Point
	// Direction points backward along the last observed travel
	Direction vmath.Vec2
	// Speed is pixels per millisecond over the last frame
	Speed float64
}

// Track moves the paddle to pos and re-estimates its motion over dt milliseconds
func (p *Paddle) Track(pos vmath.Point, dt float64) {
	p.Direction, p.Speed = Estimate(p.Pos, pos, dt)
	p.Pos = pos
}
