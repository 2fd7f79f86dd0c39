package constant

// Body Sizes
// Both values act as the drawn radius and the collision radius
const (
	// BallSize is the ball radius in pixels
	BallSize = 20

	// PaddleSize is the paddle radius in pixels
	PaddleSize = 70
)

// Motion
const (
	// AdvanceScale ties velocity units to pixels per millisecond
	AdvanceScale = 0.1

	// BounceDamping scales vertical speed on a top/bottom wall bounce
	BounceDamping = 0.8
)
