package physics

import (
	"github.com/lixenwraith/tuio-hockey/vmath"
)

// Estimate derives motion from two consecutive pixel samples taken dt milliseconds apart.
// dir is the unit vector from newPos toward oldPos, speed is distance/dt.
// Single-frame difference, unfiltered; callers must tolerate jitter.
// dt <= 0 or no displacement yields a zero vector and zero speed.
func Estimate(oldPos, newPos vmath.Point, dt float64) (dir vmath.Vec2, speed float64) {
	if dt <= 0 || oldPos == newPos {
		return vmath.Vec2{}, 0
	}

	delta := oldPos.Sub(newPos)
	dist := delta.Len()
	return delta.Scale(1 / dist), dist / dt
}
