package engine

import "time"

// Clock supplies wall time to the frame loop
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock measures the elapsed time between consecutive frames
type FrameClock struct {
	clock Clock
	last  time.Time
}

// NewFrameClock creates a frame clock; the first Tick reports zero
func NewFrameClock(clock Clock) *FrameClock {
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &FrameClock{clock: clock}
}

// Tick returns milliseconds since the previous Tick
func (fc *FrameClock) Tick() float64 {
	now := fc.clock.Now()
	if fc.last.IsZero() {
		fc.last = now
		return 0
	}
	dt := now.Sub(fc.last)
	fc.last = now
	return float64(dt) / float64(time.Millisecond)
}
