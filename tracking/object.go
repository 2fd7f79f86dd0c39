// Package tracking adapts tangible-marker trackers to a poll-and-enumerate contract.
// The live client speaks TUIO 1.1 over OSC/UDP; a pcap replay and a scripted
// sequence implement the same interface for offline runs and tests.
package tracking

import (
	"context"
	"errors"
	"time"
)

// ErrTrackingUnavailable is returned when the tracker cannot be bound or polled
var ErrTrackingUnavailable = errors.New("tracking unavailable")

// Profile identifies the TUIO profile an object was reported on
type Profile uint8

const (
	ProfileObject Profile = iota // /tuio/2Dobj, fiducial markers
	ProfileCursor                // /tuio/2Dcur, touch points
)

func (p Profile) String() string {
	switch p {
	case ProfileObject:
		return "2Dobj"
	case ProfileCursor:
		return "2Dcur"
	default:
		return "unknown"
	}
}

// Object is a read-only view of one tracked marker.
// ID is the fiducial class id for objects, stable for a physical marker.
// Cursors use their session id, which is fresh per touch, so the two
// profiles do not share an id space.
type Object struct {
	ID        int
	SessionID int32
	Profile   Profile
	// X, Y are normalized to [0,1]
	X, Y  float64
	Angle float64
}

// Tracker is polled once or more per rendered frame
type Tracker interface {
	// Update performs one protocol poll
	Update(ctx context.Context) error
	// Objects returns the currently alive objects
	Objects() []Object
}

// Clock abstracts wall time for replay pacing
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
