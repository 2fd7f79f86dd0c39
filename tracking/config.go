package tracking

import (
	"time"

	"github.com/lixenwraith/tuio-hockey/constant"
)

// Config holds tracker client configuration
type Config struct {
	// Host is the local address the TUIO client binds to
	Host string
	Port int

	// PollTimeout bounds a single Update read
	PollTimeout time.Duration

	// ReadBufferSize is the OS receive buffer requested for the socket
	ReadBufferSize int

	// Bind retry
	BindAttempts int
	BindBackoff  time.Duration
}

// DefaultConfig returns defaults for a local TUIO tracker on the standard port
func DefaultConfig() *Config {
	return &Config{
		Host:           "0.0.0.0",
		Port:           3333,
		PollTimeout:    constant.TrackingPollTimeout,
		ReadBufferSize: 64 * 1024,
		BindAttempts:   constant.TrackingBindAttempts,
		BindBackoff:    constant.TrackingBindBackoff,
	}
}
