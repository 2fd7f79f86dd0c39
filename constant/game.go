package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// StatsLogInterval is the number of frames between frame-time summaries in the debug log
	StatsLogInterval = 600

	// StatsWindow is the number of recent frame times kept for statistics
	StatsWindow = 600
)

// Players
const (
	// Player1ID is the marker id that drives the first paddle
	Player1ID = 1

	// Player2ID is the marker id that drives the second paddle
	Player2ID = 2
)

// Tracking Defaults
const (
	// TrackingUpdatesPerFrame is the default number of tracker polls per rendered frame
	TrackingUpdatesPerFrame = 1

	// TrackingPollTimeout bounds a single UDP read so a silent tracker cannot stall a frame
	TrackingPollTimeout = 2 * time.Millisecond

	// TrackingBindAttempts is the number of bind attempts before the tracker is declared unavailable
	TrackingBindAttempts = 3

	// TrackingBindBackoff is the initial delay between bind attempts, doubled after each failure
	TrackingBindBackoff = 100 * time.Millisecond
)
