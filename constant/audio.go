package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Shapes
const (
	// HitToneDuration is the length of the paddle hit ping
	HitToneDuration = 60 * time.Millisecond

	// BounceToneDuration is the length of the wall bounce tick
	BounceToneDuration = 40 * time.Millisecond

	// ScoreToneDuration is the length of each note in the score jingle
	ScoreToneDuration = 120 * time.Millisecond

	// HitBaseFreq is the hit ping pitch at zero transferred speed
	HitBaseFreq = 660.0

	// HitMaxFreq caps the hit ping pitch for fast strikes
	HitMaxFreq = 1320.0

	// BounceFreq is the wall tick pitch
	BounceFreq = 220.0

	// MinSoundGap suppresses cue floods while the ball sits inside a paddle
	MinSoundGap = 50 * time.Millisecond
)
