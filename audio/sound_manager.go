package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tuio-hockey/constant"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// Cue identifies a game sound
type Cue int

const (
	CueHit Cue = iota
	CueBounce
	CueScore
)

// SoundManager plays game cues through a shared mixer.
// Every Play method is a no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	now        func() time.Time
	lastPlayed map[Cue]time.Time

	// Played counts cues accepted since creation, including ones issued while uninitialized
	Played map[Cue]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		now:        time.Now,
		lastPlayed: make(map[Cue]time.Time),
		Played:     make(map[Cue]int),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayHit plays the paddle strike ping, pitched by the transferred speed
func (sm *SoundManager) PlayHit(speed float64) {
	sm.play(CueHit, func() beep.Streamer { return CreateHitSound(sampleRate, speed) })
}

// PlayBounce plays the wall tick
func (sm *SoundManager) PlayBounce() {
	sm.play(CueBounce, func() beep.Streamer { return CreateBounceSound(sampleRate) })
}

// PlayScore plays the jingle for the scoring player
func (sm *SoundManager) PlayScore(player int) {
	sm.play(CueScore, func() beep.Streamer { return CreateScoreSound(sampleRate, player) })
}

// play rate-limits a cue and hands it to the mixer
func (sm *SoundManager) play(cue Cue, build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if last, ok := sm.lastPlayed[cue]; ok && now.Sub(last) < constant.MinSoundGap {
		return
	}
	sm.lastPlayed[cue] = now
	sm.Played[cue]++

	if !sm.initialized {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(build())
	speaker.Unlock()
}
