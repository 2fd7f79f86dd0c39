package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/tuio-hockey/constant"
	"github.com/lixenwraith/tuio-hockey/input"
	"github.com/lixenwraith/tuio-hockey/render"
	"github.com/lixenwraith/tuio-hockey/tracking"
)

// Sounds receives gameplay cues
type Sounds interface {
	PlayHit(speed float64)
	PlayBounce()
	PlayScore(player int)
}

// EventSource yields the key events queued since the previous frame
type EventSource interface {
	Drain() []input.Event
}

// LoopDeps wires the frame loop to its collaborators
type LoopDeps struct {
	State    *GameState
	Tracker  tracking.Tracker
	Surface  render.Surface
	Events   EventSource
	Input    *input.Handler
	Sounds   Sounds
	Clock    Clock
	Interval time.Duration
	// Updates is the number of tracker polls per frame, at least 1
	Updates int
}

// Loop runs the per-frame pipeline on a single goroutine
type Loop struct {
	state    *GameState
	tracker  tracking.Tracker
	surface  render.Surface
	renderer *render.Renderer
	events   EventSource
	input    *input.Handler
	sounds   Sounds
	clock    *FrameClock
	stats    *FrameStats
	interval time.Duration
	updates  int
}

// NewLoop creates a loop; nil Input, Sounds and Clock get working defaults
func NewLoop(deps LoopDeps) *Loop {
	l := &Loop{
		state:    deps.State,
		tracker:  deps.Tracker,
		surface:  deps.Surface,
		renderer: render.NewRenderer(deps.Surface),
		events:   deps.Events,
		input:    deps.Input,
		sounds:   deps.Sounds,
		clock:    NewFrameClock(deps.Clock),
		stats:    NewFrameStats(constant.StatsWindow),
		interval: deps.Interval,
		updates:  deps.Updates,
	}
	if l.input == nil {
		l.input = input.NewHandler(nil)
	}
	if l.sounds == nil {
		l.sounds = silent{}
	}
	if l.interval <= 0 {
		l.interval = constant.FrameUpdateInterval
	}
	if l.updates < 1 {
		l.updates = constant.TrackingUpdatesPerFrame
	}
	return l
}

// Frame runs one iteration: poll, track, advance, draw, present, resolve, input.
// It reports whether a quit was requested.
func (l *Loop) Frame(ctx context.Context) (bool, error) {
	dt := l.clock.Tick()
	l.stats.Add(dt)

	for i := 0; i < l.updates; i++ {
		if err := l.tracker.Update(ctx); err != nil {
			return false, fmt.Errorf("tracker update: %w", err)
		}
	}
	l.state.ApplyTracking(l.tracker.Objects(), dt)
	l.state.Advance(dt)

	l.renderer.Draw(l.state.Scene())
	l.renderer.Present()

	out := l.state.Resolve()
	if out.Hit != 0 {
		l.sounds.PlayHit(l.state.Ball.Vel.Len())
	}
	if out.Scorer != 0 {
		l.sounds.PlayScore(out.Scorer)
		log.Printf("Player %d scores: %d - %d", out.Scorer, l.state.Score.Player1, l.state.Score.Player2)
	}
	if out.Bounced {
		l.sounds.PlayBounce()
	}

	var events []input.Event
	if l.events != nil {
		events = l.events.Drain()
	}
	actions := l.input.Collapse(events)
	if actions.ToggleFullscreen {
		l.surface.SetFullscreen(!l.surface.Fullscreen())
		log.Printf("Display mode: fullscreen=%v size=%v", l.surface.Fullscreen(), l.surface.Size())
	}
	if actions.ResetBall {
		l.state.ResetBall()
	}

	if l.stats.Total()%constant.StatsLogInterval == 0 {
		log.Printf("Frame stats: %v", l.stats.Summary())
	}
	return actions.Quit, nil
}

// Run drives Frame on a ticker until quit, a frame error or cancellation
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			quit, err := l.Frame(ctx)
			if err != nil {
				return err
			}
			if quit {
				log.Printf("Quit requested, final score %d - %d", l.state.Score.Player1, l.state.Score.Player2)
				return nil
			}
		}
	}
}

// Stats returns the frame-time window
func (l *Loop) Stats() *FrameStats {
	return l.stats
}

type silent struct{}

func (silent) PlayHit(float64) {}
func (silent) PlayBounce()     {}
func (silent) PlayScore(int)   {}
