package engine

import (
	"github.com/lixenwraith/tuio-hockey/constant"
	"github.com/lixenwraith/tuio-hockey/physics"
	"github.com/lixenwraith/tuio-hockey/render"
	"github.com/lixenwraith/tuio-hockey/tracking"
	"github.com/lixenwraith/tuio-hockey/vmath"
)

// Score counts points per player; values only ever increase
type Score struct {
	Player1 int
	Player2 int
}

// GameState is the whole simulation, owned by the frame loop goroutine
type GameState struct {
	Field  vmath.Size
	Score  Score
	Ball   physics.Ball
	P1, P2 physics.Paddle

	// Profile selects which TUIO profile drives the paddles; fiducials by default.
	// Cursor ids and fiducial class ids are separate id spaces and never mix.
	Profile tracking.Profile
}

// NewGameState places the ball at rest in the center and parks both paddles on the left edge
func NewGameState(field vmath.Size) *GameState {
	return &GameState{
		Field: field,
		Ball:  physics.NewBall(field),
		P1:    physics.Paddle{ID: constant.Player1ID, Pos: vmath.Point{X: 0, Y: 0}},
		P2:    physics.Paddle{ID: constant.Player2ID, Pos: vmath.Point{X: 0, Y: field.H / 2}},
	}
}

// ApplyTracking moves each paddle whose marker is present and re-estimates its velocity.
// Objects from other profiles are ignored.
// Paddles without a marker keep position, direction and speed.
// If a marker id repeats, the last occurrence wins.
func (g *GameState) ApplyTracking(objects []tracking.Object, dt float64) {
	var (
		p1, p2       vmath.Point
		seen1, seen2 bool
	)
	for _, obj := range objects {
		if obj.Profile != g.Profile {
			continue
		}
		pos := vmath.FromNormalized(obj.X, obj.Y, g.Field)
		switch obj.ID {
		case g.P1.ID:
			p1, seen1 = pos, true
		case g.P2.ID:
			p2, seen2 = pos, true
		}
	}
	if seen1 {
		g.P1.Track(p1, dt)
	}
	if seen2 {
		g.P2.Track(p2, dt)
	}
}

// Advance moves the ball over dt milliseconds
func (g *GameState) Advance(dt float64) {
	g.Ball = physics.Advance(g.Ball, dt)
}

// Resolve runs collision, scoring and bounce, crediting any point scored
func (g *GameState) Resolve() physics.Outcome {
	var out physics.Outcome
	g.Ball, out = physics.Resolve(g.Ball, g.P1, g.P2, g.Field)

	switch out.Scorer {
	case constant.Player1ID:
		g.Score.Player1++
	case constant.Player2ID:
		g.Score.Player2++
	}
	return out
}

// ResetBall recenters the ball at rest; scores are untouched
func (g *GameState) ResetBall() {
	g.Ball = physics.NewBall(g.Field)
}

// Scene snapshots the state for drawing
func (g *GameState) Scene() render.Scene {
	return render.Scene{
		Field:  g.Field,
		Ball:   g.Ball,
		P1:     g.P1,
		P2:     g.P2,
		Score1: g.Score.Player1,
		Score2: g.Score.Player2,
	}
}
