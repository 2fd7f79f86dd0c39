package render

import (
	"strconv"

	"github.com/lixenwraith/tuio-hockey/constant"
	"github.com/lixenwraith/tuio-hockey/physics"
	"github.com/lixenwraith/tuio-hockey/vmath"
)

// Scene is the read-only view of game state a frame draws
type Scene struct {
	Field  vmath.Size
	Ball   physics.Ball
	P1, P2 physics.Paddle
	Score1 int
	Score2 int
}

// Renderer draws scenes onto a Surface
type Renderer struct {
	surface Surface
	font    Font
}

// NewRenderer creates a renderer for the given surface
func NewRenderer(s Surface) *Renderer {
	return &Renderer{surface: s, font: ScoreFont}
}

// Draw clears the back buffer and draws paddles, ball and scores.
// Coordinates are field pixels; the surface clips whatever falls outside.
func (r *Renderer) Draw(sc Scene) {
	s := r.surface
	s.Fill(Background)

	s.Circle(sc.P1.Pos, constant.PaddleSize, Player1Color)
	s.Circle(sc.P2.Pos, constant.PaddleSize, Player2Color)
	s.Circle(sc.Ball.Pos, constant.BallSize, BallColor)

	s.Text(strconv.Itoa(sc.Score1), r.font, Player1Color, ScoreAnchor(constant.Player1ID, sc.Field))
	s.Text(strconv.Itoa(sc.Score2), r.font, Player2Color, ScoreAnchor(constant.Player2ID, sc.Field))
}

// Present flips the back buffer
func (r *Renderer) Present() {
	r.surface.Present()
}

// ScoreAnchor returns the top-left of a player's score label
func ScoreAnchor(player int, field vmath.Size) vmath.Point {
	if player == constant.Player1ID {
		return vmath.Point{X: field.W - constant.ScoreRightInset, Y: constant.ScoreMargin}
	}
	return vmath.Point{X: constant.ScoreMargin, Y: constant.ScoreMargin}
}
