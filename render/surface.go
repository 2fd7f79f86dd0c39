// Package render draws the game scene onto a pixel-addressed Surface
package render

import (
	"github.com/lixenwraith/tuio-hockey/constant"
	"github.com/lixenwraith/tuio-hockey/vmath"
)

// Font selects a text face; Size is the glyph height in pixels
type Font struct {
	Name string
	Size int
}

// ScoreFont is the face used for score labels
var ScoreFont = Font{Name: "block", Size: constant.ScoreFontSize}

// Surface is a drawable display in pixel coordinates.
// Drawing accumulates into a back buffer that Present makes visible.
type Surface interface {
	Fill(c RGB)
	Circle(center vmath.Point, radius int, c RGB)
	Text(s string, f Font, c RGB, at vmath.Point)
	Present()

	// Size is the current presentation extent
	Size() vmath.Size
	// NativeSize is the full display extent captured at startup
	NativeSize() vmath.Size

	SetFullscreen(on bool)
	Fullscreen() bool
}
