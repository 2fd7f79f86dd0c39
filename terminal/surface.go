// Package terminal backs render.Surface and key input with a tcell screen.
// One cell covers CellWidth x CellHeight pixels.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuio-hockey/constant"
	"github.com/lixenwraith/tuio-hockey/render"
	"github.com/lixenwraith/tuio-hockey/vmath"
)

// Surface draws pixel-space shapes as colored cells
type Surface struct {
	screen     tcell.Screen
	native     vmath.Size
	fullscreen bool
	background tcell.Style
}

// NewSurface wraps an initialized screen, capturing its size as the native resolution
func NewSurface(screen tcell.Screen, fullscreen bool) *Surface {
	cols, rows := screen.Size()
	return &Surface{
		screen:     screen,
		native:     vmath.Size{W: cols * constant.CellWidth, H: rows * constant.CellHeight},
		fullscreen: fullscreen,
		background: tcell.StyleDefault,
	}
}

// Size is the visible extent: the whole terminal when fullscreen, else the clipped window
func (s *Surface) Size() vmath.Size {
	if s.fullscreen {
		return s.native
	}
	return vmath.Size{
		W: min(s.native.W, constant.WindowedWidth),
		H: min(s.native.H, constant.WindowedHeight),
	}
}

// NativeSize is the terminal extent captured at startup
func (s *Surface) NativeSize() vmath.Size {
	return s.native
}

// SetFullscreen switches presentation mode and wipes the old frame
func (s *Surface) SetFullscreen(on bool) {
	if s.fullscreen == on {
		return
	}
	s.fullscreen = on
	s.screen.Clear()
}

func (s *Surface) Fullscreen() bool {
	return s.fullscreen
}

// viewport returns the visible cell extent
func (s *Surface) viewport() (cols, rows int) {
	size := s.Size()
	return size.W / constant.CellWidth, size.H / constant.CellHeight
}

// Fill paints the viewport and blanks everything outside it
func (s *Surface) Fill(c render.RGB) {
	s.screen.Clear()
	s.background = tcell.StyleDefault.Background(color(c))

	cols, rows := s.viewport()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, s.background)
		}
	}
}

// Circle fills every visible cell whose center lies within radius pixels of center
func (s *Surface) Circle(center vmath.Point, radius int, c render.RGB) {
	style := tcell.StyleDefault.Background(color(c))
	cols, rows := s.viewport()

	x0 := max(0, (center.X-radius)/constant.CellWidth)
	x1 := min(cols-1, (center.X+radius)/constant.CellWidth)
	y0 := max(0, (center.Y-radius)/constant.CellHeight)
	y1 := min(rows-1, (center.Y+radius)/constant.CellHeight)

	rr := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vmath.DistSq(cellCenter(x, y), center) <= rr {
				s.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// Text writes s at the cell containing at.
// Fonts at least two cells tall draw digits as block glyphs.
func (s *Surface) Text(str string, f render.Font, c render.RGB, at vmath.Point) {
	cx, cy := at.X/constant.CellWidth, at.Y/constant.CellHeight

	if f.Size < 2*constant.CellHeight {
		style := s.background.Foreground(color(c))
		for i, r := range []rune(str) {
			s.setVisible(cx+i, cy, r, style)
		}
		return
	}

	block := tcell.StyleDefault.Background(color(c))
	plain := s.background.Foreground(color(c))
	for _, r := range str {
		if _, ok := render.Glyph(r); !ok {
			s.setVisible(cx, cy, r, plain)
			cx += 2
			continue
		}
		for row := 0; row < render.GlyphHeight; row++ {
			for col := 0; col < render.GlyphWidth; col++ {
				if render.GlyphLit(r, col, row) {
					s.setVisible(cx+col, cy+row, ' ', block)
				}
			}
		}
		cx += render.GlyphWidth + 1
	}
}

// Present flushes the back buffer to the terminal
func (s *Surface) Present() {
	s.screen.Show()
}

func (s *Surface) setVisible(x, y int, r rune, style tcell.Style) {
	cols, rows := s.viewport()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// cellCenter is the pixel at the middle of cell (x,y)
func cellCenter(x, y int) vmath.Point {
	return vmath.Point{
		X: x*constant.CellWidth + constant.CellWidth/2,
		Y: y*constant.CellHeight + constant.CellHeight/2,
	}
}

func color(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
