package render

import (
	"fmt"

	"github.com/lixenwraith/tuio-hockey/constant"
	"github.com/lixenwraith/tuio-hockey/vmath"
)

// Op is one recorded drawing call
type Op struct {
	Kind   string
	At     vmath.Point
	Radius int
	Text   string
	Font   Font
	Color  RGB
}

// Recorder is a headless Surface that records calls, for tests and benchmarks
type Recorder struct {
	Native     vmath.Size
	fullscreen bool

	// Ops holds calls since the last Present; Frames holds every presented frame
	Ops    []Op
	Frames [][]Op
}

// NewRecorder creates a recorder with the given native extent, starting fullscreen
func NewRecorder(native vmath.Size) *Recorder {
	return &Recorder{Native: native, fullscreen: true}
}

func (r *Recorder) Fill(c RGB) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Color: c})
}

func (r *Recorder) Circle(center vmath.Point, radius int, c RGB) {
	r.Ops = append(r.Ops, Op{Kind: "circle", At: center, Radius: radius, Color: c})
}

func (r *Recorder) Text(s string, f Font, c RGB, at vmath.Point) {
	r.Ops = append(r.Ops, Op{Kind: "text", At: at, Text: s, Font: f, Color: c})
}

func (r *Recorder) Present() {
	r.Frames = append(r.Frames, r.Ops)
	r.Ops = nil
}

func (r *Recorder) Size() vmath.Size {
	if r.fullscreen {
		return r.Native
	}
	return vmath.Size{W: min(r.Native.W, constant.WindowedWidth), H: min(r.Native.H, constant.WindowedHeight)}
}

func (r *Recorder) NativeSize() vmath.Size { return r.Native }

func (r *Recorder) SetFullscreen(on bool) { r.fullscreen = on }

func (r *Recorder) Fullscreen() bool { return r.fullscreen }

// LastFrame returns the most recently presented frame
func (r *Recorder) LastFrame() []Op {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}

func (o Op) String() string {
	switch o.Kind {
	case "circle":
		return fmt.Sprintf("circle%v r=%d %v", o.At, o.Radius, o.Color)
	case "text":
		return fmt.Sprintf("text%v %q %v", o.At, o.Text, o.Color)
	default:
		return fmt.Sprintf("%s %v", o.Kind, o.Color)
	}
}
