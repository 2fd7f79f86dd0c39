package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/tuio-hockey/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that stops after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out linearly over its length
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay shapes s with an instant attack and a linear release to silence
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if d.position >= d.total {
			return i, i > 0
		}
		vol := 1.0 - float64(d.position)/float64(d.total)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s in a linear gain; zero or less is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// HitFrequency maps the transferred ball speed onto the ping pitch
func HitFrequency(speed float64) float64 {
	if speed < 0 {
		speed = 0
	}
	freq := constant.HitBaseFreq + speed*100
	return math.Min(freq, constant.HitMaxFreq)
}

// CreateHitSound generates a ping whose pitch rises with strike speed
func CreateHitSound(rate beep.SampleRate, speed float64) beep.Streamer {
	osc := NewOscillator(HitFrequency(speed), constant.HitToneDuration, WaveSine, rate)
	return newVolume(NewDecay(osc, constant.HitToneDuration, rate), 0.5)
}

// CreateBounceSound generates a short low tick for a wall bounce
func CreateBounceSound(rate beep.SampleRate) beep.Streamer {
	tone := NewOscillator(constant.BounceFreq, constant.BounceToneDuration, WaveSquare, rate)
	click := NewOscillator(0, constant.BounceToneDuration/4, WaveNoise, rate)
	return beep.Seq(
		newVolume(NewDecay(click, constant.BounceToneDuration/4, rate), 0.15),
		newVolume(NewDecay(tone, constant.BounceToneDuration, rate), 0.25),
	)
}

// CreateScoreSound generates a two-note jingle; player 2 gets the falling variant
func CreateScoreSound(rate beep.SampleRate, player int) beep.Streamer {
	first, second := 523.25, 783.99
	if player == constant.Player2ID {
		first, second = second, first
	}

	n1 := NewDecay(NewOscillator(first, constant.ScoreToneDuration, WaveSquare, rate), constant.ScoreToneDuration, rate)
	n2 := NewDecay(NewOscillator(second, constant.ScoreToneDuration, WaveSquare, rate), constant.ScoreToneDuration, rate)
	return newVolume(beep.Seq(n1, n2), 0.3)
}
