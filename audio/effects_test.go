package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tuio-hockey/constant"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()

	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

// TestOscillatorLength verifies an oscillator stops after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: sample out of range: %f", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

// TestDecayFadesOut verifies the release ends near silence
func TestDecayFadesOut(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := NewDecay(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(10*time.Millisecond))
	n, _ := d.Stream(buf)
	if n == 0 {
		t.Fatal("Expected samples from decay")
	}
	if math.Abs(buf[0][0]) != 1.0 {
		t.Errorf("Expected full level at start, got %f", buf[0][0])
	}
	if math.Abs(buf[n-1][0]) > 0.01 {
		t.Errorf("Expected near silence at end, got %f", buf[n-1][0])
	}
}

// TestHitFrequency verifies the pitch mapping is clamped
func TestHitFrequency(t *testing.T) {
	tests := []struct {
		speed float64
		want  float64
	}{
		{0, constant.HitBaseFreq},
		{-5, constant.HitBaseFreq},
		{1, constant.HitBaseFreq + 100},
		{1000, constant.HitMaxFreq},
	}
	for _, tt := range tests {
		if got := HitFrequency(tt.speed); got != tt.want {
			t.Errorf("HitFrequency(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

// TestCueStreamsTerminate verifies every cue is finite and audible
func TestCueStreamsTerminate(t *testing.T) {
	rate := beep.SampleRate(constant.AudioSampleRate)

	cues := map[string]beep.Streamer{
		"hit":    CreateHitSound(rate, 2),
		"bounce": CreateBounceSound(rate),
		"score1": CreateScoreSound(rate, constant.Player1ID),
		"score2": CreateScoreSound(rate, constant.Player2ID),
	}
	for name, s := range cues {
		n, peak := drain(t, s)
		if n == 0 {
			t.Errorf("%s: produced no samples", name)
		}
		if peak == 0 {
			t.Errorf("%s: silent", name)
		}
	}
}
