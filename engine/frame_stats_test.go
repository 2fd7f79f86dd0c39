package engine

import (
	"math"
	"sync"
	"testing"
	"time"
)

func TestFrameStatsSummary(t *testing.T) {
	fs := NewFrameStats(4)

	if got := fs.Summary(); got.Count != 0 {
		t.Fatalf("Expected empty summary, got %+v", got)
	}

	fs.Add(16)
	if got := fs.Summary(); got.Count != 1 || got.Mean != 16 || got.StdDev != 0 {
		t.Errorf("Single sample summary wrong: %+v", got)
	}

	fs.Add(16)
	fs.Add(16)
	fs.Add(32)
	got := fs.Summary()
	if got.Count != 4 || got.Mean != 20 || got.Max != 32 {
		t.Errorf("Summary = %+v, want count 4 mean 20 max 32", got)
	}
	// Sample standard deviation of {16,16,16,32}
	if math.Abs(got.StdDev-8) > 1e-9 {
		t.Errorf("StdDev = %v, want 8", got.StdDev)
	}
}

func TestFrameStatsWindowSlides(t *testing.T) {
	fs := NewFrameStats(3)
	for _, ms := range []float64{100, 10, 10, 10} {
		fs.Add(ms)
	}

	got := fs.Summary()
	if got.Count != 3 || got.Max != 10 || got.Mean != 10 {
		t.Errorf("Expected the 100ms outlier to leave the window, got %+v", got)
	}
	if fs.Total() != 4 {
		t.Errorf("Total = %d, want 4", fs.Total())
	}
}

func TestFrameClockTick(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	fc := NewFrameClock(mock)

	if dt := fc.Tick(); dt != 0 {
		t.Errorf("First tick = %v, want 0", dt)
	}

	mock.Advance(16 * time.Millisecond)
	if dt := fc.Tick(); dt != 16 {
		t.Errorf("Tick = %v, want 16", dt)
	}

	mock.Advance(1500 * time.Microsecond)
	if dt := fc.Tick(); dt != 1.5 {
		t.Errorf("Tick = %v, want 1.5", dt)
	}
}

func TestMockTimeProviderStep(t *testing.T) {
	start := time.Unix(0, 0)
	mock := NewMockTimeProvider(start)
	mock.SetStep(10 * time.Millisecond)

	if got := mock.Now(); !got.Equal(start) {
		t.Errorf("First Now = %v, want %v", got, start)
	}
	if got := mock.Now(); got.Sub(start) != 10*time.Millisecond {
		t.Errorf("Second Now advanced %v, want 10ms", got.Sub(start))
	}
}

func TestMockTimeProviderConcurrentNow(t *testing.T) {
	start := time.Unix(0, 0)
	mock := NewMockTimeProvider(start)
	mock.SetStep(time.Millisecond)

	const callers, calls = 8, 50
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range calls {
				mock.Now()
			}
		}()
	}
	wg.Wait()

	// Every Now advanced time exactly once
	if got := mock.Now().Sub(start); got != callers*calls*time.Millisecond {
		t.Errorf("Elapsed = %v, want %v", got, callers*calls*time.Millisecond)
	}
}
