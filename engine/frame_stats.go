package engine

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FrameStats keeps a sliding window of frame times in milliseconds
type FrameStats struct {
	window []float64
	next   int
	full   bool
	total  int
}

// FrameSummary describes the frame times currently in the window
type FrameSummary struct {
	Count  int
	Mean   float64
	StdDev float64
	Max    float64
}

func (s FrameSummary) String() string {
	return fmt.Sprintf("frames=%d mean=%.2fms std=%.2fms max=%.2fms", s.Count, s.Mean, s.StdDev, s.Max)
}

// NewFrameStats creates a window holding the last size samples
func NewFrameStats(size int) *FrameStats {
	if size < 1 {
		size = 1
	}
	return &FrameStats{window: make([]float64, size)}
}

// Add records one frame time
func (fs *FrameStats) Add(ms float64) {
	fs.window[fs.next] = ms
	fs.next++
	if fs.next == len(fs.window) {
		fs.next = 0
		fs.full = true
	}
	fs.total++
}

// Total is the number of samples ever recorded
func (fs *FrameStats) Total() int {
	return fs.total
}

// Summary computes statistics over the samples in the window
func (fs *FrameStats) Summary() FrameSummary {
	samples := fs.window[:fs.next]
	if fs.full {
		samples = fs.window
	}
	if len(samples) == 0 {
		return FrameSummary{}
	}

	sum := FrameSummary{Count: len(samples), Max: floats.Max(samples)}
	if len(samples) == 1 {
		sum.Mean = samples[0]
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(samples, nil)
	return sum
}
