package bench

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Collector records per-sequence scan latencies in a thread-safe manner.
type Collector struct {
	mu    sync.Mutex
	hist  *hdrhistogram.Histogram
	count int64
	sum   time.Duration
	min   time.Duration
	max   time.Duration
}

// Stats are the aggregated latencies of one pass.
type Stats struct {
	Count      int64
	Min        time.Duration
	Max        time.Duration
	Mean       time.Duration
	P50        time.Duration
	P90        time.Duration
	P99        time.Duration
	Elapsed    time.Duration
	SeqsPerSec float64
}

// NewCollector tracks latencies between lowest and highest microseconds
// at the given number of significant figures (Config carries the bounds;
// the defaults are 1µs to 60s at 3 figures).
func NewCollector(lowest, highest int64, sigfigs int) *Collector {
	return &Collector{hist: hdrhistogram.New(lowest, highest, sigfigs)}
}

// Record adds one scan latency.
func (c *Collector) Record(latency time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	us := latency.Microseconds()
	if us < c.hist.LowestTrackableValue() {
		us = c.hist.LowestTrackableValue()
	}
	if us > c.hist.HighestTrackableValue() {
		us = c.hist.HighestTrackableValue()
	}
	_ = c.hist.RecordValue(us)

	c.count++
	c.sum += latency
	if c.min == 0 || latency < c.min {
		c.min = latency
	}
	if latency > c.max {
		c.max = latency
	}
}

// Stats computes the aggregated statistics for a pass that took elapsed.
func (c *Collector) Stats(elapsed time.Duration) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Count:   c.count,
		Min:     c.min,
		Max:     c.max,
		P50:     time.Duration(c.hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:     time.Duration(c.hist.ValueAtQuantile(90)) * time.Microsecond,
		P99:     time.Duration(c.hist.ValueAtQuantile(99)) * time.Microsecond,
		Elapsed: elapsed,
	}
	if c.count > 0 {
		s.Mean = c.sum / time.Duration(c.count)
	}
	if elapsed > 0 {
		s.SeqsPerSec = float64(c.count) / elapsed.Seconds()
	}
	return s
}
