package report

import (
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"gonum.org/v1/gonum/stat"
)

// Time invokes f and returns its wall-clock duration.
func Time(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// Histogram bounds: repeated demonstration runs last between nanoseconds and
// minutes.
const (
	minRecordable = int64(1)
	maxRecordable = int64(10 * time.Minute)
)

// Timings accumulates the durations of repeated runs of the same
// computation and summarizes them.
type Timings struct {
	hist    *hdrhistogram.Histogram
	total   time.Duration
	seconds []float64
}

// NewTimings returns an empty Timings.
func NewTimings() *Timings {
	return &Timings{hist: hdrhistogram.New(minRecordable, maxRecordable, 3)}
}

// Add records the duration of one run.
func (t *Timings) Add(d time.Duration) {
	v := int64(d)
	if v < minRecordable {
		v = minRecordable
	} else if v > maxRecordable {
		v = maxRecordable
	}
	// The value is clamped into the histogram bounds above.
	_ = t.hist.RecordValue(v)
	t.total += d
	t.seconds = append(t.seconds, d.Seconds())
}

// Count returns the number of recorded runs.
func (t *Timings) Count() int {
	return len(t.seconds)
}

// Total returns the summed duration of all recorded runs.
func (t *Timings) Total() time.Duration {
	return t.total
}

// TotalSeconds returns the summed duration in seconds.
func (t *Timings) TotalSeconds() float64 {
	return t.total.Seconds()
}

// MeanSeconds returns the mean run duration in seconds, or 0 when nothing
// has been recorded.
func (t *Timings) MeanSeconds() float64 {
	if len(t.seconds) == 0 {
		return 0
	}
	return stat.Mean(t.seconds, nil)
}

// Quantile returns the duration at quantile q, with 0 <= q <= 100, as
// recorded by the histogram.
func (t *Timings) Quantile(q float64) time.Duration {
	return time.Duration(t.hist.ValueAtQuantile(q))
}

// Max returns the longest recorded run duration as recorded by the
// histogram.
func (t *Timings) Max() time.Duration {
	return time.Duration(t.hist.Max())
}
