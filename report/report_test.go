package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlab/parlab/report"
)

func TestRule(t *testing.T) {
	assert.Equal(t, "-----", report.Rule(5, '-'))
	assert.Equal(t, "", report.Rule(0, '='))
}

func TestBannerAndSection(t *testing.T) {
	var b strings.Builder
	report.Banner(&b, 4, "Title")
	assert.Equal(t, "====\nTitle\n====\n", b.String())

	b.Reset()
	report.Section(&b, 4, "Configuration")
	assert.Equal(t, "Configuration\n----\n", b.String())
}

func TestTable(t *testing.T) {
	var b strings.Builder
	tab := report.NewTable(&b, 10, 15, 10)
	tab.Header("TID", "Iteration", "Result")
	tab.Row(0, 3, 30)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "TID       Iteration      Result", strings.TrimRight(lines[0], " "))
	assert.Equal(t, report.Rule(35, '-'), lines[1])
	assert.Equal(t, "0         3              30", strings.TrimRight(lines[2], " "))
}

func TestTableGroupHeader(t *testing.T) {
	var b strings.Builder
	tab := report.NewTable(&b, 12, 12, 12)
	tab.GroupHeader([]int{12, 24}, "", "Total Time (s)")
	line, _, _ := strings.Cut(b.String(), "\n")
	assert.Equal(t, "            Total Time (s)", strings.TrimRight(line, " "))
}

func TestTimings(t *testing.T) {
	ts := report.NewTimings()
	assert.Zero(t, ts.Count())
	assert.Zero(t, ts.MeanSeconds())

	ts.Add(100 * time.Millisecond)
	ts.Add(300 * time.Millisecond)
	assert.Equal(t, 2, ts.Count())
	assert.Equal(t, 400*time.Millisecond, ts.Total())
	assert.InDelta(t, 0.4, ts.TotalSeconds(), 1e-9)
	assert.InDelta(t, 0.2, ts.MeanSeconds(), 1e-9)
	// Histogram values are recorded to three significant figures.
	assert.InDelta(t, float64(300*time.Millisecond), float64(ts.Max()), float64(time.Millisecond))
	assert.GreaterOrEqual(t, ts.Quantile(100), ts.Quantile(50))
}

func TestTimeMeasuresDuration(t *testing.T) {
	d := report.Time(func() { time.Sleep(5 * time.Millisecond) })
	assert.GreaterOrEqual(t, d, 5*time.Millisecond)
}
