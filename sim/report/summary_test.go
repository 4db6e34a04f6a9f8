package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mess-sim/mess-sim/sim"
)

// serialResults runs a fully deterministic pipeline (single servers,
// one-minute stages, no jitter): table k completes at k+2 minutes.
func serialResults(t *testing.T, tables int) sim.ResultSet {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.Tables = tables
	for i := range cfg.Stages {
		cfg.Stages[i].Capacity = 1
		cfg.Stages[i].MeanMinutes = 1
		cfg.Stages[i].JitterMinutes = 0
	}
	s, err := sim.NewSimulator(cfg)
	require.NoError(t, err)
	return s.Run()
}

func TestSummarize_TargetMet(t *testing.T) {
	// offsets 3, 4, 5 → realized 5
	rs := serialResults(t, 3)

	sum := Summarize(rs, 25)

	assert.Equal(t, 3, sum.TableCount)
	assert.InDelta(t, 5, sum.RealizedMinutes, 1e-9)
	assert.InDelta(t, 20, sum.SlackMinutes, 1e-9)
	assert.True(t, sum.TargetMet)
}

func TestSummarize_TargetExceeded(t *testing.T) {
	rs := serialResults(t, 3)

	sum := Summarize(rs, 4)

	assert.False(t, sum.TargetMet)
	assert.InDelta(t, -1, sum.SlackMinutes, 1e-9)
}

func TestSummarize_TargetExactlyRealizedCountsAsMet(t *testing.T) {
	rs := serialResults(t, 3)

	sum := Summarize(rs, 5)

	assert.True(t, sum.TargetMet)
	assert.InDelta(t, 0, sum.SlackMinutes, 1e-9)
}

func TestSummarize_HistogramBucketsCompletions(t *testing.T) {
	// offsets 3, 4 fall in [0,5); offset 5 opens the [5,10) bucket
	rs := serialResults(t, 3)

	sum := Summarize(rs, 25)

	require.Len(t, sum.Histogram, 2)
	assert.Equal(t, Bucket{StartMinute: 0, Count: 2}, sum.Histogram[0])
	assert.Equal(t, Bucket{StartMinute: 5, Count: 1}, sum.Histogram[1])
}

func TestSummarize_HistogramCoversQuietWindows(t *testing.T) {
	// 14 tables: offsets 3..16, so the middle windows stay populated and the
	// bucket list is contiguous from zero
	rs := serialResults(t, 14)

	sum := Summarize(rs, 60)

	require.Len(t, sum.Histogram, 4)
	total := 0
	for i, b := range sum.Histogram {
		assert.InDelta(t, float64(i)*BucketMinutes, b.StartMinute, 1e-9)
		total += b.Count
	}
	assert.Equal(t, 14, total)
}

func TestSummarize_CurveIsCumulative(t *testing.T) {
	rs := serialResults(t, 3)

	sum := Summarize(rs, 25)

	require.Len(t, sum.Curve, 3)
	for i, p := range sum.Curve {
		assert.Equal(t, i+1, p.Completed)
		assert.InDelta(t, float64(i+3), p.OffsetMinutes, 1e-9)
	}
}

func TestSummarize_EmptyResultSet(t *testing.T) {
	sum := Summarize(sim.ResultSet{}, 10)

	assert.Zero(t, sum.TableCount)
	assert.Zero(t, sum.RealizedMinutes)
	assert.True(t, sum.TargetMet)
	assert.Empty(t, sum.Histogram)
	assert.Empty(t, sum.Curve)
}
