package analysis

import (
	"testing"

	"solvestats/domain/solve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalCurve(t *testing.T) {
	agg := solve.AggregateStats{
		TotalCount: 100, ValidCount: 100,
		Mean: 15.2, Stdev: 2.0, Fastest: 10.5,
	}
	hist := BuildHistogram(agg, nil)

	curve := NormalCurve(agg, hist)
	require.Len(t, curve, len(hist.Labels))

	// Overflow and DNF buckets carry no curve points.
	assert.Zero(t, curve[len(curve)-1])
	assert.Zero(t, curve[len(curve)-2])

	// The curve peaks at the bucket whose center is nearest the mean.
	peak := 0
	for i := 1; i < hist.PerSecondBuckets(); i++ {
		if curve[i] > curve[peak] {
			peak = i
		}
	}
	assert.Equal(t, 15-hist.Smallest, peak) // bucket "15" holds 15.0..16.0, center 15.5

	// Roughly pdf at the mean times N.
	assert.Greater(t, curve[peak], 15.0)
	assert.Less(t, curve[peak], 25.0)
}

func TestNormalCurve_ZeroStdev(t *testing.T) {
	agg := solve.AggregateStats{TotalCount: 1, ValidCount: 1, Mean: 10, Fastest: 10}
	hist := BuildHistogram(agg, nil)

	curve := NormalCurve(agg, hist)
	require.Len(t, curve, len(hist.Labels))
	for i, v := range curve {
		assert.Zerof(t, v, "curve[%d]", i)
	}
}
