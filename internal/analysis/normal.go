package analysis

import (
	"math"

	"solvestats/domain/solve"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalCurve samples the normal fit N(mean, stdev) at the center of each
// per-second bucket, scaled to expected frequency (pdf times the valid
// solve count; bucket width is one second). The returned slice is parallel
// to the histogram's labels, with zeros for the overflow and DNF buckets
// so renderers can overlay it directly onto the bars.
func NormalCurve(agg solve.AggregateStats, hist solve.Histogram) []float64 {
	curve := make([]float64, len(hist.Labels))
	if agg.Stdev == 0 || math.IsNaN(agg.Stdev) {
		return curve
	}

	dist := distuv.Normal{Mu: agg.Mean, Sigma: agg.Stdev}
	for i := 0; i < hist.PerSecondBuckets(); i++ {
		center := float64(hist.Smallest+i) + 0.5
		curve[i] = dist.Prob(center) * float64(agg.ValidCount)
	}
	return curve
}
