package analysis

import (
	"math"
	"strconv"

	"solvestats/domain/solve"
)

// BuildHistogram bins a session into one-second buckets. Boundaries come
// from the data itself: the lowest bucket is floor(fastest) and the
// highest is floor(mean + 2*stdev). Valid times past the highest boundary
// (or, defensively, below the lowest) land in the overflow bucket; DNF
// attempts get their own final bucket.
//
// When floor(mean + 2*stdev) < floor(fastest) the per-second range is
// empty and the histogram collapses to just the overflow and DNF buckets,
// with the overflow labeled from the fastest time.
func BuildHistogram(agg solve.AggregateStats, solves []solve.Solve) solve.Histogram {
	smallest := int(math.Floor(agg.Fastest))
	largest := int(math.Floor(agg.Mean + 2*agg.Stdev))
	if largest < smallest {
		largest = smallest - 1
	}

	labels := make([]string, 0, largest-smallest+3)
	for i := smallest; i <= largest; i++ {
		labels = append(labels, strconv.Itoa(i))
	}
	labels = append(labels, strconv.Itoa(largest+1)+"+", "DNF")

	counts := make([]int, len(labels))
	overflow := len(counts) - 2
	for _, s := range solves {
		if s.DNF {
			continue
		}
		second := int(math.Floor(s.Seconds))
		if second >= smallest && second <= largest {
			counts[second-smallest]++
		} else {
			counts[overflow]++
		}
	}
	counts[len(counts)-1] = agg.FailureCount

	return solve.Histogram{Labels: labels, Counts: counts, Smallest: smallest}
}
