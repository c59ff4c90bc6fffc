package solve

import (
	"fmt"

	"solvestats/domain/core"
)

// Solve is a single timed attempt from a session export.
type Solve struct {
	RawTime string  `json:"raw_time"`
	Seconds float64 `json:"seconds"`
	DNF     bool    `json:"dnf"`
}

// NewSolve builds a valid attempt, parsing the raw time eagerly.
func NewSolve(raw string) (Solve, error) {
	seconds, err := ParseDuration(raw)
	if err != nil {
		return Solve{}, err
	}
	return Solve{RawTime: raw, Seconds: seconds}, nil
}

// NewDNF builds a failed attempt. The raw time is kept for display but
// never enters any statistic.
func NewDNF(raw string) Solve {
	return Solve{RawTime: raw, DNF: true}
}

// AggregateStats holds the session-level statistics over the valid subset.
// Immutable once constructed.
//
// INVARIANTS:
// - ValidCount > 0 and ValidCount <= TotalCount
// - FailureCount == TotalCount - ValidCount
// - Stdev is the population standard deviation (divisor N, not N-1)
type AggregateStats struct {
	TotalCount   int     `json:"total_count"`
	ValidCount   int     `json:"valid_count"`
	FailureCount int     `json:"failure_count"`
	Mean         float64 `json:"mean"`
	Stdev        float64 `json:"stdev"`
	Fastest      float64 `json:"fastest"`
}

// NewAggregateStats creates aggregate statistics with validation.
func NewAggregateStats(totalCount, validCount int, mean, stdev, fastest float64) (AggregateStats, error) {
	if validCount == 0 {
		return AggregateStats{}, core.ErrNoValidSolves
	}
	if validCount < 0 || validCount > totalCount {
		return AggregateStats{}, fmt.Errorf("valid count %d out of range for total %d", validCount, totalCount)
	}
	if stdev < 0 {
		return AggregateStats{}, fmt.Errorf("stdev must be >= 0, got %f", stdev)
	}
	return AggregateStats{
		TotalCount:   totalCount,
		ValidCount:   validCount,
		FailureCount: totalCount - validCount,
		Mean:         mean,
		Stdev:        stdev,
		Fastest:      fastest,
	}, nil
}

// Histogram is the binned frequency distribution derived from a session.
// Labels holds one entry per integer second from Smallest up to the largest
// boundary, then the overflow label ("N+"), then "DNF". Counts is parallel
// to Labels.
type Histogram struct {
	Labels   []string `json:"labels"`
	Counts   []int    `json:"counts"`
	Smallest int      `json:"smallest"`
}

// PerSecondBuckets is the number of explicit one-second buckets, which can
// be zero for a degenerate spread.
func (h Histogram) PerSecondBuckets() int {
	return len(h.Labels) - 2
}

// OverflowCount returns the count of valid times past the largest boundary.
func (h Histogram) OverflowCount() int {
	return h.Counts[len(h.Counts)-2]
}

// DNFCount returns the failure bucket count.
func (h Histogram) DNFCount() int {
	return h.Counts[len(h.Counts)-1]
}

// Total sums every bucket, which always equals the session's total count.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// PlotData is the contract handed to presentation layers. Renderers draw
// one bar per label with its count above it, and may overlay a normal
// curve parameterized by Mean and Stdev.
type PlotData struct {
	TotalCount int      `json:"total_count"`
	Mean       float64  `json:"mean"`
	Stdev      float64  `json:"stdev"`
	Fastest    float64  `json:"fastest"`
	Labels     []string `json:"labels"`
	Counts     []int    `json:"counts"`
}
