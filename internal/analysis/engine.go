// Package analysis computes session statistics and the frequency histogram
// consumed by the presentation layers.
package analysis

import (
	"solvestats/domain/core"
	"solvestats/domain/solve"

	"github.com/montanaflynn/stats"
)

// Engine computes aggregate statistics over a session. Stateless; each
// call is independent and reentrant.
type Engine struct{}

// NewEngine creates a new statistics engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compute derives AggregateStats from a full session in one pass over the
// records. DNF attempts count toward the total but are excluded from mean,
// standard deviation and fastest time. The standard deviation is the
// population form (divisor N).
func (e *Engine) Compute(solves []solve.Solve) (solve.AggregateStats, error) {
	times := make([]float64, 0, len(solves))
	for _, s := range solves {
		if s.DNF {
			continue
		}
		times = append(times, s.Seconds)
	}
	if len(times) == 0 {
		return solve.AggregateStats{}, core.ErrNoValidSolves
	}

	mean, err := stats.Mean(times)
	if err != nil {
		return solve.AggregateStats{}, err
	}
	stdev, err := stats.StandardDeviationPopulation(times)
	if err != nil {
		return solve.AggregateStats{}, err
	}
	fastest, err := stats.Min(times)
	if err != nil {
		return solve.AggregateStats{}, err
	}

	return solve.NewAggregateStats(len(solves), len(times), mean, stdev, fastest)
}
