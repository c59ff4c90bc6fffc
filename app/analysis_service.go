// Package app wires the reader, statistics engine, histogram builder and
// chart writer into one service.
package app

import (
	"log"
	"time"

	"solvestats/adapters/chart"
	"solvestats/adapters/cstimer"
	"solvestats/domain/core"
	"solvestats/domain/solve"
	"solvestats/internal/analysis"
	"solvestats/internal/errors"

	"github.com/google/uuid"
)

// Analysis is one complete computation over a session. Immutable once
// returned.
type Analysis struct {
	ID        uuid.UUID            `json:"id"`
	Stats     solve.AggregateStats `json:"stats"`
	Histogram solve.Histogram      `json:"histogram"`
	Curve     []float64            `json:"normal_curve"`
	CreatedAt time.Time            `json:"created_at"`
}

// PlotData flattens the analysis into the presentation contract.
func (a *Analysis) PlotData() solve.PlotData {
	return solve.PlotData{
		TotalCount: a.Stats.TotalCount,
		Mean:       a.Stats.Mean,
		Stdev:      a.Stats.Stdev,
		Fastest:    a.Stats.Fastest,
		Labels:     a.Histogram.Labels,
		Counts:     a.Histogram.Counts,
	}
}

// AnalysisService orchestrates a full stats run. Each call recomputes from
// scratch; nothing is cached between invocations.
type AnalysisService struct {
	engine *analysis.Engine
	writer *chart.Writer
}

// NewAnalysisService creates the service.
func NewAnalysisService(engine *analysis.Engine, writer *chart.Writer) *AnalysisService {
	return &AnalysisService{engine: engine, writer: writer}
}

// Analyze computes stats, histogram and normal fit for a session.
func (s *AnalysisService) Analyze(solves []solve.Solve) (*Analysis, error) {
	agg, err := s.engine.Compute(solves)
	if err != nil {
		if core.IsNoValidSolvesError(err) {
			return nil, errors.WithCode(errors.CodeNoValidSolves, err)
		}
		return nil, errors.Wrap(err, "statistics computation failed")
	}

	hist := analysis.BuildHistogram(agg, solves)
	a := &Analysis{
		ID:        uuid.New(),
		Stats:     agg,
		Histogram: hist,
		Curve:     analysis.NormalCurve(agg, hist),
		CreatedAt: time.Now(),
	}

	log.Printf("[AnalysisService] Analysis %s: %d solves, %d DNFs, mean %.2fs",
		a.ID, agg.TotalCount, agg.FailureCount, agg.Mean)
	return a, nil
}

// AnalyzeFile reads a csTimer export and analyzes it.
func (s *AnalysisService) AnalyzeFile(path string, opts cstimer.Options) (*Analysis, error) {
	solves, err := cstimer.NewReader(path, opts).ReadSolves()
	if err != nil {
		return nil, err
	}
	return s.Analyze(solves)
}

// WriteChart renders the analysis to an xlsx chart at outPath. An empty
// path is a no-op.
func (s *AnalysisService) WriteChart(a *Analysis, outPath string) error {
	if err := s.writer.Write(a.PlotData(), a.Curve, outPath); err != nil {
		return errors.ChartWriteError(outPath, err)
	}
	return nil
}
