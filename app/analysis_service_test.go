package app

import (
	"path/filepath"
	"testing"

	"solvestats/adapters/chart"
	"solvestats/adapters/cstimer"
	"solvestats/domain/core"
	"solvestats/domain/solve"
	"solvestats/internal/analysis"
	"solvestats/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *AnalysisService {
	return NewAnalysisService(analysis.NewEngine(), chart.NewWriter(chart.DefaultOptions()))
}

func TestAnalysisService_Analyze(t *testing.T) {
	session := testkit.NewGenerator(11).Session(120, 14.0, 2.0, 0.1)

	a, err := newService().Analyze(session)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, 120, a.Stats.TotalCount)
	assert.Equal(t, a.Stats.TotalCount, a.Histogram.Total())
	assert.Equal(t, a.Stats.FailureCount, a.Histogram.DNFCount())
	assert.Len(t, a.Curve, len(a.Histogram.Labels))
}

func TestAnalysisService_Analyze_AllDNF(t *testing.T) {
	session := []solve.Solve{solve.NewDNF("12.00"), solve.NewDNF("13.00")}

	_, err := newService().Analyze(session)
	require.Error(t, err)
	assert.True(t, core.IsNoValidSolvesError(err))
}

func TestAnalysisService_AnalyzeFile(t *testing.T) {
	gen := testkit.NewGenerator(23)
	session := gen.Session(60, 13.0, 1.5, 0.05)
	path := filepath.Join(t.TempDir(), "session.csv")
	require.NoError(t, gen.WriteCSV(path, session))

	a, err := newService().AnalyzeFile(path, cstimer.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 60, a.Stats.TotalCount)
}

func TestAnalysis_PlotData(t *testing.T) {
	session := testkit.NewGenerator(5).Session(40, 12.0, 1.0, 0.0)
	a, err := newService().Analyze(session)
	require.NoError(t, err)

	pd := a.PlotData()
	assert.Equal(t, a.Stats.TotalCount, pd.TotalCount)
	assert.Equal(t, a.Stats.Mean, pd.Mean)
	assert.Equal(t, a.Stats.Stdev, pd.Stdev)
	assert.Equal(t, a.Stats.Fastest, pd.Fastest)
	assert.Equal(t, a.Histogram.Labels, pd.Labels)
	assert.Equal(t, a.Histogram.Counts, pd.Counts)
}

func TestAnalysisService_WriteChart_EmptyPath(t *testing.T) {
	session := testkit.NewGenerator(9).Session(30, 12.0, 1.0, 0.1)
	svc := newService()
	a, err := svc.Analyze(session)
	require.NoError(t, err)

	// Empty path means interactive-only: nothing written, no error.
	assert.NoError(t, svc.WriteChart(a, ""))
}
