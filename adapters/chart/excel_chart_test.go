package chart

import (
	"os"
	"path/filepath"
	"testing"

	"solvestats/domain/solve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func samplePlotData() solve.PlotData {
	return solve.PlotData{
		TotalCount: 5,
		Mean:       13.2,
		Stdev:      0.8,
		Fastest:    12.1,
		Labels:     []string{"12", "13", "14", "15+", "DNF"},
		Counts:     []int{2, 1, 1, 0, 1},
	}
}

func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "histogram.xlsx")
	curve := []float64{1.2, 1.8, 1.1, 0, 0}

	w := NewWriter(DefaultOptions())
	require.NoError(t, w.Write(samplePlotData(), curve, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(sheetName, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Category", get("A1"))
	assert.Equal(t, "Frequency", get("B1"))
	assert.Equal(t, "Normal fit", get("C1"))
	assert.Equal(t, "12", get("A2"))
	assert.Equal(t, "2", get("B2"))
	assert.Equal(t, "DNF", get("A6"))
	assert.Equal(t, "1", get("B6"))

	// Stats block mirrors the original chart's corner text.
	assert.Equal(t, "solves", get("E1"))
	assert.Equal(t, "5", get("F1"))
	assert.Equal(t, "mean", get("E2"))
	assert.Equal(t, "13.20", get("F2"))
	assert.Equal(t, "stdev", get("E3"))
	assert.Equal(t, "0.80", get("F3"))
}

func TestWriter_Write_BarsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.xlsx")

	w := NewWriter(Options{Title: "Session", NormalCurve: false})
	require.NoError(t, w.Write(samplePlotData(), nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(sheetName, "C1")
	require.NoError(t, err)
	assert.Empty(t, v, "curve column must be absent without the overlay")
}

func TestWriter_Write_EmptyPathIsNoop(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(DefaultOptions())
	require.NoError(t, w.Write(samplePlotData(), []float64{0, 0, 0, 0, 0}, ""))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
