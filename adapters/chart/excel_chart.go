// Package chart renders histogram plot data into an xlsx workbook with an
// embedded column chart. It is a thin presentation layer over
// solve.PlotData and performs no statistics of its own.
package chart

import (
	"fmt"
	"log"

	"solvestats/domain/solve"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Histogram"

// Options selects which panels the chart renders. The bar panel is always
// drawn; the normal-curve overlay is optional.
type Options struct {
	Title       string
	NormalCurve bool
}

// DefaultOptions matches the original single-session view.
func DefaultOptions() Options {
	return Options{Title: "3x3 Solve Histogram", NormalCurve: true}
}

// Writer writes plot data to xlsx files.
type Writer struct {
	opts Options
}

// NewWriter creates a chart writer.
func NewWriter(opts Options) *Writer {
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}
	return &Writer{opts: opts}
}

// Write renders the plot data and saves the workbook to outPath. An empty
// outPath writes nothing and returns nil, matching the interactive-only
// mode of the original tool.
func (w *Writer) Write(pd solve.PlotData, curve []float64, outPath string) error {
	if outPath == "" {
		return nil
	}

	f, err := w.build(pd, curve)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save chart workbook: %w", err)
	}
	log.Printf("[ChartWriter] Wrote %d-bucket histogram chart to %s", len(pd.Labels), outPath)
	return nil
}

// build assembles the workbook: the bucket table in columns A-C, the stats
// block in columns E-F, and the chart anchored beside them.
func (w *Writer) build(pd solve.PlotData, curve []float64) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headers := []interface{}{"Category", "Frequency"}
	if w.opts.NormalCurve {
		headers = append(headers, "Normal fit")
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}

	for i, label := range pd.Labels {
		row := []interface{}{label, pd.Counts[i]}
		if w.opts.NormalCurve {
			row = append(row, curve[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	stats := [][]interface{}{
		{"solves", pd.TotalCount},
		{"mean", fmt.Sprintf("%.2f", pd.Mean)},
		{"stdev", fmt.Sprintf("%.2f", pd.Stdev)},
		{"fastest", pd.Fastest},
	}
	for i, row := range stats {
		cell, err := excelize.CoordinatesToCellName(5, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := w.addChart(f, len(pd.Labels)); err != nil {
		return nil, err
	}
	return f, nil
}

func (w *Writer) addChart(f *excelize.File, buckets int) error {
	lastRow := buckets + 1
	categories := fmt.Sprintf("%s!$A$2:$A$%d", sheetName, lastRow)

	bars := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", sheetName),
			Categories: categories,
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheetName, lastRow),
		}},
		Title:    []excelize.RichTextRun{{Text: w.opts.Title}},
		XAxis:    excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Time Categories"}}},
		YAxis:    excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Frequency"}}},
		PlotArea: excelize.ChartPlotArea{ShowVal: true},
		Legend:   excelize.ChartLegend{Position: "none"},
	}

	if !w.opts.NormalCurve {
		return f.AddChart(sheetName, "H2", bars)
	}

	overlay := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$C$1", sheetName),
			Categories: categories,
			Values:     fmt.Sprintf("%s!$C$2:$C$%d", sheetName, lastRow),
		}},
	}
	return f.AddChart(sheetName, "H2", bars, overlay)
}
