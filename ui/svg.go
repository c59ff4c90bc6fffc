package ui

import (
	"fmt"
	"strings"

	"solvestats/domain/solve"
)

// SVG chart geometry. Width scales with the bucket count so narrow
// sessions don't stretch their bars.
const (
	barWidth    = 44
	barGap      = 8
	chartHeight = 320
	axisPad     = 40
)

// renderSVG draws the histogram as an inline SVG: one labeled bar per
// bucket with its frequency above it, and optionally the normal-fit
// polyline over the per-second buckets.
func renderSVG(pd solve.PlotData, curve []float64, overlay bool) string {
	maxCount := 1
	for _, c := range pd.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	scale := float64(chartHeight-2*axisPad) / float64(maxCount)
	width := len(pd.Labels)*(barWidth+barGap) + 2*axisPad

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, width, chartHeight)

	for i, label := range pd.Labels {
		x := axisPad + i*(barWidth+barGap)
		h := int(float64(pd.Counts[i]) * scale)
		y := chartHeight - axisPad - h

		fill := "#4a7ebb"
		if label == "DNF" {
			fill = "#bb4a4a"
		}
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`, x, y, barWidth, h, fill)
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-size="11">%d</text>`,
			x+barWidth/2, y-4, pd.Counts[i])
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-size="11">%s</text>`,
			x+barWidth/2, chartHeight-axisPad+14, label)
	}

	if overlay {
		b.WriteString(curvePolyline(pd, curve, scale))
	}

	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="end" font-size="11">solves: %d  mean: %.2f  stdev: %.2f  fastest: %v</text>`,
		width-4, 16, pd.TotalCount, pd.Mean, pd.Stdev, pd.Fastest)
	b.WriteString(`</svg>`)
	return b.String()
}

// curvePolyline plots the expected frequencies across the per-second
// buckets. The overflow and DNF buckets carry no curve points.
func curvePolyline(pd solve.PlotData, curve []float64, scale float64) string {
	perSecond := len(pd.Labels) - 2
	if perSecond <= 0 || len(curve) < perSecond {
		return ""
	}

	points := make([]string, 0, perSecond)
	for i := 0; i < perSecond; i++ {
		x := axisPad + i*(barWidth+barGap) + barWidth/2
		y := chartHeight - axisPad - int(curve[i]*scale)
		points = append(points, fmt.Sprintf("%d,%d", x, y))
	}
	return fmt.Sprintf(`<polyline points="%s" fill="none" stroke="#333" stroke-width="2"/>`,
		strings.Join(points, " "))
}
