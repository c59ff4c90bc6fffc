package ui

import (
	"fmt"
	"strings"

	"solvestats/app"

	"github.com/gomarkdown/markdown"
)

// renderReport builds the session summary as markdown and converts it to
// HTML for the index page.
func renderReport(a *app.Analysis) []byte {
	var b strings.Builder
	b.WriteString("## Session summary\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Solves | %d |\n", a.Stats.TotalCount)
	fmt.Fprintf(&b, "| Valid | %d |\n", a.Stats.ValidCount)
	fmt.Fprintf(&b, "| DNFs | %d |\n", a.Stats.FailureCount)
	fmt.Fprintf(&b, "| Mean | %.2fs |\n", a.Stats.Mean)
	fmt.Fprintf(&b, "| Stdev | %.2fs |\n", a.Stats.Stdev)
	fmt.Fprintf(&b, "| Fastest | %.2fs |\n", a.Stats.Fastest)
	fmt.Fprintf(&b, "\nAnalysis `%s` computed at %s.\n",
		a.ID, a.CreatedAt.Format("2006-01-02 15:04:05"))

	return markdown.ToHTML([]byte(b.String()), nil, nil)
}
