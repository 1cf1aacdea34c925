// Package output provides utilities for formatting and displaying computed
// portfolios.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fincast/goalplanner/internal/advisor"
	"github.com/fincast/goalplanner/internal/analysis"
	"github.com/fincast/goalplanner/internal/goal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, p goal.Portfolio, summary analysis.Summary) {
	pr := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- Goals ---\n")
	fmt.Fprintf(w, "ID | Goal                 | Health          | Coverage | Projected       | Required/mo\n")
	fmt.Fprintf(w, "__ | ____                 | ______          | ________ | _________       | ___________\n")
	for _, g := range p.Goals {
		if g.Results == nil {
			fmt.Fprintf(w, "%2d | %-20s | not computed\n", g.ID, g.Input.Name)
			continue
		}
		r := g.Results
		_, _ = pr.Fprintf(w, "%2d | %-20s | %s %-12s | %6.1f%% | $%.2f | $%.2f\n",
			g.ID, g.Input.Name, r.Health.Emoji, r.Health.Label, r.Coverage*100, r.FVTotal, r.RequiredContribution)
	}

	fmt.Fprintf(w, "\n--- Portfolio ---\n")
	_, _ = pr.Fprintf(w, "Current contribution: $%.2f/mo | Required: $%.2f/mo\n",
		summary.TotalCurrentContribution, summary.TotalRequiredContribution)
	fmt.Fprintf(w, "Average coverage: %.1f%% (%s)\n", summary.AverageCoverage*100, summary.Badge)
	fmt.Fprintf(w, "Against income: %s\n", summary.Conflict)
	if summary.Allocation != nil {
		fmt.Fprintf(w, "Suggested allocation:\n")
		for _, s := range summary.Allocation {
			_, _ = pr.Fprintf(w, "  %-20s $%.0f/mo\n", s.Name, s.Amount)
		}
	}
}

// CsvFormat outputs the flattened per-goal records in comma-separated value
// format.
func CsvFormat(w io.Writer, p goal.Portfolio) {
	header := make([]string, len(advisor.ExportHeader))
	for i, column := range advisor.ExportHeader {
		header[i] = fmt.Sprintf("%q", column)
	}
	fmt.Fprintf(w, "%s\n", strings.Join(header, ","))

	for _, row := range advisor.ExportRows(p) {
		quoted := make([]string, len(row))
		for i, field := range row {
			quoted[i] = fmt.Sprintf("%q", field)
		}
		fmt.Fprintf(w, "%s\n", strings.Join(quoted, ","))
	}
}
