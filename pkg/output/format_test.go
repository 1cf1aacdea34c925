package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fincast/goalplanner/internal/analysis"
	"github.com/fincast/goalplanner/internal/goal"
	"github.com/fincast/goalplanner/internal/projection"
)

func computedPortfolio() (goal.Portfolio, analysis.Summary) {
	calc := projection.NewCalculator(nil)
	p := goal.Portfolio{
		MonthlyIncome: 100000,
		RiskProfile:   goal.RiskModerate,
		Goals: []goal.Goal{
			{ID: 1, Input: goal.Input{
				Name:                "House",
				Category:            "Property",
				TargetAmount:        "1500000",
				Years:               "5",
				CurrentSavings:      "50000",
				MonthlyContribution: "10000",
				AnnualReturnRate:    "12",
				InflationRate:       "5",
				Priority:            "4",
			}},
			{ID: 2, Input: goal.Input{Name: "Travel", Priority: "2"}},
		},
	}
	p, _ = p.ReplaceResults(1, calc.Project(p.Goals[0].Input.Normalize()))
	return p, analysis.NewAnalyzer(nil).Summarize(p)
}

func TestPrettyFormat(t *testing.T) {
	p, summary := computedPortfolio()

	var buf bytes.Buffer
	PrettyFormat(&buf, p, summary)
	out := buf.String()

	for _, want := range []string{"House", "very weak", "not computed", "Suggested allocation", "Average coverage"} {
		if !strings.Contains(out, want) {
			t.Errorf("PrettyFormat() missing %q:\n%s", want, out)
		}
	}
}

func TestCsvFormat(t *testing.T) {
	p, _ := computedPortfolio()

	var buf bytes.Buffer
	CsvFormat(&buf, p)
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvFormat() wrote %d lines, expected header plus 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], `"coverage percent"`) {
		t.Errorf("header missing coverage column: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"House"`) || !strings.Contains(lines[1], `"very weak"`) {
		t.Errorf("computed row incomplete: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"Travel"`) {
		t.Errorf("uncomputed row missing: %s", lines[2])
	}
}
