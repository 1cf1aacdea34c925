// Package advisor renders a goal's computed state as deterministic text:
// a rule-based explanation, a flattened export record, and a multi-line
// advisory summary. Same inputs always produce the same text.
package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fincast/goalplanner/internal/goal"
	"github.com/fincast/goalplanner/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// overfundedMargin is the contribution surplus that distinguishes
// "noticeably overfunded" from plain "on track" inside the on-track tier.
const overfundedMargin = 100.0

var printer = message.NewPrinter(language.English)

func currency(amount float64) string {
	return printer.Sprintf("%.0f", mathutil.RoundWhole(amount))
}

// Explain renders a goal's computed state as a short deterministic
// paragraph. Tier boundaries mirror the health scorer's cut points.
func Explain(n goal.Normalized, r goal.Results, risk goal.RiskProfile, income float64) string {
	diff := r.RequiredContribution - n.MonthlyContribution

	var parts []string
	parts = append(parts, coverageSentence(r, diff))
	if sentence := contributionSentence(r, n, diff); sentence != "" {
		parts = append(parts, sentence)
	}
	parts = append(parts, riskSentence(risk))
	if income > 0 && r.RequiredContribution > 0 {
		pct := mathutil.CalculatePercentage(r.RequiredContribution, income)
		parts = append(parts, fmt.Sprintf("The required contribution is about %.0f%% of your monthly income.", pct))
	}
	return strings.Join(parts, " ")
}

func coverageSentence(r goal.Results, diff float64) string {
	pct := r.Coverage * 100
	switch {
	case r.EffectiveTarget <= 0:
		return "Set a target amount to see where this goal stands."
	case r.Coverage < 0.5:
		return fmt.Sprintf("This goal is projected to reach only %.0f%% of its inflation-adjusted target, a serious shortfall.", pct)
	case r.Coverage < 0.8:
		return fmt.Sprintf("This goal is projected to reach %.0f%% of its inflation-adjusted target and needs work.", pct)
	case r.Coverage < 1.0:
		return fmt.Sprintf("This goal is almost there at %.0f%% of its inflation-adjusted target.", pct)
	case r.Coverage < 1.3:
		if diff < -overfundedMargin {
			return fmt.Sprintf("This goal is overfunded by a noticeable margin at %.0f%% of its target.", pct)
		}
		return fmt.Sprintf("This goal is on track at %.0f%% of its target.", pct)
	default:
		return fmt.Sprintf("This goal is projected at %.0f%% of its target, well beyond what it needs.", pct)
	}
}

func contributionSentence(r goal.Results, n goal.Normalized, diff float64) string {
	switch {
	case r.EffectiveTarget <= 0:
		return ""
	case r.RequiredContribution == 0:
		return "What you have already saved carries it the rest of the way on its own."
	case diff > 0:
		return fmt.Sprintf("Raising the monthly contribution by about %s would close the gap.", currency(diff))
	default:
		return fmt.Sprintf("The current contribution of %s per month is enough to stay ahead.", currency(n.MonthlyContribution))
	}
}

func riskSentence(risk goal.RiskProfile) string {
	switch risk {
	case goal.RiskConservative:
		return "With a conservative profile, favor predictable instruments even if growth is slower."
	case goal.RiskAggressive:
		return "An aggressive profile can chase higher returns, but expect swings along the way."
	default:
		return "A moderate profile suits a balanced mix of growth and stability."
	}
}

// ExportHeader is the column order of the flattened per-goal export record.
var ExportHeader = []string{
	"id", "name", "type", "priority",
	"base target", "inflation rate", "effective target",
	"years", "current savings", "monthly contribution", "expected return",
	"projected total", "coverage percent", "health",
}

// ExportRows flattens every goal into one record per goal, computed columns
// left empty for goals without Results.
func ExportRows(p goal.Portfolio) [][]string {
	rows := make([][]string, 0, len(p.Goals))
	for _, g := range p.Goals {
		n := g.Input.Normalize()
		row := []string{
			strconv.Itoa(g.ID),
			g.Input.Name,
			g.Input.Category,
			strconv.Itoa(n.Priority),
			fmt.Sprintf("%.2f", n.TargetAmount),
			fmt.Sprintf("%.2f", n.InflationRate),
			"",
			fmt.Sprintf("%.1f", n.Years),
			fmt.Sprintf("%.2f", n.CurrentSavings),
			fmt.Sprintf("%.2f", n.MonthlyContribution),
			fmt.Sprintf("%.2f", n.AnnualReturnRate),
			"",
			"",
			"",
		}
		if g.Results != nil {
			row[6] = fmt.Sprintf("%.2f", g.Results.EffectiveTarget)
			row[11] = fmt.Sprintf("%.2f", g.Results.FVTotal)
			row[12] = fmt.Sprintf("%.1f", g.Results.Coverage*100)
			row[13] = g.Results.Health.Label
		}
		rows = append(rows, row)
	}
	return rows
}

// Summary renders the free-text multi-line advisory for one goal, listing
// the same facts as the export record plus the explanation paragraph.
func Summary(g goal.Goal, risk goal.RiskProfile, income float64) string {
	n := g.Input.Normalize()

	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s (%s)\n", g.Input.Name, g.Input.Category)
	fmt.Fprintf(&b, "Priority: %d of 5\n", n.Priority)
	fmt.Fprintf(&b, "Target: %s over %.1f years (inflation %.1f%%)\n", currency(n.TargetAmount), n.Years, n.InflationRate)
	fmt.Fprintf(&b, "Saved so far: %s, contributing %s per month at %.1f%% expected return\n",
		currency(n.CurrentSavings), currency(n.MonthlyContribution), n.AnnualReturnRate)

	if g.Results == nil {
		b.WriteString("Not yet computed.\n")
		return b.String()
	}

	r := *g.Results
	fmt.Fprintf(&b, "Inflation-adjusted target: %s\n", currency(r.EffectiveTarget))
	fmt.Fprintf(&b, "Projected total: %s (%.0f%% coverage, %s %s)\n",
		currency(r.FVTotal), r.Coverage*100, r.Health.Emoji, r.Health.Label)
	fmt.Fprintf(&b, "Required contribution: %s per month\n", currency(r.RequiredContribution))
	b.WriteString(Explain(n, r, risk, income))
	b.WriteString("\n")
	return b.String()
}
