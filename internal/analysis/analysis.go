// Package analysis combines per-goal results across a portfolio: totals,
// average-coverage badge, income-conflict classification, and
// priority-weighted allocation. It only reads individual Results, never
// mutates them.
package analysis

import (
	"github.com/fincast/goalplanner/internal/goal"
	"github.com/fincast/goalplanner/pkg/constants"
	"github.com/fincast/goalplanner/pkg/mathutil"
	"go.uber.org/zap"
)

// Portfolio badge labels keyed on average coverage.
const (
	BadgeGettingStarted = "getting started"
	BadgeHighRisk       = "high risk of shortfall"
	BadgeAlmostThere    = "almost there"
	BadgeOnTrack        = "on track"
	BadgeOverprepared   = "overprepared"
)

// Income-conflict classifications.
const (
	ConflictNeedIncome     = "need income to evaluate"
	ConflictCalculateFirst = "calculate goals first"
	ConflictExtreme        = "mathematically possible, practically extreme"
	ConflictAmbitious      = "ambitious but feasible"
	ConflictHealthy        = "healthy range"
	ConflictConservative   = "very conservative / tiny goals"
)

// Suggestion is a priority-weighted contribution suggestion for one goal.
type Suggestion struct {
	GoalID int     `json:"goalId"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Summary aggregates a portfolio's computed state.
type Summary struct {
	TotalCurrentContribution  float64      `json:"totalCurrentContribution"`
	TotalRequiredContribution float64      `json:"totalRequiredContribution"`
	AverageCoverage           float64      `json:"averageCoverage"`
	Badge                     string       `json:"badge"`
	Conflict                  string       `json:"conflict"`
	Allocation                []Suggestion `json:"allocation,omitempty"`
}

// Analyzer handles cross-goal aggregation.
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer creates an analyzer for portfolio aggregation.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// Summarize computes the aggregate view of a portfolio snapshot. An empty
// portfolio yields neutral defaults, never an error.
func (a *Analyzer) Summarize(p goal.Portfolio) Summary {
	var totalCurrent, totalRequired float64
	var coverageSum float64
	coverageCount := 0

	for _, g := range p.Goals {
		totalCurrent += g.Input.Normalize().MonthlyContribution
		if g.Results == nil {
			continue
		}
		totalRequired += mathutil.Max(0, g.Results.RequiredContribution)
		if g.Results.Coverage > 0 {
			coverageSum += g.Results.Coverage
			coverageCount++
		}
	}

	averageCoverage := 0.0
	if coverageCount > 0 {
		averageCoverage = coverageSum / float64(coverageCount)
	}

	summary := Summary{
		TotalCurrentContribution:  totalCurrent,
		TotalRequiredContribution: totalRequired,
		AverageCoverage:           averageCoverage,
		Badge:                     coverageBadge(coverageCount, averageCoverage),
		Conflict:                  classifyConflict(totalRequired, p.MonthlyIncome),
		Allocation:                a.Allocate(p),
	}

	a.logger.Debug("summarized portfolio",
		zap.String("op", "analysis.Summarize"),
		zap.Int("goals", len(p.Goals)),
		zap.Float64("totalRequired", totalRequired),
		zap.Float64("averageCoverage", averageCoverage),
	)

	return summary
}

func coverageBadge(qualifyingGoals int, averageCoverage float64) string {
	switch {
	case qualifyingGoals == 0:
		return BadgeGettingStarted
	case averageCoverage < 0.7:
		return BadgeHighRisk
	case averageCoverage < 1.0:
		return BadgeAlmostThere
	case averageCoverage < 1.2:
		return BadgeOnTrack
	default:
		return BadgeOverprepared
	}
}

func classifyConflict(totalRequired, income float64) string {
	if income <= 0 {
		return ConflictNeedIncome
	}
	if totalRequired <= 0 {
		return ConflictCalculateFirst
	}
	ratio := mathutil.CalculatePercentage(totalRequired, income)
	switch {
	case ratio > 60:
		return ConflictExtreme
	case ratio > 40:
		return ConflictAmbitious
	case ratio > 20:
		return ConflictHealthy
	default:
		return ConflictConservative
	}
}

// Allocate splits a capped share of monthly income across goals by clamped
// priority, rounded to whole currency units. Returns nil when income is
// non-positive or the portfolio is empty.
func (a *Analyzer) Allocate(p goal.Portfolio) []Suggestion {
	if p.MonthlyIncome <= 0 || len(p.Goals) == 0 {
		return nil
	}

	capped := constants.AllocationIncomeCap * p.MonthlyIncome

	weights := make([]int, len(p.Goals))
	weightSum := 0
	for i, g := range p.Goals {
		weights[i] = g.Input.Normalize().Priority
		weightSum += weights[i]
	}

	suggestions := make([]Suggestion, len(p.Goals))
	for i, g := range p.Goals {
		suggestions[i] = Suggestion{
			GoalID: g.ID,
			Name:   g.Input.Name,
			Amount: mathutil.RoundWhole(float64(weights[i]) / float64(weightSum) * capped),
		}
	}
	return suggestions
}
