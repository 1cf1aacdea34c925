// Package goal defines the data structures for savings goals and portfolios
// and the pure transitions over them.
package goal

import (
	"math"

	"github.com/fincast/goalplanner/pkg/normalize"
)

// RiskProfile classifies the portfolio owner's appetite for risk.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// ParseRiskProfile maps free-form text to a RiskProfile, defaulting to
// moderate for anything unrecognized.
func ParseRiskProfile(raw string) RiskProfile {
	switch RiskProfile(raw) {
	case RiskConservative, RiskModerate, RiskAggressive:
		return RiskProfile(raw)
	default:
		return RiskModerate
	}
}

// Input holds the raw per-goal fields as supplied at the input boundary.
// Numeric fields are free-form text and are normalized before any math.
type Input struct {
	Name                string `json:"name" yaml:"name"`
	Category            string `json:"category" yaml:"category"`
	TargetAmount        string `json:"targetAmount" yaml:"targetAmount"`
	Years               string `json:"years" yaml:"years"`
	CurrentSavings      string `json:"currentSavings" yaml:"currentSavings"`
	MonthlyContribution string `json:"monthlyContribution" yaml:"monthlyContribution"`
	AnnualReturnRate    string `json:"annualReturnRate" yaml:"annualReturnRate"`
	InflationRate       string `json:"inflationRate" yaml:"inflationRate"`
	Priority            string `json:"priority" yaml:"priority"`
	StreakMonths        string `json:"streakMonths" yaml:"streakMonths"`
}

// Normalized is the numeric view of an Input after boundary coercion.
// StreakMonths is display-only and never enters the math.
type Normalized struct {
	TargetAmount        float64
	Years               float64
	CurrentSavings      float64
	MonthlyContribution float64
	AnnualReturnRate    float64
	InflationRate       float64
	Priority            int
	StreakMonths        int
}

// Normalize coerces every raw field through the normalization boundary.
func (in Input) Normalize() Normalized {
	return Normalized{
		TargetAmount:        normalize.Number(in.TargetAmount),
		Years:               normalize.Number(in.Years),
		CurrentSavings:      normalize.Number(in.CurrentSavings),
		MonthlyContribution: normalize.Number(in.MonthlyContribution),
		AnnualReturnRate:    normalize.Number(in.AnnualReturnRate),
		InflationRate:       normalize.Number(in.InflationRate),
		Priority:            normalize.Priority(in.Priority),
		StreakMonths:        int(math.Round(normalize.Number(in.StreakMonths))),
	}
}

// HealthTier is a quick-glance emoji/label pair derived from coverage.
type HealthTier struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// ProjectionPoint is one sampled month of a growth trajectory.
type ProjectionPoint struct {
	Month int     `json:"month"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Results holds everything computed for one goal. A Results value is
// immutable once computed; recomputation replaces it wholesale.
type Results struct {
	FVLumpSum            float64           `json:"fvLumpSum"`
	FVContributions      float64           `json:"fvContributions"`
	FVTotal              float64           `json:"fvTotal"`
	Gap                  float64           `json:"gap"`
	RequiredContribution float64           `json:"requiredContribution"`
	Trajectory           []ProjectionPoint `json:"trajectory"`
	Health               HealthTier        `json:"health"`
	Coverage             float64           `json:"coverage"`
	EffectiveTarget      float64           `json:"effectiveTarget"`
}

// Goal pairs a stable identifier with its input and, once computed, the
// latest Results snapshot.
type Goal struct {
	ID      int      `json:"id"`
	Input   Input    `json:"input"`
	Results *Results `json:"results,omitempty"`
}

// WithInput returns a new Goal carrying the updated input while holding the
// last computed snapshot until the caller explicitly recomputes.
func (g Goal) WithInput(in Input) Goal {
	return Goal{ID: g.ID, Input: in, Results: g.Results}
}

// WithResults returns a new Goal with the Results replaced wholesale.
func (g Goal) WithResults(r Results) Goal {
	return Goal{ID: g.ID, Input: g.Input, Results: &r}
}
