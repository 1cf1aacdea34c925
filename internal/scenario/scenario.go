// Package scenario reruns the projection under bounded what-if
// perturbations of a single goal's input. The engine never touches the
// goal's stored Results; each variant is computed on a perturbed copy.
package scenario

import (
	"github.com/fincast/goalplanner/internal/goal"
	"github.com/fincast/goalplanner/internal/projection"
	"github.com/fincast/goalplanner/pkg/constants"
	"github.com/fincast/goalplanner/pkg/mathutil"
	"go.uber.org/zap"
)

// Variant names for the three fixed perturbations.
const (
	VariantMoreTime         = "two more years"
	VariantMoreContribution = "extra 2,000 per month"
	VariantSmallerTarget    = "target trimmed by 200,000"
)

// Variant pairs a perturbation name with its independently computed Results.
type Variant struct {
	Name    string       `json:"name"`
	Results goal.Results `json:"results"`
}

// Engine derives what-if variants for a goal.
type Engine struct {
	calc   *projection.Calculator
	logger *zap.Logger
}

// NewEngine creates a scenario engine around a projection calculator.
func NewEngine(calc *projection.Calculator, logger *zap.Logger) *Engine {
	if calc == nil {
		calc = projection.NewCalculator(logger)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{calc: calc, logger: logger}
}

// Variants recomputes the projection three times, each on a copy with
// exactly one field perturbed: a longer horizon, a higher contribution, and
// a smaller target floored at zero.
func (e *Engine) Variants(in goal.Input) []Variant {
	base := in.Normalize()

	moreTime := base
	moreTime.Years += constants.ScenarioExtraYears

	moreContribution := base
	moreContribution.MonthlyContribution += constants.ScenarioExtraContribution

	smallerTarget := base
	smallerTarget.TargetAmount = mathutil.Max(0, base.TargetAmount-constants.ScenarioTargetReduction)

	e.logger.Debug("computing what-if variants",
		zap.String("op", "scenario.Variants"),
		zap.String("goal", in.Name),
	)

	return []Variant{
		{Name: VariantMoreTime, Results: e.calc.Project(moreTime)},
		{Name: VariantMoreContribution, Results: e.calc.Project(moreContribution)},
		{Name: VariantSmallerTarget, Results: e.calc.Project(smallerTarget)},
	}
}
