// Package projection computes inflation-adjusted targets, compound-growth
// future values, sampled trajectories, and the required-contribution
// inversion for a single goal. Every function here is pure: the same
// normalized input always yields the same Results.
package projection

import (
	"fmt"
	"math"

	"github.com/fincast/goalplanner/internal/goal"
	"github.com/fincast/goalplanner/pkg/constants"
	"github.com/fincast/goalplanner/pkg/normalize"
	"go.uber.org/zap"
)

const percentDivisor = 100.0

func percentToDecimal(percent float64) float64 {
	return percent / percentDivisor
}

// Calculator handles per-goal projection computations.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a calculator for goal projections.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Project computes the full Results record for one normalized goal input.
func (c *Calculator) Project(n goal.Normalized) goal.Results {
	inflationFactor := 1.0
	if n.Years > 0 && n.InflationRate > 0 {
		inflationFactor = math.Pow(1+percentToDecimal(n.InflationRate), n.Years)
	}
	effectiveTarget := n.TargetAmount * inflationFactor

	months := normalize.Months(n.Years)
	rm := percentToDecimal(n.AnnualReturnRate) / constants.MonthsPerYear

	var fvLump, fvSip float64
	if n.AnnualReturnRate == 0 {
		// Degenerate zero-return branch: pure linear accumulation. Keeps
		// the annuity formula's division by rm out of reach.
		fvLump = n.CurrentSavings
		fvSip = n.MonthlyContribution * float64(months)
	} else {
		growth := math.Pow(1+rm, float64(months))
		fvLump = n.CurrentSavings * growth
		fvSip = n.MonthlyContribution * ((growth - 1) / rm)
	}

	fvTotal := fvLump + fvSip
	gap := fvTotal - effectiveTarget
	coverage := 0.0
	if effectiveTarget > 0 {
		coverage = fvTotal / effectiveTarget
	}

	c.logger.Debug("projected goal",
		zap.String("op", "projection.Project"),
		zap.Int("months", months),
		zap.Float64("effectiveTarget", effectiveTarget),
		zap.Float64("fvTotal", fvTotal),
		zap.Float64("coverage", coverage),
	)

	return goal.Results{
		FVLumpSum:            fvLump,
		FVContributions:      fvSip,
		FVTotal:              fvTotal,
		Gap:                  gap,
		RequiredContribution: RequiredContribution(effectiveTarget, fvLump, months, rm),
		Trajectory:           sampleTrajectory(n, months, rm),
		Health:               ScoreHealth(effectiveTarget, coverage),
		Coverage:             coverage,
		EffectiveTarget:      effectiveTarget,
	}
}

// RequiredContribution inverts the recurring-contribution future-value
// formula to find the monthly amount that closes the gap the lump sum
// leaves. Non-negative by construction: an already-funded goal needs 0.
func RequiredContribution(effectiveTarget, fvLump float64, months int, rm float64) float64 {
	needed := effectiveTarget - fvLump
	if needed <= 0 {
		return 0
	}
	if rm == 0 {
		return needed / float64(months)
	}
	return needed * rm / (math.Pow(1+rm, float64(months)) - 1)
}

// sampleTrajectory iterates the per-month growth rule and records a sparse
// display sample: month 1, every 6th month, and the final month.
func sampleTrajectory(n goal.Normalized, months int, rm float64) []goal.ProjectionPoint {
	value := n.CurrentSavings
	var points []goal.ProjectionPoint
	for month := 1; month <= months; month++ {
		if rm == 0 {
			value += n.MonthlyContribution
		} else {
			value = value*(1+rm) + n.MonthlyContribution
		}
		if month == 1 || month%constants.TrajectorySampleInterval == 0 || month == months {
			points = append(points, goal.ProjectionPoint{
				Month: month,
				Label: fmt.Sprintf("%.1fy", float64(month)/constants.MonthsPerYear),
				Value: value,
			})
		}
	}
	return points
}
