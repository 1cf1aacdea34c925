package projection

import "github.com/fincast/goalplanner/internal/goal"

// Health tiers in ascending coverage order. TierUndefined is the sentinel
// for goals with a non-positive effective target.
var (
	TierUndefined    = goal.HealthTier{Emoji: "⚪", Label: "no goal set"}
	TierVeryWeak     = goal.HealthTier{Emoji: "🔴", Label: "very weak"}
	TierNeedsWork    = goal.HealthTier{Emoji: "🟠", Label: "needs work"}
	TierAlmostThere  = goal.HealthTier{Emoji: "🟡", Label: "almost there"}
	TierOnTrack      = goal.HealthTier{Emoji: "🟢", Label: "on track"}
	TierOverachiever = goal.HealthTier{Emoji: "🏆", Label: "overachiever"}
)

// ScoreHealth maps a coverage ratio to its qualitative tier. Boundaries are
// half-open on the lower bound except the top tier.
func ScoreHealth(effectiveTarget, coverage float64) goal.HealthTier {
	switch {
	case effectiveTarget <= 0:
		return TierUndefined
	case coverage < 0.5:
		return TierVeryWeak
	case coverage < 0.8:
		return TierNeedsWork
	case coverage < 1.0:
		return TierAlmostThere
	case coverage < 1.3:
		return TierOnTrack
	default:
		return TierOverachiever
	}
}
