// Package normalize coerces raw textual goal fields into numeric values.
//
// Normalization is total: anything that fails to parse as a finite number,
// including the empty string, resolves to zero. The fallback contract lives
// here and nowhere else so it stays auditable in isolation.
package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/fincast/goalplanner/pkg/constants"
)

// Number parses a free-form text field into a float64. Empty, non-numeric,
// or non-finite input resolves to 0.
func Number(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

// Priority parses a free-form priority field and clamps it into the allowed
// range. Unparseable input resolves to 0 before clamping, so it lands on the
// minimum priority.
func Priority(raw string) int {
	return ClampPriority(int(math.Round(Number(raw))))
}

// ClampPriority forces a priority into [MinPriority, MaxPriority].
func ClampPriority(priority int) int {
	if priority < constants.MinPriority {
		return constants.MinPriority
	}
	if priority > constants.MaxPriority {
		return constants.MaxPriority
	}
	return priority
}

// Months converts a horizon in years to a month count, never less than one.
func Months(years float64) int {
	months := int(math.Round(years * constants.MonthsPerYear))
	if months < 1 {
		return 1
	}
	return months
}
