// Package constants provides shared constants for the goal planner.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Priority bounds for goals
const (
	// MinPriority is the lowest allowed goal priority
	MinPriority = 1

	// MaxPriority is the highest allowed goal priority
	MaxPriority = 5
)

// Projection sampling constants
const (
	// TrajectorySampleInterval selects every Nth month for the display trajectory
	TrajectorySampleInterval = 6
)

// Aggregate analysis constants
const (
	// AllocationIncomeCap is the share of monthly income available for
	// suggested goal contributions
	AllocationIncomeCap = 0.4
)

// Scenario perturbation constants
const (
	// ScenarioExtraYears extends the horizon in the time scenario
	ScenarioExtraYears = 2.0

	// ScenarioExtraContribution raises the monthly contribution in the
	// contribution scenario
	ScenarioExtraContribution = 2000.0

	// ScenarioTargetReduction lowers the target amount in the target scenario
	ScenarioTargetReduction = 200000.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultStorePath is the default location of the persisted portfolio store
	DefaultStorePath = "goalplanner.db"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
)
