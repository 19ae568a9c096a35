// Package planner contains the cash flow planning pipeline: frequency
// normalization, per-account aggregation, and transfer suggestions.
package planner

import (
	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// Conversion factors are derived from calendar averages: 52 weeks, 26
// fortnights, 12 months, and 4 quarters per year.
var (
	twelve            = decimal.NewFromInt(12)
	weeksPerYear      = decimal.NewFromInt(52)
	fortnightsPerYear = decimal.NewFromInt(26)
	quartersPerYear   = decimal.NewFromInt(4)
)

// NormalizeToMonthly converts an amount recorded at the given cadence into
// its monthly equivalent. The scaling is linear and applies no rounding;
// rounding is a presentation concern for the caller.
func NormalizeToMonthly(amount decimal.Decimal, frequency entity.Frequency) decimal.Decimal {
	switch frequency {
	case entity.FrequencyWeekly:
		return amount.Mul(weeksPerYear).Div(twelve)
	case entity.FrequencyFortnightly:
		return amount.Mul(fortnightsPerYear).Div(twelve)
	case entity.FrequencyMonthly:
		return amount
	case entity.FrequencyQuarterly:
		return amount.Mul(quartersPerYear).Div(twelve)
	case entity.FrequencyYearly:
		return amount.Div(twelve)
	}
	// Unreachable under the closed-enum contract; frequencies are validated
	// where external data enters the system.
	return amount
}

// ConvertFromMonthly converts a monthly-equivalent amount back to the target
// cadence. Only weekly, fortnightly and monthly are supported: transfers are
// only ever displayed at the cadences a user actually moves money at, so
// quarterly and yearly are normalize-only directions.
func ConvertFromMonthly(monthly decimal.Decimal, target entity.Frequency) (decimal.Decimal, error) {
	switch target {
	case entity.FrequencyWeekly:
		return monthly.Mul(twelve).Div(weeksPerYear), nil
	case entity.FrequencyFortnightly:
		return monthly.Mul(twelve).Div(fortnightsPerYear), nil
	case entity.FrequencyMonthly:
		return monthly, nil
	}
	return decimal.Zero, domainerror.NewPlannerError(
		domainerror.ErrCodeUnsupportedTargetFrequency,
		"cannot convert a monthly amount to "+string(target),
		domainerror.ErrUnsupportedTargetFrequency,
	)
}
