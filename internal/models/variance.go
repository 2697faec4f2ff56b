package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

const (
	// TrailingWindowDays is the length of the window preceding the target day
	TrailingWindowDays = 30
)

var hundred = decimal.NewFromInt(100)

// VarianceRecord compares the TPV of a day against D-1, D-7 and the trailing 30-day mean.
// Every reference field is null when the reference has no data.
type VarianceRecord struct {
	Day          civil.Date          `json:"day"`
	TPVCurrent   decimal.Decimal     `json:"tpv_current"`
	TPVD1        decimal.NullDecimal `json:"tpv_d1"`
	VarD1Pct     decimal.NullDecimal `json:"var_d1_pct"`
	TPVD7        decimal.NullDecimal `json:"tpv_d7"`
	VarD7Pct     decimal.NullDecimal `json:"var_d7_pct"`
	TPVAvg30d    decimal.NullDecimal `json:"tpv_avg_30d"`
	Var30dPct    decimal.NullDecimal `json:"var_30d_pct"`
	ZScore30d    decimal.NullDecimal `json:"zscore_30d"`
	DaysInWindow int                 `json:"days_in_window"`
}

// Delta returns the percentage delta recorded for a period
func (v *VarianceRecord) Delta(period Period) decimal.NullDecimal {
	switch period {
	case PeriodPreviousDay:
		return v.VarD1Pct
	case PeriodWeekAgo:
		return v.VarD7Pct
	case PeriodTrailing30d:
		return v.Var30dPct
	default:
		return decimal.NullDecimal{}
	}
}

// PercentChange returns (current - reference) / reference * 100, null when reference is zero
func PercentChange(current, reference decimal.Decimal) decimal.NullDecimal {
	if reference.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(current.Sub(reference).Div(reference).Mul(hundred))
}
