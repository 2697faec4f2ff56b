package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Direction of a TPV variation
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// Severity of an anomaly
type Severity string

const (
	SeverityModerate Severity = "moderate"
	SeverityElevated Severity = "elevated"
)

// Period identifies the reference an anomaly was measured against
type Period string

const (
	PeriodPreviousDay Period = "previous_day"
	PeriodWeekAgo     Period = "same_day_last_week"
	PeriodTrailing30d Period = "trailing_30d_average"
)

// Periods lists the evaluated references in detection order
var Periods = []Period{PeriodPreviousDay, PeriodWeekAgo, PeriodTrailing30d}

const (
	MetricTPV = "TPV"

	// DefaultThresholdPct is the absolute percentage delta above which a variation is an anomaly
	DefaultThresholdPct = 15
	// ElevatedSeverityPct is the absolute percentage delta above which an anomaly is elevated
	ElevatedSeverityPct = 20
)

var elevatedSeverity = decimal.NewFromInt(ElevatedSeverityPct)

// Label returns the human-readable label of the period
func (p Period) Label() string {
	switch p {
	case PeriodPreviousDay:
		return "previous day"
	case PeriodWeekAgo:
		return "same day one week prior"
	case PeriodTrailing30d:
		return "trailing 30-day average"
	default:
		return string(p)
	}
}

// Attribution names the segment with the largest volume on the detection day
type Attribution struct {
	Dimension string          `json:"dimension"`
	Segment   string          `json:"segment"`
	TPV       decimal.Decimal `json:"tpv"`
}

// Anomaly is a variation whose absolute delta exceeded the detection threshold
type Anomaly struct {
	Direction   Direction           `json:"direction"`
	Metric      string              `json:"metric"`
	PctDelta    decimal.Decimal     `json:"pct_delta"`
	Period      Period              `json:"period"`
	Severity    Severity            `json:"severity"`
	ZScore      decimal.NullDecimal `json:"zscore"`
	Attribution *Attribution        `json:"attribution,omitempty"`
}

// DetectionOptions configures a detection call. A nil Day resolves to the latest day;
// an invalid ZScoreThreshold disables the z-score gate.
type DetectionOptions struct {
	ThresholdPct    decimal.Decimal
	ZScoreThreshold decimal.NullDecimal
	Day             *civil.Date
}

// DefaultDetectionOptions returns options with the default threshold on the latest day
func DefaultDetectionOptions() DetectionOptions {
	return DetectionOptions{ThresholdPct: decimal.NewFromInt(DefaultThresholdPct)}
}

// DetectionResult is the outcome of a detection call
type DetectionResult struct {
	Anomalies []Anomaly       `json:"anomalies"`
	Variance  *VarianceRecord `json:"variance"`
}

// DirectionOf returns decrease for negative deltas and increase otherwise
func DirectionOf(delta decimal.Decimal) Direction {
	if delta.IsNegative() {
		return DirectionDecrease
	}
	return DirectionIncrease
}

// SeverityOf returns elevated when the absolute delta is strictly above 20 points
func SeverityOf(delta decimal.Decimal) Severity {
	if delta.Abs().GreaterThan(elevatedSeverity) {
		return SeverityElevated
	}
	return SeverityModerate
}
