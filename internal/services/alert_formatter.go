package services

import (
	"fmt"
	"strings"

	"opsintel/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	alertIconElevated = "⚠️"
	alertIconModerate = "ℹ️"
)

var currencyPrinter = message.NewPrinter(language.English)

type alertFormatter struct{}

func NewAlertFormatter() AlertFormatterInterface {
	return &alertFormatter{}
}

// FormatAlert renders one anomaly as a multi-line alert:
//
//	⚠️ ALERTA [ALTA]: ALTA de TPV +25.0% vs D-1
//	   • Principal produto: pix (TPV: R$ 1,234.56)
//	   • TPV atual: R$ 12,345.67
func (f *alertFormatter) FormatAlert(anomaly models.Anomaly, variance *models.VarianceRecord) string {
	icon, severity := alertIconModerate, "MÉDIA"
	if anomaly.Severity == models.SeverityElevated {
		icon, severity = alertIconElevated, "ALTA"
	}

	kind := "ALTA"
	if anomaly.Direction == models.DirectionDecrease {
		kind = "QUEDA"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s ALERTA [%s]: %s de %s %s%% vs %s\n",
		icon, severity, kind, anomaly.Metric, signedPct(anomaly.PctDelta, 1), periodAlertLabel(anomaly.Period))

	if anomaly.Attribution != nil {
		fmt.Fprintf(&b, "   • Principal produto: %s (TPV: R$ %s)\n",
			anomaly.Attribution.Segment, formatCurrency(anomaly.Attribution.TPV))
	}

	if variance != nil {
		fmt.Fprintf(&b, "   • TPV atual: R$ %s\n", formatCurrency(variance.TPVCurrent))
	}

	return b.String()
}

// FormatAlerts renders every anomaly of a detection call in order
func (f *alertFormatter) FormatAlerts(result *models.DetectionResult) []string {
	if result == nil {
		return nil
	}

	alerts := make([]string, 0, len(result.Anomalies))
	for _, anomaly := range result.Anomalies {
		alerts = append(alerts, f.FormatAlert(anomaly, result.Variance))
	}
	return alerts
}

// formatCurrency formats with comma thousands separators and two decimals.
// Only the integer part goes through the printer so cents stay exact.
func formatCurrency(amount decimal.Decimal) string {
	rounded := amount.RoundBank(2)
	fixed := rounded.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	integer := rounded.Abs().Truncate(0).BigInt()
	if integer.IsInt64() {
		whole = currencyPrinter.Sprintf("%d", integer.Int64())
	}

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + whole + "." + cents
}

// signedPct prefixes a plus sign only for strictly positive values. Ties round to even.
func signedPct(pct decimal.Decimal, places int32) string {
	text := pct.RoundBank(places).StringFixed(places)
	if pct.IsPositive() {
		return "+" + text
	}
	return text
}

func periodAlertLabel(period models.Period) string {
	switch period {
	case models.PeriodPreviousDay:
		return "D-1"
	case models.PeriodWeekAgo:
		return "D-7"
	case models.PeriodTrailing30d:
		return "média 30 dias"
	default:
		return string(period)
	}
}
