package services_test

import (
	"testing"

	"opsintel/internal/models"
	"opsintel/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAlert(t *testing.T) {
	formatter := services.NewAlertFormatter()
	variance := &models.VarianceRecord{TPVCurrent: dec("12345.67")}
	attribution := &models.Attribution{Dimension: models.SegmentProduct, Segment: "pix", TPV: dec("1234.56")}

	tests := []struct {
		name     string
		anomaly  models.Anomaly
		expected string
	}{
		{
			name: "elevated increase",
			anomaly: models.Anomaly{
				Direction:   models.DirectionIncrease,
				Metric:      models.MetricTPV,
				PctDelta:    dec("25"),
				Period:      models.PeriodPreviousDay,
				Severity:    models.SeverityElevated,
				Attribution: attribution,
			},
			expected: "⚠️ ALERTA [ALTA]: ALTA de TPV +25.0% vs D-1\n" +
				"   • Principal produto: pix (TPV: R$ 1,234.56)\n" +
				"   • TPV atual: R$ 12,345.67\n",
		},
		{
			name: "moderate decrease against week ago",
			anomaly: models.Anomaly{
				Direction:   models.DirectionDecrease,
				Metric:      models.MetricTPV,
				PctDelta:    dec("-16.04"),
				Period:      models.PeriodWeekAgo,
				Severity:    models.SeverityModerate,
				Attribution: attribution,
			},
			expected: "ℹ️ ALERTA [MÉDIA]: QUEDA de TPV -16.0% vs D-7\n" +
				"   • Principal produto: pix (TPV: R$ 1,234.56)\n" +
				"   • TPV atual: R$ 12,345.67\n",
		},
		{
			name: "trailing average without attribution",
			anomaly: models.Anomaly{
				Direction: models.DirectionIncrease,
				Metric:    models.MetricTPV,
				PctDelta:  dec("20"),
				Period:    models.PeriodTrailing30d,
				Severity:  models.SeverityModerate,
			},
			expected: "ℹ️ ALERTA [MÉDIA]: ALTA de TPV +20.0% vs média 30 dias\n" +
				"   • TPV atual: R$ 12,345.67\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.FormatAlert(tt.anomaly, variance))
		})
	}
}

func TestFormatAlert_LargeAmounts(t *testing.T) {
	formatter := services.NewAlertFormatter()
	anomaly := models.Anomaly{
		Direction: models.DirectionIncrease,
		Metric:    models.MetricTPV,
		PctDelta:  dec("18.25"),
		Period:    models.PeriodPreviousDay,
		Severity:  models.SeverityModerate,
	}

	out := formatter.FormatAlert(anomaly, &models.VarianceRecord{TPVCurrent: dec("8140541234.5")})

	assert.Contains(t, out, "+18.2% vs D-1")
	assert.Contains(t, out, "R$ 8,140,541,234.50")
}

func TestFormatAlert_ExactCents(t *testing.T) {
	formatter := services.NewAlertFormatter()
	anomaly := models.Anomaly{
		Direction: models.DirectionDecrease,
		Metric:    models.MetricTPV,
		PctDelta:  dec("-18.35"),
		Period:    models.PeriodWeekAgo,
		Severity:  models.SeverityModerate,
	}

	out := formatter.FormatAlert(anomaly, &models.VarianceRecord{TPVCurrent: dec("92233720368547758.07")})

	assert.Contains(t, out, "-18.4% vs D-7")
	assert.Contains(t, out, "R$ 92,233,720,368,547,758.07")
}

func TestFormatAlerts(t *testing.T) {
	formatter := services.NewAlertFormatter()
	result := &models.DetectionResult{
		Variance: &models.VarianceRecord{TPVCurrent: decimal.NewFromInt(100)},
		Anomalies: []models.Anomaly{
			{Direction: models.DirectionIncrease, Metric: models.MetricTPV, PctDelta: dec("30"), Period: models.PeriodPreviousDay, Severity: models.SeverityElevated},
			{Direction: models.DirectionIncrease, Metric: models.MetricTPV, PctDelta: dec("16"), Period: models.PeriodWeekAgo, Severity: models.SeverityModerate},
		},
	}

	alerts := formatter.FormatAlerts(result)

	assert.Len(t, alerts, 2)
	assert.Contains(t, alerts[0], "vs D-1")
	assert.Contains(t, alerts[1], "vs D-7")
	assert.Nil(t, formatter.FormatAlerts(nil))
}
