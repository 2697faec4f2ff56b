package services

import (
	"fmt"
	"strings"
	"time"

	"opsintel/internal/models"

	"cloud.google.com/go/civil"
)

const reportWidth = 70

type reportService struct {
	kpiService     KPIServiceInterface
	anomalyService AnomalyServiceInterface
	formatter      AlertFormatterInterface
}

func NewReportService(
	kpiService KPIServiceInterface,
	anomalyService AnomalyServiceInterface,
	formatter AlertFormatterInterface,
) ReportServiceInterface {
	return &reportService{
		kpiService:     kpiService,
		anomalyService: anomalyService,
		formatter:      formatter,
	}
}

// DailyReport gathers variances, alerts and the top products of the day.
// The detection runs on the same day as the report.
func (s *reportService) DailyReport(day *civil.Date, opts models.DetectionOptions) (*models.DailyReport, error) {
	opts.Day = day

	result, err := s.anomalyService.DetectAnomalies(opts)
	if err != nil {
		return nil, err
	}

	breakdowns, err := s.kpiService.SegmentBreakdowns(&result.Variance.Day)
	if err != nil {
		return nil, fmt.Errorf("failed to compute segment breakdowns: %w", err)
	}

	top := breakdowns.Product
	if len(top) > models.TopProductsInReport {
		top = top[:models.TopProductsInReport]
	}

	return &models.DailyReport{
		Day:         result.Variance.Day,
		Variance:    result.Variance,
		Anomalies:   result.Anomalies,
		Alerts:      s.formatter.FormatAlerts(result),
		TopProducts: top,
		GeneratedAt: time.Now(),
	}, nil
}

// RenderReport renders the report as plain text
func (s *reportService) RenderReport(report *models.DailyReport) string {
	rule := strings.Repeat("=", reportWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("📊 RELATÓRIO DIÁRIO DE KPIs E ALERTAS\n")
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "\n📅 Data: %s\n", report.Day)

	v := report.Variance
	fmt.Fprintf(&b, "\n💰 TPV Atual: R$ %s\n", formatCurrency(v.TPVCurrent))
	if v.VarD1Pct.Valid {
		fmt.Fprintf(&b, "   • vs D-1: %s%%\n", signedPct(v.VarD1Pct.Decimal, 2))
	}
	if v.VarD7Pct.Valid {
		fmt.Fprintf(&b, "   • vs D-7: %s%%\n", signedPct(v.VarD7Pct.Decimal, 2))
	}
	if v.Var30dPct.Valid {
		fmt.Fprintf(&b, "   • vs média 30 dias: %s%%\n", signedPct(v.Var30dPct.Decimal, 2))
	}

	if len(report.Alerts) > 0 {
		b.WriteString("\n🚨 ALERTAS DETECTADOS:\n")
		b.WriteString(strings.Repeat("-", reportWidth) + "\n")
		for _, alert := range report.Alerts {
			b.WriteString(alert + "\n")
		}
	} else {
		b.WriteString("\n✅ Nenhuma anomalia detectada\n")
	}

	b.WriteString("\n📊 TOP 3 PRODUTOS POR TPV:\n")
	for i, row := range report.TopProducts {
		fmt.Fprintf(&b, "   %d. %s: R$ %s\n", i+1, row.Value, formatCurrency(row.TPV))
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}
