package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"opsintel/internal/models"
)

var (
	ErrInvalidThreshold = errors.New("threshold cannot be negative")
)

type anomalyService struct {
	kpiService      KPIServiceInterface
	varianceService VarianceServiceInterface
	alertLogger     AlertLoggerInterface
	metrics         MetricsRecorderInterface
}

func NewAnomalyService(
	kpiService KPIServiceInterface,
	varianceService VarianceServiceInterface,
	alertLogger AlertLoggerInterface,
	metrics MetricsRecorderInterface,
) AnomalyServiceInterface {
	return &anomalyService{
		kpiService:      kpiService,
		varianceService: varianceService,
		alertLogger:     alertLogger,
		metrics:         metrics,
	}
}

// DetectAnomalies evaluates the requested day, or the latest day when none is given
func (s *anomalyService) DetectAnomalies(opts models.DetectionOptions) (*models.DetectionResult, error) {
	startTime := time.Now()

	if opts.ThresholdPct.IsNegative() {
		return nil, ErrInvalidThreshold
	}
	if opts.ZScoreThreshold.Valid && opts.ZScoreThreshold.Decimal.IsNegative() {
		return nil, fmt.Errorf("%w: zscore", ErrInvalidThreshold)
	}

	variance, err := s.varianceService.Variances(opts.Day)
	if err != nil {
		return nil, err
	}

	breakdowns, err := s.kpiService.SegmentBreakdowns(&variance.Day)
	if err != nil {
		return nil, fmt.Errorf("failed to compute attribution: %w", err)
	}
	top, hasTop := breakdowns.TopProduct()

	anomalies := make([]models.Anomaly, 0, len(models.Periods))
	for _, period := range models.Periods {
		delta := variance.Delta(period)
		if !delta.Valid || !delta.Decimal.Abs().GreaterThan(opts.ThresholdPct) {
			continue
		}

		anomaly := models.Anomaly{
			Direction: models.DirectionOf(delta.Decimal),
			Metric:    models.MetricTPV,
			PctDelta:  delta.Decimal,
			Period:    period,
			Severity:  models.SeverityOf(delta.Decimal),
		}

		if period == models.PeriodTrailing30d {
			if opts.ZScoreThreshold.Valid {
				if !variance.ZScore30d.Valid || variance.ZScore30d.Decimal.Abs().LessThan(opts.ZScoreThreshold.Decimal) {
					continue
				}
			}
			anomaly.ZScore = variance.ZScore30d
		}

		if hasTop {
			anomaly.Attribution = &models.Attribution{
				Dimension: models.SegmentProduct,
				Segment:   top.Value,
				TPV:       top.TPV,
			}
		}

		anomalies = append(anomalies, anomaly)
	}

	ctx := context.Background()
	for _, anomaly := range anomalies {
		s.alertLogger.LogAnomalyDetected(ctx, variance.Day, anomaly)
		s.metrics.IncrementCounter("anomaly.detected", map[string]string{
			"period":   string(anomaly.Period),
			"severity": string(anomaly.Severity),
		})
	}

	duration := time.Since(startTime)
	s.metrics.RecordProcessingTime("anomaly.detection", duration)
	s.alertLogger.LogDetectionCompleted(ctx, variance.Day, len(anomalies), duration.Milliseconds())

	return &models.DetectionResult{
		Anomalies: anomalies,
		Variance:  variance,
	}, nil
}
