package services

import (
	"context"
	"time"

	"opsintel/internal/dataset"
	"opsintel/internal/models"

	"cloud.google.com/go/civil"
)

// KPIServiceInterface aggregates the snapshot into daily and per-segment KPIs
type KPIServiceInterface interface {
	DailyKPIs() []models.DailyKPI
	SegmentBreakdowns(day *civil.Date) (*models.SegmentBreakdowns, error)
}

// VarianceServiceInterface compares a day's volume against its references
type VarianceServiceInterface interface {
	Variances(day *civil.Date) (*models.VarianceRecord, error)
}

// AnomalyServiceInterface flags variances above the detection threshold
type AnomalyServiceInterface interface {
	DetectAnomalies(opts models.DetectionOptions) (*models.DetectionResult, error)
}

// AlertFormatterInterface renders anomalies as operator-facing text
type AlertFormatterInterface interface {
	FormatAlert(anomaly models.Anomaly, variance *models.VarianceRecord) string
	FormatAlerts(result *models.DetectionResult) []string
}

// ReportServiceInterface builds the daily KPI and alert report
type ReportServiceInterface interface {
	DailyReport(day *civil.Date, opts models.DetectionOptions) (*models.DailyReport, error)
	RenderReport(report *models.DailyReport) string
}

// StoreServiceInterface keeps the relational query store in sync with the snapshot
type StoreServiceInterface interface {
	Sync(ctx context.Context, snapshot *dataset.Snapshot) (int64, error)
	Reconcile(ctx context.Context) ([]string, error)
}

// EngineRouterInterface picks a query engine for a question
type EngineRouterInterface interface {
	Route(question string) models.EngineMode
}

// QueryEngineInterface answers a question with a tabular result
type QueryEngineInterface interface {
	Mode() models.EngineMode
	Run(ctx context.Context, question string) (*models.EngineOutcome, error)
}

// AssistantServiceInterface answers natural-language questions over the dataset
type AssistantServiceInterface interface {
	Ask(ctx context.Context, question string, mode models.EngineMode, interpret bool) (*models.AssistantAnswer, error)
	CompareEngines(ctx context.Context, question string) (*models.EngineComparison, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type AlertLoggerInterface interface {
	LogDatasetLoaded(ctx context.Context, records, skipped, days int)
	LogAnomalyDetected(ctx context.Context, day civil.Date, anomaly models.Anomaly)
	LogDetectionCompleted(ctx context.Context, day civil.Date, anomalies int, durationMs int64)
	LogQueryRouted(ctx context.Context, requested, chosen models.EngineMode, fallback bool)
	LogQueryExecuted(ctx context.Context, engine models.EngineMode, query string, rows int, durationMs int64)
	LogQueryFailed(ctx context.Context, engine models.EngineMode, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}
