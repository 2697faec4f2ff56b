package services

import (
	"context"
	"log/slog"
	"time"

	"opsintel/internal/models"

	"cloud.google.com/go/civil"
)

// maxLoggedQueryLength bounds generated queries in log lines
const maxLoggedQueryLength = 500

type AlertLogger struct {
	logger *slog.Logger
}

func NewAlertLogger(logger *slog.Logger) AlertLoggerInterface {
	return &AlertLogger{
		logger: logger,
	}
}

func (al *AlertLogger) LogDatasetLoaded(ctx context.Context, records, skipped, days int) {
	al.logger.InfoContext(ctx, "dataset loaded",
		slog.String("event_type", "dataset_loaded"),
		slog.Int("records", records),
		slog.Int("skipped_rows", skipped),
		slog.Int("days", days),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *AlertLogger) LogAnomalyDetected(ctx context.Context, day civil.Date, anomaly models.Anomaly) {
	attrs := []any{
		slog.String("event_type", "anomaly_detected"),
		slog.String("day", day.String()),
		slog.String("metric", anomaly.Metric),
		slog.String("period", string(anomaly.Period)),
		slog.String("direction", string(anomaly.Direction)),
		slog.String("severity", string(anomaly.Severity)),
		slog.String("pct_delta", anomaly.PctDelta.StringFixed(2)),
	}
	if anomaly.Attribution != nil {
		attrs = append(attrs, slog.String("top_segment", anomaly.Attribution.Segment))
	}
	attrs = append(attrs,
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)

	if anomaly.Severity == models.SeverityElevated {
		al.logger.WarnContext(ctx, "anomaly detected", attrs...)
		return
	}
	al.logger.InfoContext(ctx, "anomaly detected", attrs...)
}

func (al *AlertLogger) LogDetectionCompleted(ctx context.Context, day civil.Date, anomalies int, durationMs int64) {
	al.logger.InfoContext(ctx, "anomaly detection completed",
		slog.String("event_type", "anomaly_detection_completed"),
		slog.String("day", day.String()),
		slog.Int("anomalies", anomalies),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *AlertLogger) LogQueryRouted(ctx context.Context, requested, chosen models.EngineMode, fallback bool) {
	al.logger.InfoContext(ctx, "query routed",
		slog.String("event_type", "query_routed"),
		slog.String("requested_mode", string(requested)),
		slog.String("engine", string(chosen)),
		slog.Bool("fallback", fallback),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *AlertLogger) LogQueryExecuted(ctx context.Context, engine models.EngineMode, query string, rows int, durationMs int64) {
	al.logger.InfoContext(ctx, "query executed",
		slog.String("event_type", "query_executed"),
		slog.String("engine", string(engine)),
		slog.String("query", truncate(query, maxLoggedQueryLength)),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *AlertLogger) LogQueryFailed(ctx context.Context, engine models.EngineMode, errorMsg string) {
	al.logger.WarnContext(ctx, "query failed",
		slog.String("event_type", "query_failed"),
		slog.String("engine", string(engine)),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (al *AlertLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
