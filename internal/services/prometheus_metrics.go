package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	anomaliesDetected   *prometheus.CounterVec
	detectionDuration   prometheus.Histogram
	datasetRecords      prometheus.Gauge
	queryRequests       *prometheus.CounterVec
	queryDuration       prometheus.Histogram
	llmRequests         *prometheus.CounterVec
	llmDuration         prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the collectors on reg
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		anomaliesDetected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anomalies_detected_total",
				Help: "Total number of TPV anomalies detected",
			},
			[]string{"period", "severity"},
		),
		detectionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "anomaly_detection_duration_milliseconds",
				Help:    "Anomaly detection duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		datasetRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dataset_records",
				Help: "Number of transaction records in the query store",
			},
		),
		queryRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "query_requests_total",
				Help: "Total number of assistant queries by engine",
			},
			[]string{"engine", "status"},
		),
		queryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "query_duration_seconds",
				Help:    "Assistant query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		llmRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_requests_total",
				Help: "Total number of language model calls",
			},
			[]string{"status"},
		),
		llmDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "llm_request_duration_seconds",
				Help:    "Language model call duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "anomaly.detected":
		m.anomaliesDetected.WithLabelValues(tags["period"], tags["severity"]).Inc()
	case "query.request":
		m.queryRequests.WithLabelValues(tags["engine"], status).Inc()
	case "llm.request":
		if status != "" {
			m.llmRequests.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "anomaly.detection":
		m.detectionDuration.Observe(float64(duration.Milliseconds()))
	case "query.duration":
		m.queryDuration.Observe(duration.Seconds())
	case "llm.request":
		m.llmDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "dataset.records":
		m.datasetRecords.Set(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
