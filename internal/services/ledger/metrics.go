package ledger

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// MetricsCollector records ledger operation outcomes.
type MetricsCollector interface {
	RecordOperation(operation, result string)
	RecordOperationDuration(operation string, duration time.Duration)
	RecordVolume(operation string, amount decimal.Decimal)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperation(string, string)                {}
func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}
func (n *NoopMetricsCollector) RecordVolume(string, decimal.Decimal)          {}
func (n *NoopMetricsCollector) RecordError(string, string)                    {}

// PrometheusMetrics exposes ledger metrics on the default registry.
type PrometheusMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	volumeTotal       *prometheus.CounterVec
	errorsTotal       *prometheus.CounterVec
}

func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		operationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by result",
			},
			[]string{"operation", "result"},
		),
		operationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_milliseconds",
				Help:    "Ledger operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		volumeTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_volume_dollars_total",
				Help: "Total committed volume in dollars",
			},
			[]string{"operation"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_errors_total",
				Help: "Total number of ledger errors by type",
			},
			[]string{"operation", "type"},
		),
	}
}

func (m *PrometheusMetrics) RecordOperation(operation, result string) {
	m.operationsTotal.WithLabelValues(operation, result).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordVolume(operation string, amount decimal.Decimal) {
	f, _ := amount.Float64()
	m.volumeTotal.WithLabelValues(operation).Add(f)
}

func (m *PrometheusMetrics) RecordError(operation, errType string) {
	m.errorsTotal.WithLabelValues(operation, errType).Inc()
}
