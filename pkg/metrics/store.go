package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// StoreMetrics records record-store operations per collection.
type StoreMetrics struct {
	duration      *prometheus.HistogramVec
	operations    *prometheus.CounterVec
	parseFailures *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "restroboost_store_operation_duration_seconds",
		Help:    "Duration of record store operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection", "op"})
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "restroboost_store_operations_total",
		Help: "Record store operations by outcome.",
	}, []string{"collection", "op", "outcome"})
	parseFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "restroboost_store_parse_failures_total",
		Help: "Stored collections that could not be decoded and were read as empty.",
	}, []string{"collection"})
	reg.MustRegister(duration, operations, parseFailures)
	return &StoreMetrics{
		duration:      duration,
		operations:    operations,
		parseFailures: parseFailures,
	}
}

// Observe records one operation against a collection.
func (s *StoreMetrics) Observe(collection, op string, took time.Duration, err error) {
	if s == nil || s.operations == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	collection = normalizeLabel(collection)
	op = normalizeLabel(op)
	s.duration.WithLabelValues(collection, op).Observe(took.Seconds())
	s.operations.WithLabelValues(collection, op, outcome).Inc()
}

// IncParseFailure counts a stored value that failed to decode.
func (s *StoreMetrics) IncParseFailure(collection string) {
	if s == nil || s.parseFailures == nil {
		return
	}
	s.parseFailures.WithLabelValues(normalizeLabel(collection)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
