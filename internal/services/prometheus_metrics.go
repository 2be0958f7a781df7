package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors are registered once on the default registry; PrometheusMetrics
// values share them so constructing several recorders is safe.
var (
	expensesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "expenses_created_total",
			Help: "Total number of expenses created",
		},
	)
	expensesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "expenses_deleted_total",
			Help: "Total number of expenses deleted",
		},
	)
	expensesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "expenses_stored",
			Help: "Number of expenses currently stored, sampled by the health check",
		},
	)
	expenseListDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "expense_list_duration_seconds",
			Help:    "Expense listing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
	apiKeyAuthenticationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_key_authentications_total",
			Help: "Total number of API key authentication attempts by result",
		},
		[]string{"result"},
	)
)

type PrometheusMetrics struct {
	expensesCreated     prometheus.Counter
	expensesDeleted     prometheus.Counter
	expensesStored      prometheus.Gauge
	expenseListDuration prometheus.Histogram
	authentications     *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesCreated:     expensesCreatedTotal,
		expensesDeleted:     expensesDeletedTotal,
		expensesStored:      expensesStored,
		expenseListDuration: expenseListDuration,
		authentications:     apiKeyAuthenticationsTotal,
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "expense_created":
		m.expensesCreated.Inc()
	case "expense_deleted":
		m.expensesDeleted.Inc()
	case "api_key_authentication":
		if result := tags["result"]; result != "" {
			m.authentications.WithLabelValues(result).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "expense_list":
		m.expenseListDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "expenses_stored":
		m.expensesStored.Set(value)
	}
}
