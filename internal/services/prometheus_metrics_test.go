package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type PrometheusMetricsSuite struct {
	suite.Suite
	metrics MetricsRecorderInterface
}

func TestPrometheusMetricsSuite(t *testing.T) {
	suite.Run(t, new(PrometheusMetricsSuite))
}

func (s *PrometheusMetricsSuite) SetupTest() {
	s.metrics = NewPrometheusMetrics()
}

func (s *PrometheusMetricsSuite) TestConstructTwiceDoesNotPanic() {
	s.NotPanics(func() {
		_ = NewPrometheusMetrics()
		_ = NewPrometheusMetrics()
	})
}

func (s *PrometheusMetricsSuite) TestExpenseCounters() {
	created := testutil.ToFloat64(expensesCreatedTotal)
	deleted := testutil.ToFloat64(expensesDeletedTotal)

	s.metrics.IncrementCounter("expense_created", nil)
	s.metrics.IncrementCounter("expense_created", nil)
	s.metrics.IncrementCounter("expense_deleted", nil)

	s.Equal(created+2, testutil.ToFloat64(expensesCreatedTotal))
	s.Equal(deleted+1, testutil.ToFloat64(expensesDeletedTotal))
}

func (s *PrometheusMetricsSuite) TestAuthenticationResults() {
	before := testutil.ToFloat64(apiKeyAuthenticationsTotal.WithLabelValues("revoked"))

	s.metrics.IncrementCounter("api_key_authentication", map[string]string{"result": "revoked"})
	s.metrics.IncrementCounter("api_key_authentication", map[string]string{})

	s.Equal(before+1, testutil.ToFloat64(apiKeyAuthenticationsTotal.WithLabelValues("revoked")))
}

func (s *PrometheusMetricsSuite) TestGaugeAndDuration() {
	s.metrics.RecordGauge("expenses_stored", 12, nil)
	s.Equal(float64(12), testutil.ToFloat64(expensesStored))

	s.NotPanics(func() {
		s.metrics.RecordProcessingTime("expense_list", 3*time.Millisecond)
		s.metrics.RecordProcessingTime("unknown", time.Second)
	})
}
