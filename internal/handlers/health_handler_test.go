package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type stubStore struct {
	pingErr  error
	count    int64
	countErr error
}

func (s *stubStore) HealthCheck(ctx context.Context) error { return s.pingErr }

func (s *stubStore) Count(ctx context.Context) (int64, error) { return s.count, s.countErr }

type HealthCheckHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	metrics *service_mocks.MockMetricsRecorderInterface
	e       *echo.Echo
}

func TestHealthCheckHandler(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerSuite))
}

func (s *HealthCheckHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.e = echo.New()
}

func (s *HealthCheckHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HealthCheckHandlerSuite) serve(store *stubStore) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-health")

	s.NoError(NewHealthCheckHandler(store, store, s.metrics).HealthCheck(c))
	return rec
}

func (s *HealthCheckHandlerSuite) TestHealthy() {
	s.metrics.EXPECT().RecordGauge("expenses_stored", float64(3), gomock.Any())

	rec := s.serve(&stubStore{count: 3})

	s.Equal(http.StatusOK, rec.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
	s.NotEmpty(body["time"])
}

func (s *HealthCheckHandlerSuite) TestCountFailureStillHealthy() {
	rec := s.serve(&stubStore{countErr: errors.New("slow")})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HealthCheckHandlerSuite) TestDatabaseDown() {
	rec := s.serve(&stubStore{pingErr: errors.New("connection refused")})

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("SYSTEM_003", resp.Error.Code)
	s.Equal("trace-health", resp.Error.TraceID)
	s.Equal([]string{"Database connection failed"}, resp.Error.Details)
}
