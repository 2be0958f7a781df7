package handlers

import (
	"context"
	"net/http"
	"time"

	"expense-api/internal/errors"
	"expense-api/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthChecker reports whether the record store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ExpenseCounter reports the number of stored expenses
type ExpenseCounter interface {
	Count(ctx context.Context) (int64, error)
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      HealthChecker
	counter ExpenseCounter
	metrics services.MetricsRecorderInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker, counter ExpenseCounter, metrics services.MetricsRecorderInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, counter: counter, metrics: metrics}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.db.HealthCheck(ctx); err != nil {
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceID(c),
			errors.WithDetails("Database connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	// Sampling the row count is best effort; a failure does not make the service unhealthy.
	if count, err := h.counter.Count(ctx); err == nil {
		h.metrics.RecordGauge("expenses_stored", float64(count), nil)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
