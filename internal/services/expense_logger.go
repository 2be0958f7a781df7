package services

import (
	"context"
	"log/slog"
	"time"

	"expense-api/internal/models"
)

type requestIDKey struct{}

// RequestIDContextKey carries the trace id through context.Context
var RequestIDContextKey = requestIDKey{}

// WithRequestID returns a child context carrying the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// ExpenseLogger provides structured logging for expense-related operations
type ExpenseLogger struct {
	logger *slog.Logger
}

// NewExpenseLogger creates a new expense logger
func NewExpenseLogger(logger *slog.Logger) ExpenseLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseLogger{
		logger: logger,
	}
}

func (el *ExpenseLogger) LogExpenseCreated(ctx context.Context, expense *models.Expense) {
	el.logger.InfoContext(ctx, "expense created",
		slog.String("event_type", "expense_created"),
		slog.Int64("expense_id", expense.ID),
		slog.String("merchant", expense.Merchant),
		slog.String("category", expense.Category),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (el *ExpenseLogger) LogExpenseDeleted(ctx context.Context, id int64) {
	el.logger.InfoContext(ctx, "expense deleted",
		slog.String("event_type", "expense_deleted"),
		slog.Int64("expense_id", id),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (el *ExpenseLogger) LogExpenseNotFound(ctx context.Context, id int64) {
	el.logger.DebugContext(ctx, "expense not found",
		slog.String("event_type", "expense_not_found"),
		slog.Int64("expense_id", id),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (el *ExpenseLogger) LogExpensesListed(ctx context.Context, filters models.ExpenseFilters, resultsCount int, durationMs int64) {
	el.logger.DebugContext(ctx, "expenses listed",
		slog.String("event_type", "expenses_listed"),
		slog.String("merchant_filter", filters.Merchant),
		slog.Int("results_count", resultsCount),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (el *ExpenseLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	el.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogAuthenticationFailure never logs the secret part of a key
func (el *ExpenseLogger) LogAuthenticationFailure(ctx context.Context, reason string, keyPrefix string) {
	el.logger.WarnContext(ctx, "authentication failure",
		slog.String("event_type", "authentication_failure"),
		slog.String("reason", reason),
		slog.String("key_prefix", keyPrefix),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (el *ExpenseLogger) LogAPIKeyIssued(ctx context.Context, key *models.APIKey) {
	attrs := []any{
		slog.String("event_type", "api_key_issued"),
		slog.String("key_prefix", key.Prefix),
		slog.String("name", key.Name),
	}
	if key.ExpiresAt != nil {
		attrs = append(attrs, slog.Time("expires_at", *key.ExpiresAt))
	}
	el.logger.InfoContext(ctx, "api key issued", attrs...)
}

func (el *ExpenseLogger) LogAPIKeyRevoked(ctx context.Context, prefix string) {
	el.logger.InfoContext(ctx, "api key revoked",
		slog.String("event_type", "api_key_revoked"),
		slog.String("key_prefix", prefix),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDContextKey).(string); ok {
		return requestID
	}
	return ""
}
