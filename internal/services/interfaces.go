package services

import (
	"context"
	"time"

	"expense-api/internal/models"
)

// ExpenseServiceInterface defines expense business operations
type ExpenseServiceInterface interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, id int64) (*models.Expense, error)
	ListExpenses(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}

// APIKeyServiceInterface issues and verifies API keys
type APIKeyServiceInterface interface {
	// ExtractKeyFromHeader returns the key carried by an "Api-Key <value>" Authorization header
	ExtractKeyFromHeader(authHeader string) (string, error)

	// Authenticate resolves a presented key to its stored record
	Authenticate(ctx context.Context, presentedKey string) (*models.APIKey, error)

	// IssueKey creates a key; the full value is only ever available on the returned IssuedAPIKey
	IssueKey(ctx context.Context, name string, expiresIn time.Duration) (*IssuedAPIKey, error)

	ListKeys(ctx context.Context) ([]models.APIKey, error)
	RevokeKey(ctx context.Context, prefix string) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// ExpenseLoggerInterface provides structured logging for expense and credential events
type ExpenseLoggerInterface interface {
	LogExpenseCreated(ctx context.Context, expense *models.Expense)
	LogExpenseDeleted(ctx context.Context, id int64)
	LogExpenseNotFound(ctx context.Context, id int64)
	LogExpensesListed(ctx context.Context, filters models.ExpenseFilters, resultsCount int, durationMs int64)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogAuthenticationFailure(ctx context.Context, reason string, keyPrefix string)
	LogAPIKeyIssued(ctx context.Context, key *models.APIKey)
	LogAPIKeyRevoked(ctx context.Context, prefix string)
}
