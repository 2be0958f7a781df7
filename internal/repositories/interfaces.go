package repositories

import (
	"context"

	"expense-api/internal/models"
)

// ExpenseRepositoryInterface defines the contract for expense record storage
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id int64) (*models.Expense, error)
	List(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// APIKeyRepositoryInterface defines the contract for the API key store
type APIKeyRepositoryInterface interface {
	Create(ctx context.Context, key *models.APIKey) error
	GetByPrefix(ctx context.Context, prefix string) (*models.APIKey, error)
	List(ctx context.Context) ([]models.APIKey, error)
	Revoke(ctx context.Context, prefix string) error
}
