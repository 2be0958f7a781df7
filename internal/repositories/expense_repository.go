package repositories

import (
	"context"
	"errors"
	"fmt"

	"expense-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{db: db}
}

// Create inserts the expense; the database assigns the ID and the model hooks stamp both timestamps.
func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id int64) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.WithContext(ctx).First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	return &expense, nil
}

// List returns expenses in insertion order, restricted to an exact merchant match when one is given.
func (r *expenseRepository) List(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)

	query := r.db.WithContext(ctx).Model(&models.Expense{})
	if filters.Merchant != "" {
		query = query.Where("merchant = ?", filters.Merchant)
	}

	if err := query.Order("id ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}

// Delete permanently removes the row.
func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Expense{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Expense{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
