package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-api/internal/models"
	"expense-api/internal/repositories"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrNilExpense      = errors.New("expense is required")
)

// ExpenseService handles expense operations on top of the record store
type ExpenseService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	logger      ExpenseLoggerInterface
	metrics     MetricsRecorderInterface
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repositories.ExpenseRepositoryInterface, logger ExpenseLoggerInterface, metrics MetricsRecorderInterface) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
		metrics:     metrics,
	}
}

// CreateExpense persists a new expense, assigning its id and timestamps
func (s *ExpenseService) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return ErrNilExpense
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	s.logger.LogExpenseCreated(ctx, expense)
	s.metrics.IncrementCounter("expense_created", nil)

	return nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, id int64) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			s.logger.LogExpenseNotFound(ctx, id)
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// ListExpenses returns every expense matching filters in insertion order
func (s *ExpenseService) ListExpenses(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, error) {
	start := time.Now()

	expenses, err := s.expenseRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	duration := time.Since(start)
	s.logger.LogExpensesListed(ctx, filters, len(expenses), duration.Milliseconds())
	s.metrics.RecordProcessingTime("expense_list", duration)

	return expenses, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			s.logger.LogExpenseNotFound(ctx, id)
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.logger.LogExpenseDeleted(ctx, id)
	s.metrics.IncrementCounter("expense_deleted", nil)

	return nil
}
