package services_test

import (
	"context"
	"errors"
	"testing"

	"expense-api/internal/models"
	"expense-api/internal/repositories"
	"expense-api/internal/repositories/repository_mocks"
	"expense-api/internal/services"
	"expense-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	logger      *service_mocks.MockExpenseLoggerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     services.ExpenseServiceInterface
	ctx         context.Context
}

func TestExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}

func (s *ExpenseServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.logger = service_mocks.NewMockExpenseLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = services.NewExpenseService(s.expenseRepo, s.logger, s.metrics)
	s.ctx = context.Background()
}

func (s *ExpenseServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseServiceSuite) TestCreateExpense_Success() {
	expense := &models.Expense{Amount: decimal.NewFromInt(100), Merchant: "AT&T", Description: "cell phone bill", Category: "utilities"}

	s.expenseRepo.EXPECT().Create(s.ctx, expense).DoAndReturn(func(_ context.Context, e *models.Expense) error {
		e.ID = 1
		return nil
	})
	s.logger.EXPECT().LogExpenseCreated(s.ctx, expense)
	s.metrics.EXPECT().IncrementCounter("expense_created", gomock.Any())

	err := s.service.CreateExpense(s.ctx, expense)

	s.NoError(err)
	s.Equal(int64(1), expense.ID)
}

func (s *ExpenseServiceSuite) TestCreateExpense_Nil() {
	err := s.service.CreateExpense(s.ctx, nil)

	s.ErrorIs(err, services.ErrNilExpense)
}

func (s *ExpenseServiceSuite) TestCreateExpense_RepositoryError() {
	dbErr := errors.New("connection reset")
	s.expenseRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(dbErr)

	err := s.service.CreateExpense(s.ctx, &models.Expense{})

	s.ErrorIs(err, dbErr)
}

func (s *ExpenseServiceSuite) TestGetExpense_Success() {
	expected := &models.Expense{ID: 3, Merchant: "Amazon"}
	s.expenseRepo.EXPECT().GetByID(s.ctx, int64(3)).Return(expected, nil)

	expense, err := s.service.GetExpense(s.ctx, 3)

	s.NoError(err)
	s.Same(expected, expense)
}

func (s *ExpenseServiceSuite) TestGetExpense_NotFound() {
	s.expenseRepo.EXPECT().GetByID(s.ctx, int64(9)).Return(nil, repositories.ErrExpenseNotFound)
	s.logger.EXPECT().LogExpenseNotFound(s.ctx, int64(9))

	expense, err := s.service.GetExpense(s.ctx, 9)

	s.Nil(expense)
	s.ErrorIs(err, services.ErrExpenseNotFound)
}

func (s *ExpenseServiceSuite) TestGetExpense_RepositoryError() {
	s.expenseRepo.EXPECT().GetByID(s.ctx, int64(9)).Return(nil, errors.New("timeout"))

	_, err := s.service.GetExpense(s.ctx, 9)

	s.Error(err)
	s.NotErrorIs(err, services.ErrExpenseNotFound)
}

func (s *ExpenseServiceSuite) TestListExpenses_PassesFilters() {
	filters := models.ExpenseFilters{Merchant: "John"}
	rows := []models.Expense{{ID: 1, Merchant: "John"}, {ID: 4, Merchant: "John"}}

	s.expenseRepo.EXPECT().List(s.ctx, filters).Return(rows, nil)
	s.logger.EXPECT().LogExpensesListed(s.ctx, filters, 2, gomock.Any())
	s.metrics.EXPECT().RecordProcessingTime("expense_list", gomock.Any())

	expenses, err := s.service.ListExpenses(s.ctx, filters)

	s.NoError(err)
	s.Equal(rows, expenses)
}

func (s *ExpenseServiceSuite) TestListExpenses_RepositoryError() {
	s.expenseRepo.EXPECT().List(s.ctx, gomock.Any()).Return(nil, errors.New("boom"))

	expenses, err := s.service.ListExpenses(s.ctx, models.ExpenseFilters{})

	s.Nil(expenses)
	s.Error(err)
}

func (s *ExpenseServiceSuite) TestDeleteExpense_Success() {
	s.expenseRepo.EXPECT().Delete(s.ctx, int64(5)).Return(nil)
	s.logger.EXPECT().LogExpenseDeleted(s.ctx, int64(5))
	s.metrics.EXPECT().IncrementCounter("expense_deleted", gomock.Any())

	s.NoError(s.service.DeleteExpense(s.ctx, 5))
}

func (s *ExpenseServiceSuite) TestDeleteExpense_NotFound() {
	s.expenseRepo.EXPECT().Delete(s.ctx, int64(5)).Return(repositories.ErrExpenseNotFound)
	s.logger.EXPECT().LogExpenseNotFound(s.ctx, int64(5))

	s.ErrorIs(s.service.DeleteExpense(s.ctx, 5), services.ErrExpenseNotFound)
}
