package repositories

import (
	"context"
	"testing"

	"expense-api/internal/database"
	"expense-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExpenseRepository(t *testing.T) {
	suite.Run(t, new(ExpenseRepositorySuite))
}

type ExpenseRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ExpenseRepositoryInterface
	ctx  context.Context
}

func (s *ExpenseRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExpenseRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *ExpenseRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ExpenseRepositorySuite) newExpense(merchant string) *models.Expense {
	return &models.Expense{
		Amount:      decimal.NewFromFloat(gofakeit.Price(1, 500)),
		Merchant:    merchant,
		Description: gofakeit.Sentence(4),
		Category:    gofakeit.RandomString([]string{"utilities", "music", "groceries"}),
	}
}

func (s *ExpenseRepositorySuite) TestCreate_AssignsIDAndTimestamps() {
	expense := s.newExpense("AT&T")

	err := s.repo.Create(s.ctx, expense)

	s.NoError(err)
	s.NotZero(expense.ID)
	s.False(expense.DateCreated.IsZero())
	s.Equal(expense.DateCreated, expense.DateUpdated)
}

func (s *ExpenseRepositorySuite) TestCreate_IDsAreUnique() {
	first := s.newExpense("A")
	second := s.newExpense("B")

	s.Require().NoError(s.repo.Create(s.ctx, first))
	s.Require().NoError(s.repo.Create(s.ctx, second))

	s.NotEqual(first.ID, second.ID)
}

func (s *ExpenseRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *ExpenseRepositorySuite) TestGetByID_RoundTrip() {
	expense := &models.Expense{
		Amount:      decimal.RequireFromString("249.99"),
		Merchant:    "Amazon",
		Description: "anc headphones",
		Category:    "music",
	}
	s.Require().NoError(s.repo.Create(s.ctx, expense))

	found, err := s.repo.GetByID(s.ctx, expense.ID)

	s.NoError(err)
	s.Equal(expense.ID, found.ID)
	s.Equal("249.99", found.Amount.String())
	s.Equal("Amazon", found.Merchant)
	s.Equal("anc headphones", found.Description)
	s.Equal("music", found.Category)
	s.True(expense.DateCreated.Equal(found.DateCreated))
	s.True(expense.DateUpdated.Equal(found.DateUpdated))
}

func (s *ExpenseRepositorySuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(s.ctx, 4242)

	s.Nil(found)
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestList_Empty() {
	expenses, err := s.repo.List(s.ctx, models.ExpenseFilters{})

	s.NoError(err)
	s.NotNil(expenses)
	s.Empty(expenses)
}

func (s *ExpenseRepositorySuite) TestList_InsertionOrder() {
	var ids []int64
	for _, merchant := range []string{"C", "A", "B"} {
		expense := s.newExpense(merchant)
		s.Require().NoError(s.repo.Create(s.ctx, expense))
		ids = append(ids, expense.ID)
	}

	expenses, err := s.repo.List(s.ctx, models.ExpenseFilters{})

	s.NoError(err)
	s.Require().Len(expenses, 3)
	for i, expense := range expenses {
		s.Equal(ids[i], expense.ID)
	}
}

func (s *ExpenseRepositorySuite) TestList_MerchantExactMatch() {
	for _, merchant := range []string{"John", "john", "Johnny", "John"} {
		s.Require().NoError(s.repo.Create(s.ctx, s.newExpense(merchant)))
	}

	expenses, err := s.repo.List(s.ctx, models.ExpenseFilters{Merchant: "John"})

	s.NoError(err)
	s.Len(expenses, 2)
	for _, expense := range expenses {
		s.Equal("John", expense.Merchant)
	}
}

func (s *ExpenseRepositorySuite) TestList_UnknownMerchant() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newExpense("John")))

	expenses, err := s.repo.List(s.ctx, models.ExpenseFilters{Merchant: "Nobody"})

	s.NoError(err)
	s.Empty(expenses)
}

func (s *ExpenseRepositorySuite) TestDelete_RemovesRow() {
	expense := s.newExpense("AT&T")
	s.Require().NoError(s.repo.Create(s.ctx, expense))

	err := s.repo.Delete(s.ctx, expense.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(s.ctx, expense.ID)
	s.ErrorIs(err, ErrExpenseNotFound)

	count, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Zero(count)
}

func (s *ExpenseRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(s.ctx, 99)

	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestCount() {
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.repo.Create(s.ctx, s.newExpense(gofakeit.Company())))
	}

	count, err := s.repo.Count(s.ctx)

	s.NoError(err)
	s.Equal(int64(3), count)
}
