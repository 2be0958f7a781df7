package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"

	"expense-api/internal/models"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense Request DTOs

// CreateExpenseRequest represents the request payload for recording an expense.
// Amount is a pointer so an absent amount is distinguishable from 0.
type CreateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,finite"`
	Merchant    string           `json:"merchant" validate:"required,notblank,nonul,max=255"`
	Description string           `json:"description" validate:"required,notblank,nonul,max=1000"`
	Category    string           `json:"category" validate:"required,notblank,nonul,max=255"`
}

// UnmarshalJSON accepts the amount as a JSON number or a numeric string.
// Anything else fails with a type error naming the amount field.
func (r *CreateExpenseRequest) UnmarshalJSON(data []byte) error {
	type plain CreateExpenseRequest
	wire := struct {
		*plain
		Amount json.RawMessage `json:"amount"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.Amount = nil
	raw := bytes.TrimSpace(wire.Amount)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(raw); err != nil {
		return &json.UnmarshalTypeError{
			Value: jsonValueKind(raw),
			Type:  reflect.TypeOf(amount),
			Field: "amount",
		}
	}
	r.Amount = &amount
	return nil
}

func jsonValueKind(raw []byte) string {
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "number"
	}
}

// ToModel converts a validated request into an unsaved expense
func (r *CreateExpenseRequest) ToModel() *models.Expense {
	expense := &models.Expense{
		Merchant:    r.Merchant,
		Description: r.Description,
		Category:    r.Category,
	}
	if r.Amount != nil {
		expense.Amount = *r.Amount
	}
	return expense
}

// ListExpensesQuery carries the optional filters of the collection endpoint
type ListExpensesQuery struct {
	Merchant string `query:"merchant"`
}

// ToFilters converts the query into repository filters
func (q ListExpensesQuery) ToFilters() models.ExpenseFilters {
	return models.ExpenseFilters{Merchant: q.Merchant}
}

// Expense Response DTOs

// ExpenseResponse is the wire form of a stored expense
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Merchant    string          `json:"merchant"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	DateCreated time.Time       `json:"date_created"`
	DateUpdated time.Time       `json:"date_updated"`
}

// NewExpenseResponse renders a stored expense
func NewExpenseResponse(expense *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		Amount:      expense.Amount,
		Merchant:    expense.Merchant,
		Description: expense.Description,
		Category:    expense.Category,
		DateCreated: expense.DateCreated.UTC(),
		DateUpdated: expense.DateUpdated.UTC(),
	}
}

// NewExpenseListResponse renders a list of expenses, never nil so it encodes as []
func NewExpenseListResponse(expenses []models.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, NewExpenseResponse(&expenses[i]))
	}
	return responses
}

// API Key DTOs

// APIKeyResponse describes an issued key without its secret
type APIKeyResponse struct {
	Prefix    string     `json:"prefix"`
	Name      string     `json:"name"`
	Revoked   bool       `json:"revoked"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewAPIKeyResponse renders a stored key
func NewAPIKeyResponse(key *models.APIKey) APIKeyResponse {
	return APIKeyResponse{
		Prefix:    key.Prefix,
		Name:      key.Name,
		Revoked:   key.Revoked,
		ExpiresAt: key.ExpiresAt,
		CreatedAt: key.CreatedAt,
	}
}
