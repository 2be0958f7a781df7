package handlers

import (
	"errors"
	"net/http"

	"expense-api/internal/dto"
	apierrors "expense-api/internal/errors"
	"expense-api/internal/services"
	"expense-api/internal/validation"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler serves the expense collection and item endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
	logger         services.ExpenseLoggerInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface, logger services.ExpenseLoggerInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// ListExpenses returns every stored expense, optionally filtered by exact merchant
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param merchant query string false "Exact, case-sensitive merchant name"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001/AUTH_002/AUTH_003"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004/AUTH_005"
// @Router /api/expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	var query dto.ListExpensesQuery
	if err := echo.QueryParamsBinder(c).String("merchant", &query.Merchant).BindError(); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("merchant: Invalid value."))
	}

	expenses, err := h.expenseService.ListExpenses(c.Request().Context(), query.ToFilters())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewExpenseListResponse(expenses))
}

// CreateExpense records a new expense
// @Summary Create expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001/VALIDATION_003/VALIDATION_005"
// @Router /api/expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "expense_create", err.Error())
		code, details := bindErrorCode(err)
		return SendError(c, code, apierrors.WithDetails(details...))
	}

	if err := c.Validate(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "expense_create", err.Error())
		if fieldErrors, ok := validation.FieldErrors(err); ok {
			return SendValidationError(c, fieldErrors)
		}
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	expense := req.ToModel()
	if err := h.expenseService.CreateExpense(ctx, expense); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewExpenseResponse(expense))
}

// GetExpense returns one expense
// @Summary Retrieve expense
// @Tags Expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} errors.ErrorResponse "EXPENSE_001"
// @Router /api/expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	id, ok := parseExpenseID(c)
	if !ok {
		return SendError(c, apierrors.ExpenseNotFound)
	}

	expense, err := h.expenseService.GetExpense(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewExpenseResponse(expense))
}

// DeleteExpense permanently removes one expense
// @Summary Delete expense
// @Tags Expenses
// @Param id path int true "Expense ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "EXPENSE_001"
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, ok := parseExpenseID(c)
	if !ok {
		return SendError(c, apierrors.ExpenseNotFound)
	}

	if err := h.expenseService.DeleteExpense(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
