package handlers

import (
	goerrors "errors"
	"net/http"
	"time"

	"lana-api/internal/dto"
	"lana-api/internal/errors"
	"lana-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// CreateBudget creates a monthly category budget
// @Summary Create a budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget payload"
// @Success 201 {object} models.Budget "Created budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_002 - Budget already exists for category and period"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if !req.Amount.IsPositive() {
		return SendError(c, errors.BudgetInvalidLimit)
	}

	budget, err := h.budgetService.Create(userID, &req)
	if err != nil {
		if goerrors.Is(err, services.ErrBudgetAlreadyExists) {
			return SendError(c, errors.BudgetAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, budget)
}

// ListBudgets returns the period's budgets with derived spend state
// @Summary List budgets with status
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query int false "Month (defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Success 200 {array} dto.BudgetWithSpend "Budgets with spend state"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid period"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, err := resolvePeriod(c, time.Now())
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}

	budgets, err := h.budgetService.ListWithSpend(userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budgets)
}

// GetBudget retrieves one budget by ID
// @Summary Get budget by ID
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} models.Budget "Budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid budget ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	budget, err := h.budgetService.Get(userID, budgetID)
	if err != nil {
		if goerrors.Is(err, services.ErrBudgetNotFound) {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// UpdateBudget adjusts the budget limit
// @Summary Update a budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Param request body dto.UpdateBudgetRequest true "Fields to change"
// @Success 200 {object} models.Budget "Updated budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if req.Amount != nil && !req.Amount.IsPositive() {
		return SendError(c, errors.BudgetInvalidLimit)
	}

	budget, err := h.budgetService.Update(userID, budgetID, &req)
	if err != nil {
		if goerrors.Is(err, services.ErrBudgetNotFound) {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes a budget
// @Summary Delete a budget
// @Tags Budgets
// @Security BearerAuth
// @Param id path string true "Budget ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid budget ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	if err := h.budgetService.Delete(userID, budgetID); err != nil {
		if goerrors.Is(err, services.ErrBudgetNotFound) {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
