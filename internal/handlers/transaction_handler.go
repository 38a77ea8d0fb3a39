package handlers

import (
	goerrors "errors"
	"net/http"

	"lana-api/internal/dto"
	"lana-api/internal/errors"
	"lana-api/internal/models"
	"lana-api/internal/repositories"
	"lana-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultTransactionPageLimit = 100
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionRepo repositories.TransactionRepositoryInterface, metrics services.MetricsRecorderInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// CreateTransaction records a new transaction for the authenticated user
// @Summary Record a transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} models.Transaction "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if req.Amount.IsZero() {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
	}
	// Stored sign follows the type regardless of the submitted sign
	transaction.NormalizeSign()

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("transaction_recorded", map[string]string{"type": transaction.Type})

	return c.JSON(http.StatusCreated, transaction)
}

// ListTransactions retrieves the user's transactions with optional filters
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param category query string false "Filter by category"
// @Param transaction_type query string false "Filter by type" Enums(income, expense)
// @Param month query int false "Filter by calendar month (requires year)"
// @Param year query int false "Filter by year"
// @Param skip query int false "Offset into the result set" default(0)
// @Param limit query int false "Page size (max 1000)" default(100)
// @Success 200 {object} dto.ListTransactionsResponse "Transaction page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListTransactionsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if query.Month != 0 && query.Year == 0 {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails("month filter requires year"))
	}

	if query.Limit == 0 {
		query.Limit = defaultTransactionPageLimit
	}

	filters := models.TransactionFilters{
		UserID:   userID,
		Category: query.Category,
		Type:     query.Type,
		Month:    query.Month,
		Year:     query.Year,
		Offset:   query.Offset,
		Limit:    query.Limit,
	}

	transactions, total, err := h.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       query.Offset,
		Limit:        query.Limit,
	})
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction by ID
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transaction, err := h.loadOwned(c, userID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return nil // response already sent
	}

	return c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction applies a partial update to a transaction
// @Summary Update a transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} models.Transaction "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transaction, err := h.loadOwned(c, userID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return nil
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if req.Amount != nil {
		if req.Amount.IsZero() {
			return SendError(c, errors.TransactionInvalidAmount)
		}
		transaction.Amount = *req.Amount
		transaction.NormalizeSign()
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}

	if err := h.transactionRepo.Update(transaction); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a transaction
// @Summary Delete a transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transaction, err := h.loadOwned(c, userID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return nil
	}

	if err := h.transactionRepo.Delete(transaction.ID); err != nil {
		if goerrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListCategories returns the distinct categories the user has transacted in
// @Summary List used categories
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} string "Category names"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/categories [get]
func (h *TransactionHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, err := h.transactionRepo.ListCategories(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// loadOwned fetches the path transaction and checks ownership. On failure it
// writes the error response and returns a nil transaction with a nil error,
// so callers must check both.
func (h *TransactionHandler) loadOwned(c echo.Context, userID uuid.UUID) (*models.Transaction, error) {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	transaction, err := h.transactionRepo.GetByID(transactionID)
	if err != nil {
		if goerrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, SendError(c, errors.TransactionNotFound)
		}
		return nil, SendSystemError(c, err)
	}

	if transaction.UserID != userID {
		// Not-found response hides other users' transaction IDs
		return nil, SendError(c, errors.TransactionNotFound)
	}

	return transaction, nil
}
