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

const (
	defaultUpcomingDays = 7
	maxUpcomingDays     = 31
)

// FixedPaymentHandler handles fixed payment HTTP requests
type FixedPaymentHandler struct {
	paymentService services.FixedPaymentServiceInterface
}

// NewFixedPaymentHandler creates a new fixed payment handler
func NewFixedPaymentHandler(paymentService services.FixedPaymentServiceInterface) *FixedPaymentHandler {
	return &FixedPaymentHandler{
		paymentService: paymentService,
	}
}

// CreateFixedPayment registers a recurring payment
// @Summary Create a fixed payment
// @Tags FixedPayments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateFixedPaymentRequest true "Payment payload"
// @Success 201 {object} models.FixedPayment "Created payment"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload or PAYMENT_002 - Invalid due day"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /fixed-payments [post]
func (h *FixedPaymentHandler) CreateFixedPayment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateFixedPaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if !req.Amount.IsPositive() {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("amount must be positive"))
	}

	payment, err := h.paymentService.Create(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, payment)
}

// ListFixedPayments returns all payments with derived due state
// @Summary List fixed payments with status
// @Tags FixedPayments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.FixedPaymentWithStatus "Payments with due state"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /fixed-payments [get]
func (h *FixedPaymentHandler) ListFixedPayments(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	payments, err := h.paymentService.ListWithStatus(userID, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, payments)
}

// ListUpcomingPayments returns active payments due within a day horizon
// @Summary List upcoming payments
// @Tags FixedPayments
// @Security BearerAuth
// @Produce json
// @Param days query int false "Due-date horizon in days (max 31)" default(7)
// @Success 200 {array} dto.FixedPaymentWithStatus "Upcoming payments"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Malformed days parameter"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /fixed-payments/upcoming [get]
func (h *FixedPaymentHandler) ListUpcomingPayments(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	days, err := getIntParam(c, "days", defaultUpcomingDays)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if days < 1 {
		days = defaultUpcomingDays
	}
	if days > maxUpcomingDays {
		days = maxUpcomingDays
	}

	payments, err := h.paymentService.Upcoming(userID, days, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, payments)
}

// GetFixedPayment retrieves one payment by ID
// @Summary Get fixed payment by ID
// @Tags FixedPayments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} models.FixedPayment "Payment"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid payment ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "PAYMENT_001 - Payment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /fixed-payments/{id} [get]
func (h *FixedPaymentHandler) GetFixedPayment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Payment ID must be a valid UUID"))
	}

	payment, err := h.paymentService.Get(userID, paymentID)
	if err != nil {
		if goerrors.Is(err, services.ErrFixedPaymentNotFound) {
			return SendError(c, errors.PaymentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, payment)
}

// UpdateFixedPayment applies a partial update to a payment
// @Summary Update a fixed payment
// @Tags FixedPayments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Param request body dto.UpdateFixedPaymentRequest true "Fields to change"
// @Success 200 {object} models.FixedPayment "Updated payment"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "PAYMENT_001 - Payment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /fixed-payments/{id} [put]
func (h *FixedPaymentHandler) UpdateFixedPayment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Payment ID must be a valid UUID"))
	}

	var req dto.UpdateFixedPaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if req.Amount != nil && !req.Amount.IsPositive() {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("amount must be positive"))
	}

	payment, err := h.paymentService.Update(userID, paymentID, &req)
	if err != nil {
		if goerrors.Is(err, services.ErrFixedPaymentNotFound) {
			return SendError(c, errors.PaymentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, payment)
}

// DeleteFixedPayment removes a payment
// @Summary Delete a fixed payment
// @Tags FixedPayments
// @Security BearerAuth
// @Param id path string true "Payment ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid payment ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "PAYMENT_001 - Payment not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /fixed-payments/{id} [delete]
func (h *FixedPaymentHandler) DeleteFixedPayment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Payment ID must be a valid UUID"))
	}

	if err := h.paymentService.Delete(userID, paymentID); err != nil {
		if goerrors.Is(err, services.ErrFixedPaymentNotFound) {
			return SendError(c, errors.PaymentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
