package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lana-api/internal/dto"
	"lana-api/internal/models"
	"lana-api/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrFixedPaymentNotFound = errors.New("fixed payment not found")
)

// fixedPaymentService implements FixedPaymentServiceInterface
type fixedPaymentService struct {
	paymentRepo repositories.FixedPaymentRepositoryInterface
	logger      *slog.Logger
}

// NewFixedPaymentService creates a fixed payment service
func NewFixedPaymentService(
	paymentRepo repositories.FixedPaymentRepositoryInterface,
	logger *slog.Logger,
) FixedPaymentServiceInterface {
	return &fixedPaymentService{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Create registers a recurring payment. Payments default to active unless
// the request says otherwise.
func (s *fixedPaymentService) Create(userID uuid.UUID, req *dto.CreateFixedPaymentRequest) (*models.FixedPayment, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	payment := &models.FixedPayment{
		UserID:       userID,
		Name:         req.Name,
		Amount:       req.Amount,
		DueDay:       req.DueDay,
		IsActive:     isActive,
		AutoRegister: req.AutoRegister,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create fixed payment: %w", err)
	}

	s.logger.Info("fixed payment created",
		"payment_id", payment.ID,
		"name", payment.Name,
		"due_day", payment.DueDay,
	)

	return payment, nil
}

// Get retrieves one of the user's fixed payments
func (s *fixedPaymentService) Get(userID, paymentID uuid.UUID) (*models.FixedPayment, error) {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrFixedPaymentNotFound) {
			return nil, ErrFixedPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get fixed payment: %w", err)
	}

	if payment.UserID != userID {
		return nil, ErrFixedPaymentNotFound
	}

	return payment, nil
}

// ListWithStatus returns all of the user's fixed payments, active or not,
// each enriched with its next occurrence and derived status as of now.
func (s *fixedPaymentService) ListWithStatus(userID uuid.UUID, now time.Time) ([]dto.FixedPaymentWithStatus, error) {
	payments, err := s.paymentRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixed payments: %w", err)
	}

	result := make([]dto.FixedPaymentWithStatus, 0, len(payments))
	for _, payment := range payments {
		result = append(result, withStatus(&payment, now))
	}

	return result, nil
}

// Upcoming returns the user's active payments whose next occurrence falls
// within the given number of days from now, today included.
func (s *fixedPaymentService) Upcoming(userID uuid.UUID, days int, now time.Time) ([]dto.FixedPaymentWithStatus, error) {
	payments, err := s.paymentRepo.GetActiveByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active fixed payments: %w", err)
	}

	result := make([]dto.FixedPaymentWithStatus, 0, len(payments))
	for _, payment := range payments {
		enriched := withStatus(&payment, now)
		if enriched.DaysUntilDue <= days {
			result = append(result, enriched)
		}
	}

	return result, nil
}

func withStatus(payment *models.FixedPayment, now time.Time) dto.FixedPaymentWithStatus {
	nextDue := models.NextDueDate(payment.DueDay, now)
	daysUntil := models.DaysUntil(nextDue, now)

	return dto.FixedPaymentWithStatus{
		ID:           payment.ID,
		Name:         payment.Name,
		Amount:       payment.Amount.StringFixed(2),
		DueDay:       payment.DueDay,
		IsActive:     payment.IsActive,
		AutoRegister: payment.AutoRegister,
		NextDue:      nextDue,
		DaysUntilDue: daysUntil,
		Status:       models.PaymentStatusFor(payment.IsActive, daysUntil),
	}
}

// Update applies a partial update to a fixed payment
func (s *fixedPaymentService) Update(userID, paymentID uuid.UUID, req *dto.UpdateFixedPaymentRequest) (*models.FixedPayment, error) {
	payment, err := s.Get(userID, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		payment.Name = *req.Name
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.DueDay != nil {
		payment.DueDay = *req.DueDay
	}
	if req.IsActive != nil {
		payment.IsActive = *req.IsActive
	}
	if req.AutoRegister != nil {
		payment.AutoRegister = *req.AutoRegister
	}

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, fmt.Errorf("failed to update fixed payment: %w", err)
	}

	return payment, nil
}

// Delete removes one of the user's fixed payments
func (s *fixedPaymentService) Delete(userID, paymentID uuid.UUID) error {
	if _, err := s.Get(userID, paymentID); err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(paymentID); err != nil {
		if errors.Is(err, repositories.ErrFixedPaymentNotFound) {
			return ErrFixedPaymentNotFound
		}
		return fmt.Errorf("failed to delete fixed payment: %w", err)
	}

	return nil
}
