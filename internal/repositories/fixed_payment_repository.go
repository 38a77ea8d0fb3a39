package repositories

import (
	"errors"
	"fmt"

	"lana-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFixedPaymentNotFound = errors.New("fixed payment not found")
)

// fixedPaymentRepository implements FixedPaymentRepositoryInterface
type fixedPaymentRepository struct {
	db *gorm.DB
}

// NewFixedPaymentRepository creates a new fixed payment repository
func NewFixedPaymentRepository(db *gorm.DB) FixedPaymentRepositoryInterface {
	return &fixedPaymentRepository{
		db: db,
	}
}

// Create creates a new fixed payment
func (r *fixedPaymentRepository) Create(payment *models.FixedPayment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create fixed payment: %w", err)
	}
	return nil
}

// GetByID retrieves a fixed payment by ID
func (r *fixedPaymentRepository) GetByID(id uuid.UUID) (*models.FixedPayment, error) {
	payment := &models.FixedPayment{}
	if err := r.db.Where("id = ?", id).First(payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFixedPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get fixed payment: %w", err)
	}
	return payment, nil
}

// GetByUserID retrieves all of a user's fixed payments
func (r *fixedPaymentRepository) GetByUserID(userID uuid.UUID) ([]models.FixedPayment, error) {
	var payments []models.FixedPayment
	if err := r.db.Where("user_id = ?", userID).
		Order("due_day ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get fixed payments: %w", err)
	}
	return payments, nil
}

// GetActiveByUserID retrieves a user's active fixed payments
func (r *fixedPaymentRepository) GetActiveByUserID(userID uuid.UUID) ([]models.FixedPayment, error) {
	var payments []models.FixedPayment
	if err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("due_day ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get active fixed payments: %w", err)
	}
	return payments, nil
}

// Update saves the full fixed payment record
func (r *fixedPaymentRepository) Update(payment *models.FixedPayment) error {
	result := r.db.Save(payment)
	if result.Error != nil {
		return fmt.Errorf("failed to update fixed payment: %w", result.Error)
	}
	return nil
}

// Delete removes a fixed payment
func (r *fixedPaymentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.FixedPayment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete fixed payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFixedPaymentNotFound
	}
	return nil
}
