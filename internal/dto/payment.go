package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateFixedPaymentRequest is the payload for registering a recurring payment
type CreateFixedPaymentRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	DueDay       int             `json:"due_day" validate:"required,due_day"`
	IsActive     *bool           `json:"is_active"`
	AutoRegister bool            `json:"auto_register"`
}

// UpdateFixedPaymentRequest applies a partial update; absent fields are
// left unchanged
type UpdateFixedPaymentRequest struct {
	Name         *string          `json:"name" validate:"omitempty,max=100"`
	Amount       *decimal.Decimal `json:"amount"`
	DueDay       *int             `json:"due_day" validate:"omitempty,due_day"`
	IsActive     *bool            `json:"is_active"`
	AutoRegister *bool            `json:"auto_register"`
}

// FixedPaymentWithStatus is a payment enriched with its derived due state
type FixedPaymentWithStatus struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Amount       string    `json:"amount"`
	DueDay       int       `json:"due_day"`
	IsActive     bool      `json:"is_active"`
	AutoRegister bool      `json:"auto_register"`
	NextDue      time.Time `json:"next_due"`
	DaysUntilDue int       `json:"days_until_due"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
