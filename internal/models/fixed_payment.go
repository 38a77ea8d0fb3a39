package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusInactive = "inactive"
	PaymentStatusOverdue  = "overdue"
	PaymentStatusDue      = "due"
	PaymentStatusWarning  = "warning"
	PaymentStatusUpcoming = "upcoming"

	// PaymentWarningDays is the days-until-due ceiling for the warning status.
	PaymentWarningDays = 2
)

var (
	ErrInvalidDueDay        = errors.New("due day must be between 1 and 31")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
)

// FixedPayment is a recurring monthly payment due on a fixed calendar day.
// The due day is clamped to the length of the target month at evaluation
// time, never at rest.
type FixedPayment struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	DueDay       int             `gorm:"not null" json:"due_day"`
	IsActive     bool            `gorm:"not null;default:true" json:"is_active"`
	AutoRegister bool            `gorm:"not null;default:false" json:"auto_register"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for FixedPayment
func (p *FixedPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// BeforeUpdate hook for FixedPayment
func (p *FixedPayment) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	p.UpdatedAt = time.Now()
	return p.Validate()
}

// Validate validates the fixed payment fields
func (p *FixedPayment) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if p.Name == "" {
		return errors.New("payment name is required")
	}

	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPaymentAmount
	}

	if p.DueDay < 1 || p.DueDay > 31 {
		return ErrInvalidDueDay
	}

	return nil
}

// TableName returns the table name for FixedPayment
func (p *FixedPayment) TableName() string {
	return "fixed_payments"
}

// NextDueDate computes the next occurrence of a monthly due day relative to
// now. The due day is clamped to the length of the candidate month (due day
// 31 in a 30-day month falls on the 30th). A candidate at or before now,
// same day included, rolls over to the following month, re-clamping for the
// new month's length and incrementing the year past December.
func NextDueDate(dueDay int, now time.Time) time.Time {
	year, month, _ := now.Date()

	day := dueDay
	if max := DaysInMonth(year, month); day > max {
		day = max
	}

	due := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if due.After(now) {
		return due
	}

	if month == time.December {
		month = time.January
		year++
	} else {
		month++
	}

	day = dueDay
	if max := DaysInMonth(year, month); day > max {
		day = max
	}

	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}

// DaysUntil returns the whole-day calendar distance from now to due,
// ignoring the time of day on both ends.
func DaysUntil(due, now time.Time) int {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// PaymentStatusFor classifies a payment from its active flag and the days
// remaining until the next occurrence. NextDueDate never produces a past
// date, but the overdue branch still guards against skewed or cached inputs.
func PaymentStatusFor(isActive bool, daysUntilDue int) string {
	switch {
	case !isActive:
		return PaymentStatusInactive
	case daysUntilDue < 0:
		return PaymentStatusOverdue
	case daysUntilDue == 0:
		return PaymentStatusDue
	case daysUntilDue <= PaymentWarningDays:
		return PaymentStatusWarning
	default:
		return PaymentStatusUpcoming
	}
}
