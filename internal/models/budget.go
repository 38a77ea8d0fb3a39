package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetStatusNormal   = "normal"
	BudgetStatusWarning  = "warning"
	BudgetStatusExceeded = "exceeded"
)

// Classification thresholds as percentages of the budget limit.
var (
	budgetWarningThreshold  = decimal.NewFromInt(80)
	budgetExceededThreshold = decimal.NewFromInt(100)

	hundred = decimal.NewFromInt(100)
)

var (
	ErrInvalidBudgetMonth = errors.New("budget month must be between 1 and 12")
	ErrInvalidBudgetYear  = errors.New("budget year is out of range")
	ErrInvalidBudgetLimit = errors.New("budget amount must be positive")
)

// Budget is a per-category monthly spending limit. A user may hold at most
// one budget per (category, month, year).
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category_period" json:"user_id"`
	Category  string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budgets_user_category_period" json:"category"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Month     int             `gorm:"not null;uniqueIndex:idx_budgets_user_category_period" json:"month"`
	Year      int             `gorm:"not null;uniqueIndex:idx_budgets_user_category_period" json:"year"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if b.Category == "" {
		return errors.New("budget category is required")
	}

	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetLimit
	}

	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidBudgetMonth
	}

	if b.Year < MinYear {
		return ErrInvalidBudgetYear
	}

	return nil
}

// Period returns the calendar month the budget applies to.
func (b *Budget) Period() Period {
	return Period{Month: b.Month, Year: b.Year}
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// BudgetPercentage returns spent as a percentage of limit. A non-positive
// limit yields zero rather than a division error; spent is expected to be
// the non-negative absolute expense sum.
func BudgetPercentage(limit, spent decimal.Decimal) decimal.Decimal {
	if limit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return spent.Div(limit).Mul(hundred)
}

// BudgetStatusFor classifies a spend percentage: >= 100 exceeded,
// >= 80 warning, otherwise normal. Boundaries are inclusive.
func BudgetStatusFor(percentage decimal.Decimal) string {
	switch {
	case percentage.GreaterThanOrEqual(budgetExceededThreshold):
		return BudgetStatusExceeded
	case percentage.GreaterThanOrEqual(budgetWarningThreshold):
		return BudgetStatusWarning
	default:
		return BudgetStatusNormal
	}
}
