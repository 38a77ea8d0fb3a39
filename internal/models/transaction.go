package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrZeroAmount             = errors.New("transaction amount must be non-zero")
)

// Transaction represents a single income or expense record. Amounts are
// stored signed: expenses carry a negative magnitude, income a positive one.
// Aggregation takes the absolute value exactly once, never here.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Type        string          `gorm:"type:varchar(20);not null;column:transaction_type" json:"transaction_type"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.NormalizeSign()

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	t.UpdatedAt = time.Now()
	t.NormalizeSign()
	return t.Validate()
}

// NormalizeSign enforces the storage sign convention from the transaction
// type: expense amounts negative, income amounts positive. Callers may
// submit magnitudes with either sign.
func (t *Transaction) NormalizeSign() {
	switch t.Type {
	case TransactionTypeExpense:
		t.Amount = t.Amount.Abs().Neg()
	case TransactionTypeIncome:
		t.Amount = t.Amount.Abs()
	}
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsZero() {
		return ErrZeroAmount
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if t.Category == "" {
		return errors.New("transaction category is required")
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	return nil
}

// IsExpense returns true if the transaction is an expense
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome returns true if the transaction is an income
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// TransactionFilters holds the supported filters for transaction queries
type TransactionFilters struct {
	UserID   uuid.UUID
	Category string
	Type     string
	Month    int
	Year     int
	Offset   int
	Limit    int
}
