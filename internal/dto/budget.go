package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest is the payload for creating a monthly category budget
type CreateBudgetRequest struct {
	Category string          `json:"category" validate:"required,max=100"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Month    int             `json:"month" validate:"required,month"`
	Year     int             `json:"year" validate:"required,gte=2000"`
}

// UpdateBudgetRequest applies a partial update; only the limit amount is
// adjustable after creation
type UpdateBudgetRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// BudgetWithSpend is a budget enriched with its derived spend state for
// the period
type BudgetWithSpend struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	SpentAmount string    `json:"spent_amount"`
	Percentage  float64   `json:"percentage"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewBudgetWithSpend builds the enriched view from a budget's fields and
// its computed spend.
func NewBudgetWithSpend(id uuid.UUID, category string, amount decimal.Decimal, month, year int, spent, percentage decimal.Decimal, status string, createdAt time.Time) BudgetWithSpend {
	return BudgetWithSpend{
		ID:          id,
		Category:    category,
		Amount:      amount.StringFixed(2),
		Month:       month,
		Year:        year,
		SpentAmount: spent.StringFixed(2),
		Percentage:  percentage.InexactFloat64(),
		Status:      status,
		CreatedAt:   createdAt,
	}
}
