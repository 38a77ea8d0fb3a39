package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for recording a transaction.
// The amount is a magnitude; the stored sign follows the type.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required,max=255"`
	Category    string          `json:"category" validate:"required,max=100"`
	Type        string          `json:"transaction_type" validate:"required,transaction_type"`
	Date        time.Time       `json:"date" validate:"required"`
}

// UpdateTransactionRequest applies a partial update; absent fields are
// left unchanged
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Date        *time.Time       `json:"date"`
}

// ListTransactionsQuery holds the supported list filters
type ListTransactionsQuery struct {
	Category string `query:"category"`
	Type     string `query:"transaction_type" validate:"omitempty,transaction_type"`
	Month    int    `query:"month" validate:"omitempty,month"`
	Year     int    `query:"year" validate:"omitempty,gte=2000"`
	Offset   int    `query:"skip" validate:"omitempty,gte=0"`
	Limit    int    `query:"limit" validate:"omitempty,gte=1,lte=1000"`
}

// ListTransactionsResponse wraps a transaction page with its total count
type ListTransactionsResponse struct {
	Transactions interface{} `json:"transactions"`
	Total        int64       `json:"total"`
	Offset       int         `json:"skip"`
	Limit        int         `json:"limit"`
}
