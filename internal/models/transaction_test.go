package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	validUserID := uuid.New()
	validDate := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid income transaction",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.NewFromFloat(1000.00),
				Description: "Salary",
				Category:    "salary",
				Type:        TransactionTypeIncome,
				Date:        validDate,
			},
			wantErr: false,
		},
		{
			name: "valid expense transaction",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.NewFromFloat(-45.50),
				Description: "Groceries",
				Category:    "food",
				Type:        TransactionTypeExpense,
				Date:        validDate,
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			transaction: Transaction{
				Amount:      decimal.NewFromFloat(100.00),
				Description: "Test",
				Category:    "misc",
				Type:        TransactionTypeIncome,
				Date:        validDate,
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "invalid type",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.NewFromFloat(100.00),
				Description: "Test",
				Category:    "misc",
				Type:        "transfer",
				Date:        validDate,
			},
			wantErr: true,
			errMsg:  "invalid transaction type",
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.Zero,
				Description: "Test",
				Category:    "misc",
				Type:        TransactionTypeIncome,
				Date:        validDate,
			},
			wantErr: true,
			errMsg:  "transaction amount must be non-zero",
		},
		{
			name: "missing description",
			transaction: Transaction{
				UserID:   validUserID,
				Amount:   decimal.NewFromFloat(100.00),
				Category: "misc",
				Type:     TransactionTypeIncome,
				Date:     validDate,
			},
			wantErr: true,
			errMsg:  "transaction description is required",
		},
		{
			name: "missing category",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.NewFromFloat(100.00),
				Description: "Test",
				Type:        TransactionTypeIncome,
				Date:        validDate,
			},
			wantErr: true,
			errMsg:  "transaction category is required",
		},
		{
			name: "missing date",
			transaction: Transaction{
				UserID:      validUserID,
				Amount:      decimal.NewFromFloat(100.00),
				Description: "Test",
				Category:    "misc",
				Type:        TransactionTypeIncome,
			},
			wantErr: true,
			errMsg:  "transaction date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_NormalizeSign(t *testing.T) {
	tests := []struct {
		name   string
		txType string
		amount string
		want   string
	}{
		{name: "expense submitted positive becomes negative", txType: TransactionTypeExpense, amount: "45.50", want: "-45.5"},
		{name: "expense submitted negative stays negative", txType: TransactionTypeExpense, amount: "-45.50", want: "-45.5"},
		{name: "income submitted positive stays positive", txType: TransactionTypeIncome, amount: "1000", want: "1000"},
		{name: "income submitted negative becomes positive", txType: TransactionTypeIncome, amount: "-1000", want: "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transaction := Transaction{
				Type:   tt.txType,
				Amount: decimal.RequireFromString(tt.amount),
			}
			transaction.NormalizeSign()
			assert.Equal(t, tt.want, transaction.Amount.String())
		})
	}
}

func TestTransaction_TypeHelpers(t *testing.T) {
	expense := Transaction{Type: TransactionTypeExpense}
	income := Transaction{Type: TransactionTypeIncome}

	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())

	assert.True(t, IsValidTransactionType("income"))
	assert.True(t, IsValidTransactionType("expense"))
	assert.False(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType(""))
}
