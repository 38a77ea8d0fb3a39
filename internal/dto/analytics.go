package dto

import (
	"lana-api/internal/models"
)

// MonthlyAnalysis summarizes one calendar month of activity. Expense totals
// are absolute values; balance is income minus expenses.
type MonthlyAnalysis struct {
	TotalIncome       string `json:"total_income"`
	TotalExpenses     string `json:"total_expenses"`
	Balance           string `json:"balance"`
	TransactionsCount int64  `json:"transactions_count"`
}

// CategoryAnalysis is one category's share of a period's expenses
type CategoryAnalysis struct {
	Category         string  `json:"category"`
	Amount           string  `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// TrendPoint carries one month's income and expense totals in a trend map
type TrendPoint struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// DashboardData is the composite view for a user and period
type DashboardData struct {
	MonthlyAnalysis    MonthlyAnalysis          `json:"monthly_analysis"`
	CategoryBreakdown  []CategoryAnalysis       `json:"category_breakdown"`
	RecentTransactions []models.Transaction     `json:"recent_transactions"`
	BudgetStatus       []BudgetWithSpend        `json:"budget_status"`
	UpcomingPayments   []FixedPaymentWithStatus `json:"upcoming_payments"`
}

// PeriodQuery holds the optional month/year parameters accepted by the
// aggregate read endpoints
type PeriodQuery struct {
	Month int `query:"month" validate:"omitempty,month"`
	Year  int `query:"year" validate:"omitempty,gte=2000"`
}

// TrendQuery holds the window length for trend endpoints
type TrendQuery struct {
	Months int `query:"months" validate:"omitempty,gte=1,lte=24"`
}
