package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"lana-api/internal/dto"
	"lana-api/internal/models"
	"lana-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DashboardRecentTransactions is the recent-activity page size on the
	// dashboard.
	DashboardRecentTransactions = 5

	// DashboardUpcomingDays is the due-date horizon for payments shown on
	// the dashboard.
	DashboardUpcomingDays = 7

	// TrendLookbackDaysPerMonth approximates one month of history in the
	// trend window.
	TrendLookbackDaysPerMonth = 30
)

// analyticsService implements AnalyticsServiceInterface. All aggregation is
// computed in memory from date-range fetches; derived values are never
// persisted, so repeated reads over unchanged data return identical results.
type analyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetService   BudgetServiceInterface
	paymentService  FixedPaymentServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetService BudgetServiceInterface,
	paymentService FixedPaymentServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AnalyticsServiceInterface {
	return &analyticsService{
		transactionRepo: transactionRepo,
		budgetService:   budgetService,
		paymentService:  paymentService,
		metrics:         metrics,
		logger:          logger,
	}
}

// MonthlyAnalysis totals one calendar month of a user's activity. Income and
// expense totals are magnitudes; balance is income minus expenses and may be
// negative.
func (s *analyticsService) MonthlyAnalysis(userID uuid.UUID, period models.Period) (*dto.MonthlyAnalysis, error) {
	transactions, err := s.transactionRepo.GetByDateRange(userID, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for analysis: %w", err)
	}

	analysis := summarize(transactions)
	return &analysis, nil
}

func summarize(transactions []models.Transaction) dto.MonthlyAnalysis {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount.Abs())
		}
	}

	return dto.MonthlyAnalysis{
		TotalIncome:       income.StringFixed(2),
		TotalExpenses:     expenses.StringFixed(2),
		Balance:           income.Sub(expenses).StringFixed(2),
		TransactionsCount: int64(len(transactions)),
	}
}

// CategoryBreakdown splits one month's expenses by category, largest first.
// Percentages are shares of the period's total expenses; income never enters
// the breakdown.
func (s *analyticsService) CategoryBreakdown(userID uuid.UUID, period models.Period) ([]dto.CategoryAnalysis, error) {
	transactions, err := s.transactionRepo.GetByDateRange(userID, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for breakdown: %w", err)
	}

	return breakdown(transactions), nil
}

func breakdown(transactions []models.Transaction) []dto.CategoryAnalysis {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	totalExpenses := decimal.Zero

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		amount := t.Amount.Abs()
		totals[t.Category] = totals[t.Category].Add(amount)
		counts[t.Category]++
		totalExpenses = totalExpenses.Add(amount)
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := totals[categories[i]], totals[categories[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i] < categories[j]
	})

	result := make([]dto.CategoryAnalysis, 0, len(categories))
	for _, category := range categories {
		amount := totals[category]
		percentage := decimal.Zero
		if totalExpenses.IsPositive() {
			percentage = amount.Div(totalExpenses).Mul(decimal.NewFromInt(100))
		}
		result = append(result, dto.CategoryAnalysis{
			Category:         category,
			Amount:           amount.StringFixed(2),
			Percentage:       percentage.InexactFloat64(),
			TransactionCount: counts[category],
		})
	}

	return result
}

// Dashboard composes the period's monthly analysis, category breakdown,
// recent transactions, budget statuses and upcoming payments into one view.
// Each section is independent; the dashboard adds no state of its own.
func (s *analyticsService) Dashboard(userID uuid.UUID, period models.Period, now time.Time) (*dto.DashboardData, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.GetByDateRange(userID, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for dashboard: %w", err)
	}

	recent, err := s.transactionRepo.GetRecentByUserID(userID, DashboardRecentTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}

	budgets, err := s.budgetService.ListWithSpend(userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate budgets: %w", err)
	}

	upcoming, err := s.paymentService.Upcoming(userID, DashboardUpcomingDays, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming payments: %w", err)
	}

	s.metrics.IncrementCounter("dashboard_request", nil)
	s.metrics.RecordProcessingTime("dashboard_build", time.Since(started))

	return &dto.DashboardData{
		MonthlyAnalysis:    summarize(transactions),
		CategoryBreakdown:  breakdown(transactions),
		RecentTransactions: recent,
		BudgetStatus:       budgets,
		UpcomingPayments:   upcoming,
	}, nil
}

// MonthlyTrend returns per-month income and expense totals over a lookback
// window of months * 30 days ending now. The map is keyed by "YYYY-MM" and
// sparse: months without activity are absent.
func (s *analyticsService) MonthlyTrend(userID uuid.UUID, months int, now time.Time) (map[string]dto.TrendPoint, error) {
	start, end := trendWindow(months, now)

	transactions, err := s.transactionRepo.GetByDateRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for trend: %w", err)
	}

	s.metrics.IncrementCounter("trend_request", map[string]string{"kind": "monthly"})
	return trend(transactions), nil
}

// CategoryTrend is MonthlyTrend restricted to the expense transactions of a
// single category. Income booked under the category (refunds,
// reimbursements) is excluded, so a month with only income is absent.
func (s *analyticsService) CategoryTrend(userID uuid.UUID, category string, months int, now time.Time) (map[string]dto.TrendPoint, error) {
	start, end := trendWindow(months, now)

	transactions, err := s.transactionRepo.GetByCategoryAndDateRange(userID, category, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get category transactions for trend: %w", err)
	}

	expenses := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.IsExpense() {
			expenses = append(expenses, t)
		}
	}

	s.metrics.IncrementCounter("trend_request", map[string]string{"kind": "category"})
	return trend(expenses), nil
}

// trendWindow spans months * 30 days back from now, through the end of the
// current day so today's activity is included.
func trendWindow(months int, now time.Time) (time.Time, time.Time) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	start := now.AddDate(0, 0, -months*TrendLookbackDaysPerMonth)
	return start, end
}

func trend(transactions []models.Transaction) map[string]dto.TrendPoint {
	income := make(map[string]decimal.Decimal)
	expenses := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		key := models.PeriodOf(t.Date).Key()
		if t.IsIncome() {
			income[key] = income[key].Add(t.Amount)
		} else {
			expenses[key] = expenses[key].Add(t.Amount.Abs())
		}
	}

	result := make(map[string]dto.TrendPoint)
	for key, amount := range income {
		point := result[key]
		point.Income = amount.StringFixed(2)
		result[key] = point
	}
	for key, amount := range expenses {
		point := result[key]
		point.Expenses = amount.StringFixed(2)
		result[key] = point
	}

	// Fill the zero side of one-sided months so both totals render
	for key, point := range result {
		if point.Income == "" {
			point.Income = "0.00"
		}
		if point.Expenses == "" {
			point.Expenses = "0.00"
		}
		result[key] = point
	}

	return result
}
