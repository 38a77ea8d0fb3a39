package services

import (
	"errors"
	"fmt"
	"log/slog"

	"lana-api/internal/dto"
	"lana-api/internal/models"
	"lana-api/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("budget already exists for category and period")
)

// budgetService implements BudgetServiceInterface
type budgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewBudgetService creates a budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Create stores a new budget. A user holds at most one budget per category
// and period; a second create for the same triple is rejected.
func (s *budgetService) Create(userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	existing, err := s.budgetRepo.GetByCategoryAndPeriod(userID, req.Category, req.Month, req.Year)
	if err != nil && !errors.Is(err, repositories.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}
	if existing != nil {
		return nil, ErrBudgetAlreadyExists
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: req.Category,
		Amount:   req.Amount,
		Month:    req.Month,
		Year:     req.Year,
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.logger.Info("budget created",
		"budget_id", budget.ID,
		"category", budget.Category,
		"month", budget.Month,
		"year", budget.Year,
	)

	return budget, nil
}

// Get retrieves one of the user's budgets
func (s *budgetService) Get(userID, budgetID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(budgetID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	// Ownership mismatch reads as not found so budget IDs don't leak
	// across users
	if budget.UserID != userID {
		return nil, ErrBudgetNotFound
	}

	return budget, nil
}

// ListWithSpend returns the user's budgets for a period, each enriched with
// the period's expense spend, the spend percentage and the derived status.
// Evaluation never mutates the stored budgets.
func (s *budgetService) ListWithSpend(userID uuid.UUID, period models.Period) ([]dto.BudgetWithSpend, error) {
	budgets, err := s.budgetRepo.GetByPeriod(userID, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	result := make([]dto.BudgetWithSpend, 0, len(budgets))
	for _, budget := range budgets {
		enriched, err := s.evaluate(&budget, period)
		if err != nil {
			return nil, err
		}
		result = append(result, enriched)
	}

	return result, nil
}

func (s *budgetService) evaluate(budget *models.Budget, period models.Period) (dto.BudgetWithSpend, error) {
	spent, err := s.transactionRepo.SumExpensesByCategory(
		budget.UserID, budget.Category, period.Start(), period.End())
	if err != nil {
		return dto.BudgetWithSpend{}, fmt.Errorf("failed to sum expenses for %q: %w", budget.Category, err)
	}

	// Expenses are stored negative; spend is their magnitude
	spent = spent.Abs()

	percentage := models.BudgetPercentage(budget.Amount, spent)
	status := models.BudgetStatusFor(percentage)

	s.metrics.IncrementCounter("budget_evaluation", map[string]string{"status": status})

	return dto.NewBudgetWithSpend(
		budget.ID, budget.Category, budget.Amount,
		budget.Month, budget.Year,
		spent, percentage, status, budget.CreatedAt,
	), nil
}

// Update adjusts the budget limit. Category and period are fixed after
// creation; delete and recreate to move a budget.
func (s *budgetService) Update(userID, budgetID uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.Get(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		budget.Amount = *req.Amount
	}

	if err := s.budgetRepo.Update(budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return budget, nil
}

// Delete removes one of the user's budgets
func (s *budgetService) Delete(userID, budgetID uuid.UUID) error {
	if _, err := s.Get(userID, budgetID); err != nil {
		return err
	}

	if err := s.budgetRepo.Delete(budgetID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return nil
}
