package repositories

import (
	"errors"
	"fmt"

	"lana-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(id uuid.UUID) (*models.Budget, error) {
	budget := &models.Budget{}
	if err := r.db.Where("id = ?", id).First(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// GetByPeriod retrieves all of a user's budgets for one month
func (r *budgetRepository) GetByPeriod(userID uuid.UUID, month, year int) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets by period: %w", err)
	}
	return budgets, nil
}

// GetByCategoryAndPeriod retrieves the unique budget for a category and month
func (r *budgetRepository) GetByCategoryAndPeriod(userID uuid.UUID, category string, month, year int) (*models.Budget, error) {
	budget := &models.Budget{}
	if err := r.db.Where("user_id = ? AND category = ? AND month = ? AND year = ?",
		userID, category, month, year).First(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget by category and period: %w", err)
	}
	return budget, nil
}

// Update saves the full budget record
func (r *budgetRepository) Update(budget *models.Budget) error {
	result := r.db.Save(budget)
	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	return nil
}

// Delete removes a budget
func (r *budgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Budget{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
