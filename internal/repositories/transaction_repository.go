package repositories

import (
	"errors"
	"fmt"
	"time"

	"lana-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	if err := r.db.Where("id = ?", id).First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetWithFilters retrieves transactions matching the filters, newest first,
// with the unpaged total
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", filters.UserID)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Type != "" {
		query = query.Where("transaction_type = ?", filters.Type)
	}
	if filters.Month != 0 && filters.Year != 0 {
		period := models.Period{Month: filters.Month, Year: filters.Year}
		query = query.Where("date >= ? AND date < ?", period.Start(), period.End())
	} else if filters.Year != 0 {
		start := time.Date(filters.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("date >= ? AND date < ?", start, start.AddDate(1, 0, 0))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if err := query.Offset(filters.Offset).Limit(filters.Limit).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetRecentByUserID retrieves the most recent transactions for a user by
// occurrence date, ties broken by creation order
func (r *transactionRepository) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// GetByDateRange retrieves a user's transactions within [start, end)
func (r *transactionRepository) GetByDateRange(userID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetByCategoryAndDateRange retrieves a user's transactions for one
// category within [start, end)
func (r *transactionRepository) GetByCategoryAndDateRange(userID uuid.UUID, category string, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND category = ? AND date >= ? AND date < ?", userID, category, start, end).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by category: %w", err)
	}
	return transactions, nil
}

// SumExpensesByCategory returns the signed sum of a category's expense
// transactions within [start, end). Stored expense amounts are negative,
// so callers take the absolute value exactly once.
func (r *transactionRepository) SumExpensesByCategory(userID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND category = ? AND transaction_type = ? AND date >= ? AND date < ?",
			userID, category, models.TransactionTypeExpense, start, end).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses by category: %w", err)
	}

	return result.Total, nil
}

// ListCategories returns the distinct categories a user has recorded
func (r *transactionRepository) ListCategories(userID uuid.UUID) ([]string, error) {
	var categories []string
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Update saves the full transaction record
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Save(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
