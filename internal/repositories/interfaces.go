package repositories

import (
	"time"

	"lana-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines user persistence operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	CountActive() (int64, error)
}

// TransactionRepositoryInterface defines transaction persistence and
// aggregate queries. Period queries use half-open [start, end) ranges.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
	GetByDateRange(userID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	GetByCategoryAndDateRange(userID uuid.UUID, category string, start, end time.Time) ([]models.Transaction, error)
	SumExpensesByCategory(userID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error)
	ListCategories(userID uuid.UUID) ([]string, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
}

// BudgetRepositoryInterface defines budget persistence operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(id uuid.UUID) (*models.Budget, error)
	GetByPeriod(userID uuid.UUID, month, year int) ([]models.Budget, error)
	GetByCategoryAndPeriod(userID uuid.UUID, category string, month, year int) (*models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id uuid.UUID) error
}

// FixedPaymentRepositoryInterface defines fixed payment persistence operations
type FixedPaymentRepositoryInterface interface {
	Create(payment *models.FixedPayment) error
	GetByID(id uuid.UUID) (*models.FixedPayment, error)
	GetByUserID(userID uuid.UUID) ([]models.FixedPayment, error)
	GetActiveByUserID(userID uuid.UUID) ([]models.FixedPayment, error)
	Update(payment *models.FixedPayment) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines notification and settings
// persistence operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByUserID(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(userID uuid.UUID) error
	Delete(id uuid.UUID) error
	DeleteAllByUserID(userID uuid.UUID) error
	GetOrCreateSettings(userID uuid.UUID) (*models.NotificationSettings, error)
	UpdateSettings(settings *models.NotificationSettings) error
}
