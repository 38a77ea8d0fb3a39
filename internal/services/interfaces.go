package services

import (
	"time"

	"lana-api/internal/dto"
	"lana-api/internal/models"

	"github.com/google/uuid"
)

// AuthServiceInterface defines registration, login and profile operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
	UpdateProfile(userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteAccount(userID uuid.UUID) error
}

// BudgetServiceInterface defines budget management and spend evaluation
type BudgetServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error)
	Get(userID, budgetID uuid.UUID) (*models.Budget, error)
	ListWithSpend(userID uuid.UUID, period models.Period) ([]dto.BudgetWithSpend, error)
	Update(userID, budgetID uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error)
	Delete(userID, budgetID uuid.UUID) error
}

// FixedPaymentServiceInterface defines recurring payment management and due
// date evaluation. Methods that derive due state take the evaluation time
// explicitly so callers control the clock.
type FixedPaymentServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateFixedPaymentRequest) (*models.FixedPayment, error)
	Get(userID, paymentID uuid.UUID) (*models.FixedPayment, error)
	ListWithStatus(userID uuid.UUID, now time.Time) ([]dto.FixedPaymentWithStatus, error)
	Upcoming(userID uuid.UUID, days int, now time.Time) ([]dto.FixedPaymentWithStatus, error)
	Update(userID, paymentID uuid.UUID, req *dto.UpdateFixedPaymentRequest) (*models.FixedPayment, error)
	Delete(userID, paymentID uuid.UUID) error
}

// AnalyticsServiceInterface provides derived aggregate views over a user's
// transactions, budgets and fixed payments
type AnalyticsServiceInterface interface {
	MonthlyAnalysis(userID uuid.UUID, period models.Period) (*dto.MonthlyAnalysis, error)
	CategoryBreakdown(userID uuid.UUID, period models.Period) ([]dto.CategoryAnalysis, error)
	Dashboard(userID uuid.UUID, period models.Period, now time.Time) (*dto.DashboardData, error)
	MonthlyTrend(userID uuid.UUID, months int, now time.Time) (map[string]dto.TrendPoint, error)
	CategoryTrend(userID uuid.UUID, category string, months int, now time.Time) (map[string]dto.TrendPoint, error)
}

// NotificationServiceInterface defines notification storage and per-user
// delivery preferences
type NotificationServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateNotificationRequest) (*models.Notification, error)
	List(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error)
	MarkRead(userID, notificationID uuid.UUID) error
	MarkAllRead(userID uuid.UUID) error
	Delete(userID, notificationID uuid.UUID) error
	DeleteAll(userID uuid.UUID) error
	GetSettings(userID uuid.UUID) (*models.NotificationSettings, error)
	UpdateSettings(userID uuid.UUID, req *dto.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	PasswordStrength(password string) int
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
