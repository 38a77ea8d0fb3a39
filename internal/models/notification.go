package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeBudgetWarning     = "budget_warning"
	NotificationTypeBudgetExceeded    = "budget_exceeded"
	NotificationTypePaymentReminder   = "payment_reminder"
	NotificationTypeInsufficientFunds = "insufficient_funds"
	NotificationTypeReport            = "report"
)

var (
	ErrInvalidNotificationType = errors.New("invalid notification type")
)

// Notification is a stored per-user message created synchronously by the
// API; there is no push delivery.
type Notification struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	Type         string    `gorm:"type:varchar(30);not null;column:notification_type" json:"notification_type"`
	IsRead       bool      `gorm:"not null;default:false" json:"is_read"`
	SentViaEmail bool      `gorm:"not null;default:false" json:"sent_via_email"`
	SentViaSMS   bool      `gorm:"not null;default:false" json:"sent_via_sms"`
	CreatedAt    time.Time `gorm:"not null;index" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Notification
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	return n.Validate()
}

// Validate validates the notification fields
func (n *Notification) Validate() error {
	if n.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if n.Title == "" {
		return errors.New("notification title is required")
	}

	if n.Message == "" {
		return errors.New("notification message is required")
	}

	if !IsValidNotificationType(n.Type) {
		return ErrInvalidNotificationType
	}

	return nil
}

// TableName returns the table name for Notification
func (n *Notification) TableName() string {
	return "notifications"
}

// IsValidNotificationType checks if the notification type is valid
func IsValidNotificationType(notificationType string) bool {
	switch notificationType {
	case NotificationTypeBudgetWarning, NotificationTypeBudgetExceeded,
		NotificationTypePaymentReminder, NotificationTypeInsufficientFunds,
		NotificationTypeReport:
		return true
	default:
		return false
	}
}

// NotificationSettings holds per-user delivery preferences. One row per
// user, created lazily on first access with the defaults below.
type NotificationSettings struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	EmailNotifications bool      `gorm:"not null;default:true" json:"email_notifications"`
	SMSNotifications   bool      `gorm:"not null;default:true" json:"sms_notifications"`
	BudgetAlerts       bool      `gorm:"not null;default:true" json:"budget_alerts"`
	PaymentReminders   bool      `gorm:"not null;default:true" json:"payment_reminders"`
	WeeklyReports      bool      `gorm:"not null;default:false" json:"weekly_reports"`
	MonthlyReports     bool      `gorm:"not null;default:true" json:"monthly_reports"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for NotificationSettings
func (s *NotificationSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	return nil
}

// TableName returns the table name for NotificationSettings
func (s *NotificationSettings) TableName() string {
	return "notification_settings"
}

// DefaultNotificationSettings returns the lazily created settings row for a
// user who has never stored preferences.
func DefaultNotificationSettings(userID uuid.UUID) *NotificationSettings {
	return &NotificationSettings{
		UserID:             userID,
		EmailNotifications: true,
		SMSNotifications:   true,
		BudgetAlerts:       true,
		PaymentReminders:   true,
		WeeklyReports:      false,
		MonthlyReports:     true,
	}
}
