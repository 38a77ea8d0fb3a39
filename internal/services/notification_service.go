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
	ErrNotificationNotFound = errors.New("notification not found")
)

// notificationService implements NotificationServiceInterface
type notificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

// NewNotificationService creates a notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) NotificationServiceInterface {
	return &notificationService{
		notificationRepo: notificationRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// Create stores a notification for the user
func (s *notificationService) Create(userID uuid.UUID, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:  userID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.metrics.IncrementCounter("notification_created", map[string]string{
		"notification_type": notification.Type,
	})

	return notification, nil
}

// List returns a page of the user's notifications, newest first
func (s *notificationService) List(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error) {
	notifications, total, err := s.notificationRepo.GetByUserID(userID, unreadOnly, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, total, nil
}

// MarkRead marks one of the user's notifications as read
func (s *notificationService) MarkRead(userID, notificationID uuid.UUID) error {
	if err := s.authorize(userID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}

// MarkAllRead marks all of the user's notifications as read
func (s *notificationService) MarkAllRead(userID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// Delete removes one of the user's notifications
func (s *notificationService) Delete(userID, notificationID uuid.UUID) error {
	if err := s.authorize(userID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.Delete(notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}

// DeleteAll removes all of the user's notifications
func (s *notificationService) DeleteAll(userID uuid.UUID) error {
	if err := s.notificationRepo.DeleteAllByUserID(userID); err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

// GetSettings returns the user's delivery preferences, creating the default
// row on first access
func (s *notificationService) GetSettings(userID uuid.UUID) (*models.NotificationSettings, error) {
	settings, err := s.notificationRepo.GetOrCreateSettings(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings replaces the full preference set. Every flag is taken from
// the request; partial updates are not supported for settings.
func (s *notificationService) UpdateSettings(userID uuid.UUID, req *dto.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error) {
	settings, err := s.notificationRepo.GetOrCreateSettings(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}

	settings.EmailNotifications = req.EmailNotifications
	settings.SMSNotifications = req.SMSNotifications
	settings.BudgetAlerts = req.BudgetAlerts
	settings.PaymentReminders = req.PaymentReminders
	settings.WeeklyReports = req.WeeklyReports
	settings.MonthlyReports = req.MonthlyReports

	if err := s.notificationRepo.UpdateSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to update notification settings: %w", err)
	}

	return settings, nil
}

func (s *notificationService) authorize(userID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.UserID != userID {
		return ErrNotificationNotFound
	}

	return nil
}
