package repositories

import (
	"errors"
	"fmt"

	"lana-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// notificationRepository implements NotificationRepositoryInterface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepositoryInterface {
	return &notificationRepository{
		db: db,
	}
}

// Create creates a new notification
func (r *notificationRepository) Create(notification *models.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by ID
func (r *notificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	notification := &models.Notification{}
	if err := r.db.Where("id = ?", id).First(notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return notification, nil
}

// GetByUserID retrieves a user's notifications, newest first, with the
// unpaged total
func (r *notificationRepository) GetByUserID(userID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	return notifications, total, nil
}

// MarkRead marks one notification as read
func (r *notificationRepository) MarkRead(id uuid.UUID) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks all of a user's unread notifications as read
func (r *notificationRepository) MarkAllRead(userID uuid.UUID) error {
	if err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// Delete removes a notification
func (r *notificationRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Notification{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// DeleteAllByUserID removes all of a user's notifications
func (r *notificationRepository) DeleteAllByUserID(userID uuid.UUID) error {
	if err := r.db.Delete(&models.Notification{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

// GetOrCreateSettings returns the user's notification settings, creating
// the default row on first access. Concurrent first access by the same
// user resolves through the unique index: the loser re-reads the winner's
// row.
func (r *notificationRepository) GetOrCreateSettings(userID uuid.UUID) (*models.NotificationSettings, error) {
	settings := &models.NotificationSettings{}
	err := r.db.Where("user_id = ?", userID).First(settings).Error
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}

	settings = models.DefaultNotificationSettings(userID)
	if createErr := r.db.Create(settings).Error; createErr != nil {
		// Another request may have created the row in between
		if readErr := r.db.Where("user_id = ?", userID).First(settings).Error; readErr != nil {
			return nil, fmt.Errorf("failed to create notification settings: %w", createErr)
		}
	}

	return settings, nil
}

// UpdateSettings saves the full settings record
func (r *notificationRepository) UpdateSettings(settings *models.NotificationSettings) error {
	if err := r.db.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update notification settings: %w", err)
	}
	return nil
}
