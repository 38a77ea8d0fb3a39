package handlers

import (
	goerrors "errors"
	"net/http"

	"lana-api/internal/dto"
	"lana-api/internal/errors"
	"lana-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultNotificationPageLimit = 50
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationService services.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService services.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// CreateNotification stores a notification for the authenticated user
// @Summary Create a notification
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification payload"
// @Success 201 {object} models.Notification "Created notification"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	notification, err := h.notificationService.Create(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, notification)
}

// ListNotifications returns a page of the user's notifications
// @Summary List notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param unread_only query bool false "Only unread notifications"
// @Param skip query int false "Offset into the result set" default(0)
// @Param limit query int false "Page size (max 100)" default(50)
// @Success 200 {object} dto.ListNotificationsResponse "Notification page"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListNotificationsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if query.Limit == 0 {
		query.Limit = defaultNotificationPageLimit
	}

	notifications, total, err := h.notificationService.List(userID, query.UnreadOnly, query.Offset, query.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListNotificationsResponse{
		Notifications: notifications,
		Total:         total,
		Offset:        query.Offset,
		Limit:         query.Limit,
	})
}

// MarkNotificationRead marks one notification as read
// @Summary Mark a notification as read
// @Tags Notifications
// @Security BearerAuth
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Marked read"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid notification ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "NOTIFICATION_001 - Notification not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkNotificationRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Notification ID must be a valid UUID"))
	}

	if err := h.notificationService.MarkRead(userID, notificationID); err != nil {
		if goerrors.Is(err, services.ErrNotificationNotFound) {
			return SendError(c, errors.NotificationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead marks all notifications as read
// @Summary Mark all notifications as read
// @Tags Notifications
// @Security BearerAuth
// @Success 204 "Marked read"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllNotificationsRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteNotification removes one notification
// @Summary Delete a notification
// @Tags Notifications
// @Security BearerAuth
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid notification ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "NOTIFICATION_001 - Notification not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Notification ID must be a valid UUID"))
	}

	if err := h.notificationService.Delete(userID, notificationID); err != nil {
		if goerrors.Is(err, services.ErrNotificationNotFound) {
			return SendError(c, errors.NotificationNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteAllNotifications removes all of the user's notifications
// @Summary Delete all notifications
// @Tags Notifications
// @Security BearerAuth
// @Success 204 "Deleted"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications [delete]
func (h *NotificationHandler) DeleteAllNotifications(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.notificationService.DeleteAll(userID); err != nil {
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetNotificationSettings returns the user's delivery preferences
// @Summary Get notification settings
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.NotificationSettings "Settings"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/settings [get]
func (h *NotificationHandler) GetNotificationSettings(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	settings, err := h.notificationService.GetSettings(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}

// UpdateNotificationSettings replaces the user's delivery preferences
// @Summary Update notification settings
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateNotificationSettingsRequest true "Full preference set"
// @Success 200 {object} models.NotificationSettings "Updated settings"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /notifications/settings [put]
func (h *NotificationHandler) UpdateNotificationSettings(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateNotificationSettingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	settings, err := h.notificationService.UpdateSettings(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}
