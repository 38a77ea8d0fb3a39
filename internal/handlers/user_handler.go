package handlers

import (
	goerrors "errors"
	"net/http"

	"lana-api/internal/dto"
	"lana-api/internal/errors"
	"lana-api/internal/models"
	"lana-api/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles profile requests for the authenticated user
type UserHandler struct {
	authService services.AuthServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService services.AuthServiceInterface) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Me returns the authenticated user's profile
// @Summary Get own profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse "User profile"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		if goerrors.Is(err, services.ErrUserNotFound) {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateMe applies a partial update to the authenticated user's profile
// @Summary Update own profile
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "Profile fields to change"
// @Success 200 {object} dto.UserResponse "Updated profile"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 409 {object} errors.ErrorResponse "USER_002 - Email already registered"
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	user, err := h.authService.UpdateProfile(userID, &req)
	if err != nil {
		switch {
		case goerrors.Is(err, services.ErrUserNotFound):
			return SendError(c, errors.UserNotFound)
		case goerrors.Is(err, services.ErrUserAlreadyExists):
			return SendError(c, errors.UserAlreadyExists)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteMe soft-deletes the authenticated user's account
// @Summary Delete own account
// @Tags Users
// @Security BearerAuth
// @Success 204 "Deleted"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.authService.DeleteAccount(userID); err != nil {
		if goerrors.Is(err, services.ErrUserNotFound) {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
