package handlers

import (
	goerrors "errors"
	"net/http"

	"lana-api/internal/dto"
	"lana-api/internal/errors"
	"lana-api/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.UserResponse "Created user"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 409 {object} errors.ErrorResponse "USER_002 - Email already registered"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case goerrors.Is(err, services.ErrUserAlreadyExists):
			return SendError(c, errors.UserAlreadyExists)
		case goerrors.Is(err, services.ErrPasswordTooShort),
			goerrors.Is(err, services.ErrPasswordTooLong),
			goerrors.Is(err, services.ErrPasswordNoUppercase),
			goerrors.Is(err, services.ErrPasswordNoLowercase),
			goerrors.Is(err, services.ErrPasswordNoNumber),
			goerrors.Is(err, services.ErrPasswordNoSpecial):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login authenticates a user and issues an access token
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse "Access token"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid credentials"
// @Failure 422 {object} errors.ErrorResponse "USER_003 - Account inactive"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case goerrors.Is(err, services.ErrInvalidCredentials):
			return SendError(c, errors.AuthInvalidCredentials)
		case goerrors.Is(err, services.ErrUserInactive):
			return SendError(c, errors.UserInactive)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, tokens)
}
