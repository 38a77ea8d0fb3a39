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
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
)

// authService implements AuthServiceInterface
type authService struct {
	userRepo        repositories.UserRepositoryInterface
	tokenService    TokenServiceInterface
	passwordService PasswordServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAuthService creates an auth service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	tokenService TokenServiceInterface,
	passwordService PasswordServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &authService{
		userRepo:        userRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Register creates a new active user account
func (s *authService) Register(req *dto.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	passwordHash, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "registered"})
	if count, err := s.userRepo.CountActive(); err == nil {
		s.metrics.RecordGauge("active_users", float64(count), nil)
	}
	s.logger.Info("user registered", "user_id", user.ID)

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords produce the same error.
func (s *authService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login"})
	s.logger.Info("user logged in", "user_id", user.ID)

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// GetProfile returns the user's own record
func (s *authService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update to the user's own record. An email
// change is rejected when the new address belongs to another user.
func (s *authService) UpdateProfile(userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		other, err := s.userRepo.GetByEmail(*req.Email)
		if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check email availability: %w", err)
		}
		if other != nil {
			return nil, ErrUserAlreadyExists
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteAccount soft-deletes the user's own record
func (s *authService) DeleteAccount(userID uuid.UUID) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "account_deleted"})
	if count, err := s.userRepo.CountActive(); err == nil {
		s.metrics.RecordGauge("active_users", float64(count), nil)
	}
	s.logger.Info("user account deleted", "user_id", userID)

	return nil
}
