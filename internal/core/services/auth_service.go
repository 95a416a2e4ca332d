package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	portsrepo "github.com/nairabooks/naira_books_app/internal/core/ports/repositories"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/nairabooks/naira_books_app/internal/utils"
	"github.com/nairabooks/naira_books_app/pkg/config"
)

// AuthService handles user registration, login and token issuance.
type AuthService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, ur portsrepo.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: ur}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Register creates a new user account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save new user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// Login verifies credentials and returns a signed JWT with the user.
// Invalid email and invalid password both fail with ErrForbidden so the
// response does not reveal which one was wrong.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to look up user for login", slog.String("email", req.Email))
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.GetLogger(ctx).Warn("Login failed: bad password", slog.String("user_id", user.UserID))
		return "", nil, apperrors.ErrForbidden
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate token", slog.String("user_id", user.UserID))
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return token, user, nil
}
