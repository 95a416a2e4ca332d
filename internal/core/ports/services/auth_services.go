package services

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/dto"
)

// AuthSvcFacade defines the interface for user registration and login.
type AuthSvcFacade interface {
	// Register creates a new user account with a hashed password.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	// Login verifies credentials and returns a signed token together
	// with the authenticated user.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)
}
