// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mailpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	CompanyName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with a fresh session token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and issues a session token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// CurrentUser resolves the account behind a validated token's user ID.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
