// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mailpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	// The returned entity carries no password hash; it is the projection
	// used to resolve the authenticated caller.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address,
	// including the stored password hash for credential verification.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. The store assigns ID and CreatedAt and
	// enforces email uniqueness; a concurrent duplicate insert surfaces
	// as the domain conflict error even when an earlier existence check
	// passed.
	Create(ctx context.Context, user *entity.User) error
}
