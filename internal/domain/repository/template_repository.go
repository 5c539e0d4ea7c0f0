// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mailpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTemplateNotFound is returned when a template does not exist or is
// owned by another account.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateRepository defines the standard operations for template persistence.
// All lookups are scoped to the owning account.
type TemplateRepository interface {
	// ListByUserID returns the account's templates, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Template, error)

	// FindByID retrieves a template owned by the given account.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Template, error)

	// Create persists a new template. The store assigns ID and timestamps.
	Create(ctx context.Context, template *entity.Template) error

	// Update modifies an existing template owned by the given account.
	Update(ctx context.Context, template *entity.Template) error

	// Delete removes a template owned by the given account.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
