package usecase

import (
	"context"

	"mailpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateTemplateInput defines the data required to create a template.
type CreateTemplateInput struct {
	UserID  uuid.UUID
	Name    string
	Subject string
	Content string
}

// UpdateTemplateInput defines the data required to update a template.
type UpdateTemplateInput struct {
	UserID  uuid.UUID
	ID      uuid.UUID
	Name    string
	Subject string
	Content string
}

// TemplateUsecase defines the interface for template-related business operations.
// Every operation is scoped to the calling account.
type TemplateUsecase interface {
	ListTemplates(ctx context.Context, userID uuid.UUID) ([]*entity.Template, error)
	GetTemplate(ctx context.Context, userID, id uuid.UUID) (*entity.Template, error)
	CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*entity.Template, error)
	UpdateTemplate(ctx context.Context, input *UpdateTemplateInput) (*entity.Template, error)
	DeleteTemplate(ctx context.Context, userID, id uuid.UUID) error
}
