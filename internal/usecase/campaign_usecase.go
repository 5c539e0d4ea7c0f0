package usecase

import (
	"context"

	"mailpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCampaignInput defines the data required to create a campaign.
type CreateCampaignInput struct {
	UserID     uuid.UUID
	Name       string
	TemplateID uuid.UUID
}

// UpdateCampaignInput defines the data required to update a campaign.
type UpdateCampaignInput struct {
	UserID     uuid.UUID
	ID         uuid.UUID
	Name       string
	TemplateID uuid.UUID
}

// CampaignUsecase defines the interface for campaign-related business operations.
// Every operation is scoped to the calling account.
type CampaignUsecase interface {
	ListCampaigns(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error)
	GetCampaign(ctx context.Context, userID, id uuid.UUID) (*entity.Campaign, error)
	CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*entity.Campaign, error)
	UpdateCampaign(ctx context.Context, input *UpdateCampaignInput) (*entity.Campaign, error)
	DeleteCampaign(ctx context.Context, userID, id uuid.UUID) error

	// SendCampaign marks the campaign as sent. No mail delivery happens;
	// the transition only feeds the dashboard aggregates.
	SendCampaign(ctx context.Context, userID, id uuid.UUID) (*entity.Campaign, error)
}
