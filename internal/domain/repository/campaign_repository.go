// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"mailpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCampaignNotFound is returned when a campaign does not exist or is
// owned by another account.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository defines the standard operations for campaign persistence.
// All lookups are scoped to the owning account.
type CampaignRepository interface {
	// ListByUserID returns the account's campaigns, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error)

	// FindByID retrieves a campaign owned by the given account.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Campaign, error)

	// Create persists a new campaign. The store assigns ID and timestamps.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// Update modifies an existing campaign owned by the given account.
	Update(ctx context.Context, campaign *entity.Campaign) error

	// Delete removes a campaign owned by the given account.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// CountByUserID returns the total and sent campaign counts for the
	// account, used by the dashboard aggregates.
	CountByUserID(ctx context.Context, userID uuid.UUID) (total int64, sent int64, err error)
}
