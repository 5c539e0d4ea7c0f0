// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSent      CampaignStatus = "sent"
)

// Campaign is a planned mailing. Sending is a status transition only;
// no message delivery happens in this system.
type Campaign struct {
	ID         uuid.UUID // Unique identifier, assigned by the store at creation.
	UserID     uuid.UUID // Owning account.
	Name       string
	Status     CampaignStatus // New campaigns always start as draft.
	TemplateID uuid.UUID      // The template this campaign mails out.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
