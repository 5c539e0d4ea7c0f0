package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel mirrors the 'campaigns' table.
type CampaignModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:draft"`
	TemplateID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
