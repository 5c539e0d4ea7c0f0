package model

import (
	"time"

	"github.com/google/uuid"
)

// TemplateModel mirrors the 'templates' table.
type TemplateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TemplateModel) TableName() string {
	return "templates"
}
