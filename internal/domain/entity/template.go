// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Template is a reusable email body a user can attach to campaigns.
type Template struct {
	ID        uuid.UUID // Unique identifier, assigned by the store at creation.
	UserID    uuid.UUID // Owning account; templates are never shared across accounts.
	Name      string    // Display name shown in the dashboard.
	Subject   string    // Email subject line.
	Content   string    // HTML body.
	CreatedAt time.Time
	UpdatedAt time.Time
}
