// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account identity. Exactly one User exists per
// email value; uniqueness is enforced by the store's unique constraint.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned by the store at creation.
	Name         string    // The user's display name.
	Email        string    // Login identifier, case-sensitive as stored.
	PasswordHash string    // Salted bcrypt hash of the password. Never serialized to clients.
	CompanyName  string    // Organization the account belongs to.
	CreatedAt    time.Time // Set once at creation, immutable thereafter.
}
