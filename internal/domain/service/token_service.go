package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in a session token.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless: any holder of a valid, unexpired, correctly-signed
// token is treated as that account until the token expires.
type TokenService interface {
	// GenerateToken creates a signed session token embedding the account
	// identifier and email.
	GenerateToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken checks signature and expiry and returns the embedded claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
