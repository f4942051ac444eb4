package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService validates the access tokens minted by the external identity
// provider and can mint tokens itself for tests and tooling.
type TokenService interface {
	// GenerateToken creates a signed access token for a user and roles.
	GenerateToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
