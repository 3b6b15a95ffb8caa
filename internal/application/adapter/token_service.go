package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService verifies bearer tokens issued by the external auth service.
// This API never issues tokens itself.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
