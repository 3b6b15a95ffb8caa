package adapter

import (
	"context"

	"github.com/google/uuid"
)

// DashboardCache caches serialized dashboard payloads per user. The cache is
// best-effort: implementations and callers treat failures as a miss, never as
// an error the user sees. Progress writes invalidate the owner's entry.
type DashboardCache interface {
	// Get returns the cached payload, or (nil, nil) on a miss.
	Get(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// Set stores the payload for the configured TTL.
	Set(ctx context.Context, userID uuid.UUID, payload []byte) error

	// Invalidate drops the user's cached dashboard.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
