package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ProfileRepository defines read access to onboarding profiles. Profiles are
// written by the external onboarding flow; the core only consumes them.
type ProfileRepository interface {
	// FindByUserID retrieves the user's profile.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
