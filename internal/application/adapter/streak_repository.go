package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// StreakRepository defines the interface for streak persistence operations.
type StreakRepository interface {
	// FindByUserAndType retrieves the streak row for (userID, streakType).
	// Returns (nil, nil) when no row exists yet.
	FindByUserAndType(ctx context.Context, userID uuid.UUID, streakType string) (*entity.Streak, error)

	// Upsert writes the streak row keyed on (userID, streakType).
	Upsert(ctx context.Context, streak *entity.Streak) error
}
