package entity

import (
	"time"

	"github.com/google/uuid"
)

// Streak is a consecutive-day completion counter for a recurring action.
// One row exists per (user, streak type); it is created lazily on the first
// qualifying action and advanced at most once per calendar day.
type Streak struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	StreakType   string
	CurrentCount int
	BestCount    int
	LastUpdated  *time.Time // calendar date of the last advance, not a timestamp
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewStreak creates a fresh streak starting at one for the given day.
func NewStreak(userID uuid.UUID, streakType string, day time.Time) *Streak {
	now := time.Now().UTC()

	return &Streak{
		ID:           uuid.New(),
		UserID:       userID,
		StreakType:   streakType,
		CurrentCount: 1,
		BestCount:    1,
		LastUpdated:  &day,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
