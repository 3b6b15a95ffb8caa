// Package streak contains the consecutive-day streak use cases.
package streak

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// AdvanceStreakInput represents the input for a streak advance.
type AdvanceStreakInput struct {
	UserID     uuid.UUID
	StreakType string
}

// AdvanceStreakOutput represents the streak state after the advance.
type AdvanceStreakOutput struct {
	CurrentStreak  int
	BestStreak     int
	IsPersonalBest bool
	WasReset       bool
	Message        string
}

// AdvanceStreakUseCase advances a per-user, per-type streak counter over
// calendar days. It is safe to call unconditionally from the check-in flow:
// repeated calls within one day are no-ops, so the counter never
// double-increments no matter how often the triggering action repeats.
type AdvanceStreakUseCase struct {
	streakRepo adapter.StreakRepository
	clock      adapter.Clock
}

// NewAdvanceStreakUseCase creates a new AdvanceStreakUseCase instance.
func NewAdvanceStreakUseCase(streakRepo adapter.StreakRepository, clock adapter.Clock) *AdvanceStreakUseCase {
	return &AdvanceStreakUseCase{
		streakRepo: streakRepo,
		clock:      clock,
	}
}

// Execute applies the calendar-day transition:
//
//	last update today      -> no-op, return current state
//	last update yesterday  -> continue, count+1
//	last update older      -> reset to 1 (wasReset when a run was lost)
//	no row yet             -> initialize at 1, first personal best
func (uc *AdvanceStreakUseCase) Execute(ctx context.Context, input AdvanceStreakInput) (*AdvanceStreakOutput, error) {
	if input.UserID == uuid.Nil || input.StreakType == "" {
		return nil, domainerror.NewStreakError(
			domainerror.ErrCodeMissingStreakFields,
			"user id and streak type are required",
			domainerror.ErrMissingStreakFields,
		)
	}

	today := adapter.DateOf(uc.clock.Now())

	current, err := uc.streakRepo.FindByUserAndType(ctx, input.UserID, input.StreakType)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	if current == nil {
		fresh := entity.NewStreak(input.UserID, input.StreakType, today)
		if err := uc.streakRepo.Upsert(ctx, fresh); err != nil {
			return nil, fmt.Errorf("failed to create streak: %w", err)
		}
		return &AdvanceStreakOutput{
			CurrentStreak:  1,
			BestStreak:     1,
			IsPersonalBest: true,
			Message:        "Streak started! Day 1.",
		}, nil
	}

	if current.LastUpdated != nil && adapter.SameDay(*current.LastUpdated, today) {
		// Already advanced today; calling again must change nothing.
		return &AdvanceStreakOutput{
			CurrentStreak: current.CurrentCount,
			BestStreak:    current.BestCount,
			Message:       "Already updated today",
		}, nil
	}

	newCount := 1
	wasReset := false
	if current.LastUpdated != nil {
		// Calendar-day gap, not an instant difference: stored dates round-trip
		// as UTC midnight and the clock runs in the configured zone.
		switch gap := adapter.DaysBetween(*current.LastUpdated, today); {
		case gap == 1:
			newCount = current.CurrentCount + 1
		case gap > 1:
			wasReset = current.CurrentCount > 0
		}
	}

	previousBest := current.BestCount
	current.CurrentCount = newCount
	if newCount > current.BestCount {
		current.BestCount = newCount
	}
	current.LastUpdated = &today
	current.UpdatedAt = uc.clock.Now()

	if err := uc.streakRepo.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to update streak: %w", err)
	}

	// Tying the previous best is not a new personal best.
	isPersonalBest := newCount > previousBest

	message := fmt.Sprintf("Streak continued! Day %d.", newCount)
	if wasReset {
		message = "Streak reset, starting fresh at day 1."
	} else if newCount == 1 {
		message = "Streak started! Day 1."
	}

	return &AdvanceStreakOutput{
		CurrentStreak:  newCount,
		BestStreak:     current.BestCount,
		IsPersonalBest: isPersonalBest,
		WasReset:       wasReset,
		Message:        message,
	}, nil
}
