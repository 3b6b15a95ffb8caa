package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProgressEntry represents a single day's contribution toward a goal.
// At most one entry exists per (goal, recorded date); re-submitting the same
// day overwrites the amount rather than adding to it. Amounts are day-scoped
// deltas, never running totals.
type ProgressEntry struct {
	ID           uuid.UUID
	GoalID       uuid.UUID
	UserID       uuid.UUID
	Amount       decimal.Decimal
	Notes        string
	RecordedDate time.Time // calendar date, midnight in the policy zone
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProgressEntry creates a new ProgressEntry entity for the given date.
func NewProgressEntry(goalID, userID uuid.UUID, recordedDate time.Time, amount decimal.Decimal, notes string) *ProgressEntry {
	now := time.Now().UTC()

	return &ProgressEntry{
		ID:           uuid.New(),
		GoalID:       goalID,
		UserID:       userID,
		Amount:       amount,
		Notes:        notes,
		RecordedDate: recordedDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
