package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ProgressRepository defines the interface for the progress ledger.
type ProgressRepository interface {
	// Upsert writes the day's entry for (entry.GoalID, entry.RecordedDate),
	// overwriting any prior amount and notes for that day. The conflict
	// resolution happens atomically at the storage layer, so concurrent
	// retries converge to last-writer-wins.
	Upsert(ctx context.Context, entry *entity.ProgressEntry) error

	// SumByGoal returns the exact sum of every entry amount for the goal.
	SumByGoal(ctx context.Context, goalID uuid.UUID) (decimal.Decimal, error)

	// ListByGoal returns the goal's entries ordered by recorded date.
	ListByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.ProgressEntry, error)
}
