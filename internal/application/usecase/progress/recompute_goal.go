// Package progress contains the progress ledger and goal aggregation use cases.
package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// RecomputeGoalInput represents the input for a goal recomputation.
type RecomputeGoalInput struct {
	GoalID uuid.UUID
}

// RecomputeGoalOutput represents the recomputed aggregate state.
type RecomputeGoalOutput struct {
	TotalProgress    decimal.Decimal
	TargetAmount     decimal.Decimal
	GoalType         string
	IsCompleted      bool
	WasJustCompleted bool
}

// RecomputeGoalUseCase rebuilds a goal's cached progress from its ledger.
// The total is always recomputed as a full sum over the entries, never
// trusted as an incrementally maintained counter, so edits, retries and
// out-of-order writes cannot drift the aggregate.
type RecomputeGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
}

// NewRecomputeGoalUseCase creates a new RecomputeGoalUseCase instance.
func NewRecomputeGoalUseCase(goalRepo adapter.GoalRepository, progressRepo adapter.ProgressRepository) *RecomputeGoalUseCase {
	return &RecomputeGoalUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
	}
}

// Execute performs the recomputation and writes the result back to the goal.
// A goal whose total reaches its target is deactivated exactly once; further
// recomputes on an inactive goal still refresh the cached amount but report
// WasJustCompleted as false.
func (uc *RecomputeGoalUseCase) Execute(ctx context.Context, input RecomputeGoalInput) (*RecomputeGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	total, err := uc.progressRepo.SumByGoal(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum progress entries: %w", err)
	}

	// A zero target is satisfied by any non-negative total.
	completed := total.GreaterThanOrEqual(goal.TargetAmount)
	wasJustCompleted := completed && goal.IsActive

	isActive := goal.IsActive
	if wasJustCompleted {
		isActive = false
	}

	if err := uc.goalRepo.UpdateAggregate(ctx, goal.ID, total, isActive); err != nil {
		return nil, fmt.Errorf("failed to update goal aggregate: %w", err)
	}

	return &RecomputeGoalOutput{
		TotalProgress:    total,
		TargetAmount:     goal.TargetAmount,
		GoalType:         goal.GoalType,
		IsCompleted:      completed,
		WasJustCompleted: wasJustCompleted,
	}, nil
}
