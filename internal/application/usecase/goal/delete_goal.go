package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for deleting a goal.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalUseCase soft-deletes a goal and drops the owner's cached
// dashboard so the goal disappears immediately.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.DashboardCache
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, cache adapter.DashboardCache) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		cache:    cache,
	}
}

// Execute deletes the goal after checking ownership.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Dashboard cache invalidation failed", "user_id", input.UserID, "error", err)
	}

	slog.Info("Goal deleted", "goal_id", input.GoalID, "user_id", input.UserID)

	return nil
}
