package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the result of fetching a goal.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase fetches one goal, enforcing ownership.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute returns the goal when it exists and belongs to the caller. A goal
// owned by another user is reported as not found.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
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

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	return &GetGoalOutput{Goal: goal}, nil
}
