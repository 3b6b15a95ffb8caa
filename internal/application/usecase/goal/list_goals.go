package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing a user's goals.
type ListGoalsInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListGoalsOutput represents the result of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase returns the goals owned by a user.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{goalRepo: goalRepo}
}

// Execute lists the user's goals, optionally restricted to active ones.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	var (
		goals []*entity.Goal
		err   error
	)
	if input.ActiveOnly {
		goals, err = uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	} else {
		goals, err = uc.goalRepo.FindByUserID(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return &ListGoalsOutput{Goals: goals}, nil
}
