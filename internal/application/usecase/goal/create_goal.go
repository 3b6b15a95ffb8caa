// Package goal contains the goal lifecycle use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID            uuid.UUID
	GoalType          string
	Description       string
	TargetAmount      decimal.Decimal
	TargetUnit        string
	StartDate         *time.Time
	EndDate           *time.Time
	DurationDays      *int
	ReminderFrequency string
}

// CreateGoalOutput represents the result of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles the creation of new goals.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute validates the input and persists a new active goal. When only one
// of EndDate and DurationDays is given, the other is derived from StartDate
// so that deadline checks and pace calculations always have both.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.UserID == uuid.Nil || input.GoalType == "" || input.TargetUnit == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"userId, goalType and targetUnit are required",
			domainerror.ErrMissingGoalFields,
		)
	}

	if input.TargetAmount.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must not be negative",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	frequency := entity.ReminderFrequency(input.ReminderFrequency)
	if frequency == "" {
		frequency = entity.ReminderNever
	}
	switch frequency {
	case entity.ReminderDaily, entity.ReminderWeekly, entity.ReminderNever:
	default:
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidReminderFrequency,
			fmt.Sprintf("unsupported reminder frequency %q", input.ReminderFrequency),
			domainerror.ErrInvalidReminderFrequency,
		)
	}

	startDate := adapter.DateOf(uc.clock.Now())
	if input.StartDate != nil {
		startDate = adapter.DateOf(*input.StartDate)
	}

	endDate := input.EndDate
	durationDays := input.DurationDays
	if endDate == nil && durationDays != nil {
		derived := startDate.AddDate(0, 0, *durationDays)
		endDate = &derived
	} else if endDate != nil {
		normalized := adapter.DateOf(*endDate)
		endDate = &normalized
		if durationDays == nil {
			days := adapter.DaysBetween(startDate, normalized)
			durationDays = &days
		}
	}

	goal := entity.NewGoal(
		input.UserID,
		input.GoalType,
		input.Description,
		input.TargetAmount,
		input.TargetUnit,
		startDate,
		endDate,
		durationDays,
		frequency,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Info("Goal created", "goal_id", goal.ID, "user_id", goal.UserID, "goal_type", goal.GoalType)

	return &CreateGoalOutput{Goal: goal}, nil
}
