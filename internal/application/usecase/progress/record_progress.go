package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// RecordProgressInput represents a day's contribution toward a goal.
type RecordProgressInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount float64
	Notes  string
}

// RecordProgressOutput represents the result of recording progress, including
// the freshly recomputed aggregate so the caller never needs a second read.
type RecordProgressOutput struct {
	TotalProgress decimal.Decimal
	TargetAmount  decimal.Decimal
	IsCompleted   bool
	Message       string
}

// RecordProgressUseCase upserts today's ledger entry for a goal and triggers
// the aggregate recomputation synchronously. Re-sending the same amount on
// the same day has no additional effect; sending a different amount corrects
// the day's figure instead of adding to it.
type RecordProgressUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
	recompute    *RecomputeGoalUseCase
	cache        adapter.DashboardCache
	clock        adapter.Clock
}

// NewRecordProgressUseCase creates a new RecordProgressUseCase instance.
func NewRecordProgressUseCase(
	goalRepo adapter.GoalRepository,
	progressRepo adapter.ProgressRepository,
	recompute *RecomputeGoalUseCase,
	cache adapter.DashboardCache,
	clock adapter.Clock,
) *RecordProgressUseCase {
	return &RecordProgressUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
		recompute:    recompute,
		cache:        cache,
		clock:        clock,
	}
}

// Execute records the contribution for today and returns the updated totals.
func (uc *RecordProgressUseCase) Execute(ctx context.Context, input RecordProgressInput) (*RecordProgressOutput, error) {
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || input.Amount < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidProgressAmount,
			"progress amount must be a finite, non-negative number",
			domainerror.ErrInvalidProgressAmount,
		)
	}

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

	// A goal owned by someone else is indistinguishable from a missing one.
	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	today := adapter.DateOf(uc.clock.Now())
	entry := entity.NewProgressEntry(goal.ID, input.UserID, today, decimal.NewFromFloat(input.Amount), input.Notes)

	if err := uc.progressRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to upsert progress entry: %w", err)
	}

	aggregate, err := uc.recompute.Execute(ctx, RecomputeGoalInput{GoalID: goal.ID})
	if err != nil {
		return nil, err
	}

	// Stale dashboards are tolerable, a failed invalidation is not an error.
	if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate dashboard cache", "user_id", input.UserID, "error", err)
	}

	message := fmt.Sprintf("Progress updated! Total: %s/%s",
		aggregate.TotalProgress.String(), aggregate.TargetAmount.String())
	if aggregate.IsCompleted {
		message = fmt.Sprintf("🎉 Congratulations! You've completed your %s goal!", aggregate.GoalType)
	}

	return &RecordProgressOutput{
		TotalProgress: aggregate.TotalProgress,
		TargetAmount:  aggregate.TargetAmount,
		IsCompleted:   aggregate.IsCompleted,
		Message:       message,
	}, nil
}
