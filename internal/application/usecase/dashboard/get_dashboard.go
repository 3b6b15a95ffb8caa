// Package dashboard contains the goal dashboard read-side use case.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/notification"
)

// GoalStats summarizes one active goal for the dashboard.
type GoalStats struct {
	ID                 uuid.UUID       `json:"id"`
	GoalType           string          `json:"goalType"`
	Description        string          `json:"description"`
	Progress           decimal.Decimal `json:"progress"`
	Target             decimal.Decimal `json:"target"`
	ProgressPercentage float64         `json:"progressPercentage"`
	DaysRemaining      *int            `json:"daysRemaining"`
	IsOverdue          bool            `json:"isOverdue"`
	Unit               string          `json:"unit"`
}

// GetDashboardInput represents the input for a dashboard read.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// GetDashboardOutput aggregates the user's active goals.
type GetDashboardOutput struct {
	Goals            []GoalStats `json:"goals"`
	TotalActiveGoals int         `json:"totalActiveGoals"`
	CompletedGoals   int         `json:"completedGoals"`
	OverdueGoals     int         `json:"overdueGoals"`
}

// GetDashboardUseCase assembles per-goal progress statistics for the user's
// active goals. Results are cached briefly per user; progress writes
// invalidate the cache so the dashboard is fresh right after a check-in.
type GetDashboardUseCase struct {
	goalRepo adapter.GoalRepository
	cache    adapter.DashboardCache
	clock    adapter.Clock
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(goalRepo adapter.GoalRepository, cache adapter.DashboardCache, clock adapter.Clock) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		goalRepo: goalRepo,
		cache:    cache,
		clock:    clock,
	}
}

// Execute returns the dashboard, serving from cache when possible.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	if cached, err := uc.cache.Get(ctx, input.UserID); err != nil {
		slog.Warn("Dashboard cache read failed", "user_id", input.UserID, "error", err)
	} else if cached != nil {
		var output GetDashboardOutput
		if err := json.Unmarshal(cached, &output); err == nil {
			return &output, nil
		}
		// A corrupt entry is treated as a miss and recomputed below.
	}

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active goals: %w", err)
	}

	today := adapter.DateOf(uc.clock.Now())
	stats := make([]GoalStats, 0, len(goals))
	completed := 0
	overdue := 0

	for _, goal := range goals {
		pct := goal.ProgressPercentage()
		if pct > 100 {
			pct = 100
		}

		var daysRemaining *int
		isOverdue := false
		if goal.EndDate != nil {
			days := notification.DaysRemaining(goal, today)
			daysRemaining = &days
			isOverdue = days < 0
		}

		if pct >= 100 {
			completed++
		}
		if isOverdue {
			overdue++
		}

		stats = append(stats, GoalStats{
			ID:                 goal.ID,
			GoalType:           goal.GoalType,
			Description:        goal.Description,
			Progress:           goal.CurrentAmount,
			Target:             goal.TargetAmount,
			ProgressPercentage: pct,
			DaysRemaining:      daysRemaining,
			IsOverdue:          isOverdue,
			Unit:               goal.TargetUnit,
		})
	}

	output := &GetDashboardOutput{
		Goals:            stats,
		TotalActiveGoals: len(stats),
		CompletedGoals:   completed,
		OverdueGoals:     overdue,
	}

	if payload, err := json.Marshal(output); err == nil {
		if err := uc.cache.Set(ctx, input.UserID, payload); err != nil {
			slog.Warn("Dashboard cache write failed", "user_id", input.UserID, "error", err)
		}
	}

	return output, nil
}
