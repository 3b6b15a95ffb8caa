// Package notification contains the read-side goal health use cases.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// Notification is an ephemeral goal-health alert. It is recomputed fresh on
// every query and never persisted; dismissal is the caller's own state.
type Notification struct {
	GoalID             uuid.UUID
	GoalType           string
	Type               valueobject.HealthStatus
	Message            string
	DaysRemaining      int
	ProgressPercentage float64
}

// CheckDeadlinesInput represents the input for a deadline check.
type CheckDeadlinesInput struct {
	UserID uuid.UUID
}

// CheckDeadlinesOutput represents the derived notifications.
type CheckDeadlinesOutput struct {
	Notifications []Notification
	TotalGoals    int
}

// CheckDeadlinesUseCase derives goal health for every active goal with a
// deadline. It is a pure read: no goal or streak state is mutated, so it is
// safe to run on a polling interval.
type CheckDeadlinesUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewCheckDeadlinesUseCase creates a new CheckDeadlinesUseCase instance.
func NewCheckDeadlinesUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *CheckDeadlinesUseCase {
	return &CheckDeadlinesUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute classifies each deadline goal and returns the notifications to show.
func (uc *CheckDeadlinesUseCase) Execute(ctx context.Context, input CheckDeadlinesInput) (*CheckDeadlinesOutput, error) {
	goals, err := uc.goalRepo.FindActiveWithDeadline(ctx, &input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deadline goals: %w", err)
	}

	today := adapter.DateOf(uc.clock.Now())
	notifications := make([]Notification, 0, len(goals))

	for _, goal := range goals {
		if notification, ok := classify(goal, today); ok {
			notifications = append(notifications, notification)
		}
	}

	return &CheckDeadlinesOutput{
		Notifications: notifications,
		TotalGoals:    len(goals),
	}, nil
}

// DaysRemaining returns the whole calendar days between today and the goal's
// end date. The end date is compared in its own location: date columns
// round-trip as UTC midnight, and shifting them into the clock's zone can
// land on the previous day.
func DaysRemaining(goal *entity.Goal, today time.Time) int {
	return adapter.DaysBetween(today, *goal.EndDate)
}

func classify(goal *entity.Goal, today time.Time) (Notification, bool) {
	daysRemaining := DaysRemaining(goal, today)
	progressPct := goal.ProgressPercentage()

	pace := valueobject.GoalPace{
		DaysRemaining:      daysRemaining,
		ProgressPercentage: progressPct,
	}
	if goal.DurationDays != nil {
		pace.ExpectedProgress, pace.HasExpected = valueobject.ExpectedProgress(*goal.DurationDays, daysRemaining)
	}

	status := valueobject.ClassifyGoalHealth(pace)

	var message string
	switch status {
	case valueobject.HealthOverdue:
		message = fmt.Sprintf("Your %s goal is overdue! You achieved %.1f%% of your target.", goal.GoalType, progressPct)
	case valueobject.HealthUrgent:
		message = fmt.Sprintf("Only %d day(s) left for your %s goal! You're at %.1f%% completion.", daysRemaining, goal.GoalType, progressPct)
	case valueobject.HealthBehind:
		message = fmt.Sprintf("You're behind on your %s goal. Expected: %.1f%%, Actual: %.1f%%", goal.GoalType, pace.ExpectedProgress, progressPct)
	case valueobject.HealthAhead:
		message = fmt.Sprintf("Great job! You're ahead on your %s goal! %.1f%% complete.", goal.GoalType, progressPct)
	default:
		return Notification{}, false
	}

	return Notification{
		GoalID:             goal.ID,
		GoalType:           goal.GoalType,
		Type:               status,
		Message:            message,
		DaysRemaining:      daysRemaining,
		ProgressPercentage: progressPct,
	}, true
}
