// Package reminder contains the reminder generation use case. Delivery is a
// separate concern handled by the email worker.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/notification"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// GenerateRemindersInput represents the input for a reminder sweep. A nil
// UserID sweeps every user.
type GenerateRemindersInput struct {
	UserID *uuid.UUID
}

// CreatedReminder describes one reminder produced by a sweep.
type CreatedReminder struct {
	UserID   uuid.UUID
	GoalID   uuid.UUID
	GoalType string
	Title    string
	Message  string
	Urgency  entity.ReminderUrgency
}

// GenerateRemindersOutput represents the result of a reminder sweep.
type GenerateRemindersOutput struct {
	RemindersCreated  int
	TotalGoalsChecked int
	Reminders         []CreatedReminder
}

// GenerateRemindersUseCase scans active deadline goals and queues progress
// reminders for the ones whose frequency and pace call for a nudge.
type GenerateRemindersUseCase struct {
	goalRepo     adapter.GoalRepository
	reminderRepo adapter.ReminderRepository
	clock        adapter.Clock
}

// NewGenerateRemindersUseCase creates a new GenerateRemindersUseCase instance.
func NewGenerateRemindersUseCase(
	goalRepo adapter.GoalRepository,
	reminderRepo adapter.ReminderRepository,
	clock adapter.Clock,
) *GenerateRemindersUseCase {
	return &GenerateRemindersUseCase{
		goalRepo:     goalRepo,
		reminderRepo: reminderRepo,
		clock:        clock,
	}
}

// Execute runs one sweep. Each queued reminder also stamps the goal's
// last_reminder_sent so the next sweep respects the frequency window.
func (uc *GenerateRemindersUseCase) Execute(ctx context.Context, input GenerateRemindersInput) (*GenerateRemindersOutput, error) {
	goals, err := uc.goalRepo.FindActiveWithDeadline(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals for reminder sweep: %w", err)
	}

	now := uc.clock.Now()
	today := adapter.DateOf(now)

	output := &GenerateRemindersOutput{TotalGoalsChecked: len(goals)}

	for _, goal := range goals {
		if !needsReminder(goal, now, today) {
			continue
		}

		title, message, urgency := reminderContent(goal, today)
		rem := entity.NewReminder(goal.UserID, goal.ID, title, message, urgency)

		if err := uc.reminderRepo.Create(ctx, rem); err != nil {
			slog.Error("Failed to queue reminder", "goal_id", goal.ID, "error", err)
			return nil, domainerror.NewReminderError(
				domainerror.ErrCodeReminderQueueFailed,
				"failed to queue reminder",
				err,
			)
		}

		if err := uc.goalRepo.MarkReminderSent(ctx, goal.ID, now); err != nil {
			slog.Warn("Failed to stamp last reminder time", "goal_id", goal.ID, "error", err)
		}

		output.RemindersCreated++
		output.Reminders = append(output.Reminders, CreatedReminder{
			UserID:   goal.UserID,
			GoalID:   goal.ID,
			GoalType: goal.GoalType,
			Title:    title,
			Message:  message,
			Urgency:  urgency,
		})
	}

	slog.Info("Reminder sweep finished",
		"reminders_created", output.RemindersCreated,
		"goals_checked", output.TotalGoalsChecked,
	)

	return output, nil
}

// needsReminder decides whether a goal gets a nudge right now. Overdue goals
// never do, deadline notifications cover those.
func needsReminder(goal *entity.Goal, now, today time.Time) bool {
	daysRemaining := notification.DaysRemaining(goal, today)
	if daysRemaining < 0 {
		return false
	}

	frequency := goal.ReminderFrequency
	if frequency == "" {
		frequency = entity.ReminderDaily
	}
	if frequency == entity.ReminderNever {
		return false
	}

	if goal.LastReminderSent != nil {
		// last_reminder_sent is an instant; its calendar day is read in the
		// clock's zone before comparing against today.
		daysSince := adapter.DaysBetween(goal.LastReminderSent.In(today.Location()), today)
		switch frequency {
		case entity.ReminderDaily:
			if daysSince < 1 {
				return false
			}
		case entity.ReminderWeekly:
			if daysSince < 7 {
				return false
			}
		}
	}

	if daysRemaining <= 3 {
		return true
	}

	progressPct := goal.ProgressPercentage()
	if goal.DurationDays != nil {
		if expected, ok := valueobject.ExpectedProgress(*goal.DurationDays, daysRemaining); ok && progressPct < expected-20 {
			return true
		}
	}

	if frequency == entity.ReminderDaily && daysRemaining <= 7 {
		return true
	}

	// Longer-horizon goals get a weekly check-in at the start of the week.
	weekday := now.Weekday()
	return weekday == time.Sunday || weekday == time.Monday
}

// reminderContent picks a title, message and urgency for the goal's current
// standing.
func reminderContent(goal *entity.Goal, today time.Time) (string, string, entity.ReminderUrgency) {
	daysRemaining := notification.DaysRemaining(goal, today)
	progressPct := goal.ProgressPercentage()
	goalName := goal.DisplayName()

	switch {
	case daysRemaining <= 0:
		return "⏰ Goal Deadline Today!",
			fmt.Sprintf("Your goal %q is due today! You're at %.1f%% completion. Every bit of progress counts!", goalName, progressPct),
			entity.UrgencyHigh
	case daysRemaining == 1:
		return "🚨 Final Day for Your Goal",
			fmt.Sprintf("Tomorrow is the deadline for %q. You're at %.1f%% - make today count!", goalName, progressPct),
			entity.UrgencyHigh
	case daysRemaining <= 3:
		return fmt.Sprintf("⏳ %d Days Left", daysRemaining),
			fmt.Sprintf("Only %d days remaining for %q. Current progress: %.1f%%. You've got this!", daysRemaining, goalName, progressPct),
			entity.UrgencyMedium
	case progressPct < 25 && daysRemaining <= 7:
		return "📈 Let's Build Momentum",
			fmt.Sprintf("Your goal %q needs some attention. %d days left, %.1f%% complete. Small steps lead to big wins!", goalName, daysRemaining, progressPct),
			entity.UrgencyMedium
	case progressPct >= 75:
		return "🎯 Almost There!",
			fmt.Sprintf("Amazing progress on %q! You're %.1f%% complete with %d days to go. The finish line is in sight!", goalName, progressPct, daysRemaining),
			entity.UrgencyLow
	default:
		return "💪 Keep Going Strong",
			fmt.Sprintf("You're making steady progress on %q - %.1f%% complete. %d days remaining. Consistency is key!", goalName, progressPct, daysRemaining),
			entity.UrgencyNormal
	}
}
