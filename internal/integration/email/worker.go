package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Worker drains the pending reminder queue and delivers each reminder by
// email. Recipients come from the onboarding profile; reminders for users
// without a profile email fail permanently.
type Worker struct {
	reminders    adapter.ReminderRepository
	profiles     adapter.ProfileRepository
	sender       adapter.EmailSender
	clock        adapter.Clock
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the reminder worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 30 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new reminder delivery worker.
func NewWorker(
	reminders adapter.ReminderRepository,
	profiles adapter.ProfileRepository,
	sender adapter.EmailSender,
	clock adapter.Clock,
	config WorkerConfig,
) *Worker {
	return &Worker{
		reminders:    reminders,
		profiles:     profiles,
		sender:       sender,
		clock:        clock,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Reminder worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and delivers a batch of pending reminders.
func (w *Worker) processBatch(ctx context.Context) {
	pending, err := w.reminders.GetPending(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending reminders", "error", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	slog.Debug("Processing reminder batch", "count", len(pending))

	for _, reminder := range pending {
		select {
		case <-ctx.Done():
			return
		default:
			w.deliver(ctx, reminder)
		}
	}
}

// deliver sends one reminder and records the outcome.
func (w *Worker) deliver(ctx context.Context, reminder *entity.Reminder) {
	logger := slog.With(
		"reminder_id", reminder.ID,
		"user_id", reminder.UserID,
		"urgency", reminder.Urgency,
	)

	profile, err := w.profiles.FindByUserID(ctx, reminder.UserID)
	if err != nil || profile.Email == "" {
		if err == nil {
			err = errors.New("profile has no email address")
		}
		logger.Error("Cannot resolve reminder recipient", "error", err)
		w.handleFailure(ctx, reminder, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      profile.Email,
		Name:    profile.DisplayName,
		Subject: reminder.Title,
		HTML:    renderHTML(profile.DisplayName, reminder),
		Text:    reminder.Message,
	})
	if err != nil {
		logger.Error("Failed to send reminder email", "error", err)

		var reminderErr *domainerror.ReminderError
		isPermanent := errors.As(err, &reminderErr) && reminderErr.Code == domainerror.ErrCodePermanentDeliveryFailure

		w.handleFailure(ctx, reminder, err, isPermanent)
		return
	}

	reminder.MarkSent(w.clock.Now())
	if err := w.reminders.Update(ctx, reminder); err != nil {
		logger.Error("Failed to mark reminder as sent", "error", err)
		return
	}

	logger.Info("Reminder delivered", "provider_id", result.ProviderID)
}

// handleFailure records a failed delivery attempt.
func (w *Worker) handleFailure(ctx context.Context, reminder *entity.Reminder, err error, permanent bool) {
	reminder.MarkFailed(err.Error(), permanent)

	if updateErr := w.reminders.Update(ctx, reminder); updateErr != nil {
		slog.Error("Failed to update reminder after failure",
			"reminder_id", reminder.ID,
			"error", updateErr,
		)
	}

	if reminder.Status == entity.ReminderStatusFailed {
		slog.Warn("Reminder permanently failed",
			"reminder_id", reminder.ID,
			"attempts", reminder.Attempts,
			"last_error", reminder.LastError,
		)
	} else {
		slog.Info("Reminder scheduled for retry",
			"reminder_id", reminder.ID,
			"attempts", reminder.Attempts,
		)
	}
}

// renderHTML wraps the reminder message in a minimal HTML body.
func renderHTML(name string, reminder *entity.Reminder) string {
	greeting := "Hi there,"
	if name != "" {
		greeting = fmt.Sprintf("Hi %s,", name)
	}
	return fmt.Sprintf(
		"<html><body><p>%s</p><h2>%s</h2><p>%s</p></body></html>",
		greeting, reminder.Title, reminder.Message,
	)
}

// ProcessNow processes all pending reminders immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
