package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder persistence operations.
type ReminderRepository interface {
	// Create persists a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error

	// GetPending returns up to limit pending reminders, oldest first.
	GetPending(ctx context.Context, limit int) ([]*entity.Reminder, error)

	// Update persists delivery-state changes to a reminder.
	Update(ctx context.Context, reminder *entity.Reminder) error

	// ListByUser returns the user's reminders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error)
}
