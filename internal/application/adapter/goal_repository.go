package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindActiveByUserID retrieves the user's active goals.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindActiveWithDeadline retrieves active goals that carry an end date.
	// A nil userID returns matching goals across all users.
	FindActiveWithDeadline(ctx context.Context, userID *uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// UpdateAggregate rewrites the goal's derived progress state: the cached
	// current amount and, on completion, the active flag.
	UpdateAggregate(ctx context.Context, id uuid.UUID, currentAmount decimal.Decimal, isActive bool) error

	// MarkReminderSent stamps the goal's last reminder timestamp.
	MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error

	// Delete removes a goal from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
