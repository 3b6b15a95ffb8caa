package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// reminderRepository implements the adapter.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository instance.
func NewReminderRepository(db *gorm.DB) adapter.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// Create persists a new reminder.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	reminderModel := model.ReminderFromEntity(reminder)
	result := r.db.WithContext(ctx).Create(reminderModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetPending returns up to limit pending reminders, oldest first.
func (r *reminderRepository) GetPending(ctx context.Context, limit int) ([]*entity.Reminder, error) {
	var reminderModels []model.ReminderModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.ReminderStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&reminderModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toReminderEntities(reminderModels), nil
}

// Update persists delivery-state changes to a reminder.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	reminderModel := model.ReminderFromEntity(reminder)
	result := r.db.WithContext(ctx).Save(reminderModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListByUser returns the user's reminders, newest first.
func (r *reminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error) {
	var reminderModels []model.ReminderModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reminderModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toReminderEntities(reminderModels), nil
}

func toReminderEntities(reminderModels []model.ReminderModel) []*entity.Reminder {
	reminders := make([]*entity.Reminder, len(reminderModels))
	for i, rm := range reminderModels {
		reminders[i] = rm.ToEntity()
	}
	return reminders
}
