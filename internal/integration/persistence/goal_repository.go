// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// FindActiveByUserID retrieves the user's active goals.
func (r *goalRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// FindActiveWithDeadline retrieves active goals that carry an end date,
// across all users or scoped to one.
func (r *goalRepository) FindActiveWithDeadline(ctx context.Context, userID *uuid.UUID) ([]*entity.Goal, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ? AND end_date IS NOT NULL", true)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var goalModels []model.GoalModel
	result := query.Order("end_date ASC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// UpdateAggregate rewrites the goal's derived progress state in one update.
func (r *goalRepository) UpdateAggregate(ctx context.Context, id uuid.UUID, currentAmount decimal.Decimal, isActive bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_amount": currentAmount,
			"is_active":      isActive,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// MarkReminderSent stamps the goal's last reminder time.
func (r *goalRepository) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", id).
		Update("last_reminder_sent", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete soft-deletes a goal.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

func toGoalEntities(goalModels []model.GoalModel) []*entity.Goal {
	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals
}
