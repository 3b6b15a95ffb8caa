package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// streakRepository implements the adapter.StreakRepository interface.
type streakRepository struct {
	db *gorm.DB
}

// NewStreakRepository creates a new streak repository instance.
func NewStreakRepository(db *gorm.DB) adapter.StreakRepository {
	return &streakRepository{
		db: db,
	}
}

// FindByUserAndType retrieves the streak row, or (nil, nil) when the streak
// has not been started yet.
func (r *streakRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, streakType string) (*entity.Streak, error) {
	var streakModel model.StreakModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND streak_type = ?", userID, streakType).
		First(&streakModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return streakModel.ToEntity(), nil
}

// Upsert writes the streak row keyed on (user_id, streak_type).
func (r *streakRepository) Upsert(ctx context.Context, streak *entity.Streak) error {
	streakModel := model.StreakFromEntity(streak)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "streak_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_count", "best_count", "last_updated", "updated_at",
		}),
	}).Create(streakModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
