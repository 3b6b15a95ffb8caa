package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// progressRepository implements the adapter.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository instance.
func NewProgressRepository(db *gorm.DB) adapter.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// Upsert writes the day's entry, resolving the (goal_id, recorded_date)
// conflict in the database so concurrent writers converge.
func (r *progressRepository) Upsert(ctx context.Context, entry *entity.ProgressEntry) error {
	entryModel := model.GoalProgressFromEntity(entry)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "goal_id"}, {Name: "recorded_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     entryModel.Amount,
			"notes":      entryModel.Notes,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SumByGoal returns the exact decimal sum of the goal's ledger.
func (r *progressRepository) SumByGoal(ctx context.Context, goalID uuid.UUID) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.GoalProgressModel{}).
		Where("goal_id = ?", goalID).
		Pluck("amount", &amounts)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	// Summed in Go to keep decimal exactness independent of the SQL dialect.
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total, nil
}

// ListByGoal returns the goal's entries ordered by recorded date.
func (r *progressRepository) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.ProgressEntry, error) {
	var entryModels []model.GoalProgressModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("recorded_date ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.ProgressEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}
