package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GoalProgressModel represents the goal_progress table in the database.
// The unique index on (goal_id, recorded_date) backs the one-entry-per-day
// upsert.
type GoalProgressModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_goal_progress_goal_date"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notes        string          `gorm:"type:text"`
	RecordedDate time.Time       `gorm:"type:date;not null;uniqueIndex:idx_goal_progress_goal_date"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalProgressModel.
func (GoalProgressModel) TableName() string {
	return "goal_progress"
}

// ToEntity converts a GoalProgressModel to a domain ProgressEntry entity.
func (m *GoalProgressModel) ToEntity() *entity.ProgressEntry {
	return &entity.ProgressEntry{
		ID:           m.ID,
		GoalID:       m.GoalID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		Notes:        m.Notes,
		RecordedDate: m.RecordedDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GoalProgressFromEntity creates a GoalProgressModel from a domain ProgressEntry entity.
func GoalProgressFromEntity(entry *entity.ProgressEntry) *GoalProgressModel {
	return &GoalProgressModel{
		ID:           entry.ID,
		GoalID:       entry.GoalID,
		UserID:       entry.UserID,
		Amount:       entry.Amount,
		Notes:        entry.Notes,
		RecordedDate: entry.RecordedDate,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
}
