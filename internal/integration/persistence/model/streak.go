package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// StreakModel represents the streaks table in the database. One row per
// (user_id, streak_type), enforced by a unique index.
type StreakModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_streaks_user_type"`
	StreakType   string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_streaks_user_type"`
	CurrentCount int        `gorm:"not null;default:0"`
	BestCount    int        `gorm:"not null;default:0"`
	LastUpdated  *time.Time `gorm:"type:date"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the StreakModel.
func (StreakModel) TableName() string {
	return "streaks"
}

// ToEntity converts a StreakModel to a domain Streak entity.
func (m *StreakModel) ToEntity() *entity.Streak {
	return &entity.Streak{
		ID:           m.ID,
		UserID:       m.UserID,
		StreakType:   m.StreakType,
		CurrentCount: m.CurrentCount,
		BestCount:    m.BestCount,
		LastUpdated:  m.LastUpdated,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// StreakFromEntity creates a StreakModel from a domain Streak entity.
func StreakFromEntity(streak *entity.Streak) *StreakModel {
	return &StreakModel{
		ID:           streak.ID,
		UserID:       streak.UserID,
		StreakType:   streak.StreakType,
		CurrentCount: streak.CurrentCount,
		BestCount:    streak.BestCount,
		LastUpdated:  streak.LastUpdated,
		CreatedAt:    streak.CreatedAt,
		UpdatedAt:    streak.UpdatedAt,
	}
}
