// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	GoalType          string          `gorm:"type:varchar(50);not null;index"`
	Description       string          `gorm:"type:text"`
	TargetAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TargetUnit        string          `gorm:"type:varchar(30);not null"`
	StartDate         time.Time       `gorm:"type:date;not null"`
	EndDate           *time.Time      `gorm:"type:date;index"`
	DurationDays      *int            `gorm:"type:integer"`
	IsActive          bool            `gorm:"not null;default:true;index"`
	ReminderFrequency string          `gorm:"type:varchar(10);not null;default:'never'"`
	LastReminderSent  *time.Time      `gorm:"type:timestamp"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	DeletedAt         gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Goal{
		ID:                m.ID,
		UserID:            m.UserID,
		GoalType:          m.GoalType,
		Description:       m.Description,
		TargetAmount:      m.TargetAmount,
		CurrentAmount:     m.CurrentAmount,
		TargetUnit:        m.TargetUnit,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		DurationDays:      m.DurationDays,
		IsActive:          m.IsActive,
		ReminderFrequency: entity.ReminderFrequency(m.ReminderFrequency),
		LastReminderSent:  m.LastReminderSent,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	return &GoalModel{
		ID:                goal.ID,
		UserID:            goal.UserID,
		GoalType:          goal.GoalType,
		Description:       goal.Description,
		TargetAmount:      goal.TargetAmount,
		CurrentAmount:     goal.CurrentAmount,
		TargetUnit:        goal.TargetUnit,
		StartDate:         goal.StartDate,
		EndDate:           goal.EndDate,
		DurationDays:      goal.DurationDays,
		IsActive:          goal.IsActive,
		ReminderFrequency: string(goal.ReminderFrequency),
		LastReminderSent:  goal.LastReminderSent,
		CreatedAt:         goal.CreatedAt,
		UpdatedAt:         goal.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}
