package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ReminderModel represents the reminders table in the database.
type ReminderModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	GoalID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Message     string     `gorm:"type:text;not null"`
	Urgency     string     `gorm:"type:varchar(10);not null;default:'normal'"`
	Status      string     `gorm:"type:varchar(10);not null;default:'pending';index"`
	Attempts    int        `gorm:"not null;default:0"`
	MaxAttempts int        `gorm:"not null;default:3"`
	LastError   string     `gorm:"type:text"`
	SentAt      *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the ReminderModel.
func (ReminderModel) TableName() string {
	return "reminders"
}

// ToEntity converts a ReminderModel to a domain Reminder entity.
func (m *ReminderModel) ToEntity() *entity.Reminder {
	return &entity.Reminder{
		ID:          m.ID,
		UserID:      m.UserID,
		GoalID:      m.GoalID,
		Title:       m.Title,
		Message:     m.Message,
		Urgency:     entity.ReminderUrgency(m.Urgency),
		Status:      entity.ReminderStatus(m.Status),
		Attempts:    m.Attempts,
		MaxAttempts: m.MaxAttempts,
		LastError:   m.LastError,
		SentAt:      m.SentAt,
		CreatedAt:   m.CreatedAt,
	}
}

// ReminderFromEntity creates a ReminderModel from a domain Reminder entity.
func ReminderFromEntity(reminder *entity.Reminder) *ReminderModel {
	return &ReminderModel{
		ID:          reminder.ID,
		UserID:      reminder.UserID,
		GoalID:      reminder.GoalID,
		Title:       reminder.Title,
		Message:     reminder.Message,
		Urgency:     string(reminder.Urgency),
		Status:      string(reminder.Status),
		Attempts:    reminder.Attempts,
		MaxAttempts: reminder.MaxAttempts,
		LastError:   reminder.LastError,
		SentAt:      reminder.SentAt,
		CreatedAt:   reminder.CreatedAt,
	}
}
