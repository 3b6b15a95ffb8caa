package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ProfileModel represents the profiles table in the database. Profiles are
// written by the onboarding flow; this service only reads them.
type ProfileModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	DisplayName   string         `gorm:"type:varchar(100)"`
	Email         string         `gorm:"type:varchar(255)"`
	Challenges    pq.StringArray `gorm:"type:text[]"`
	Motivation    string         `gorm:"type:text"`
	CurrentHabits string         `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		ID:            m.ID,
		UserID:        m.UserID,
		DisplayName:   m.DisplayName,
		Email:         m.Email,
		Challenges:    []string(m.Challenges),
		Motivation:    m.Motivation,
		CurrentHabits: m.CurrentHabits,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileFromEntity(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:            profile.ID,
		UserID:        profile.UserID,
		DisplayName:   profile.DisplayName,
		Email:         profile.Email,
		Challenges:    pq.StringArray(profile.Challenges),
		Motivation:    profile.Motivation,
		CurrentHabits: profile.CurrentHabits,
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
}
