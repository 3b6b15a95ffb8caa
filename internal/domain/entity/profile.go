package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the onboarding answers used to personalize motivational
// messages: display name, the challenges the user is working on (gym
// consistency, smoking cessation, ...) and their stated motivation.
type Profile struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	DisplayName   string
	Email         string
	Challenges    []string
	Motivation    string
	CurrentHabits string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
