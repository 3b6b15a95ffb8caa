// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReminderFrequency represents how often a goal wants progress reminders.
type ReminderFrequency string

const (
	ReminderDaily  ReminderFrequency = "daily"
	ReminderWeekly ReminderFrequency = "weekly"
	ReminderNever  ReminderFrequency = "never"
)

// Goal represents a user-defined target the system tracks progress against.
// CurrentAmount is derived state: it always equals the sum of the goal's
// progress entries and is rewritten on every recompute, never incremented.
type Goal struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	GoalType          string
	Description       string
	TargetAmount      decimal.Decimal
	CurrentAmount     decimal.Decimal
	TargetUnit        string
	StartDate         time.Time
	EndDate           *time.Time
	DurationDays      *int
	IsActive          bool
	ReminderFrequency ReminderFrequency
	LastReminderSent  *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity.
func NewGoal(
	userID uuid.UUID,
	goalType string,
	description string,
	targetAmount decimal.Decimal,
	targetUnit string,
	startDate time.Time,
	endDate *time.Time,
	durationDays *int,
	frequency ReminderFrequency,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:                uuid.New(),
		UserID:            userID,
		GoalType:          goalType,
		Description:       description,
		TargetAmount:      targetAmount,
		CurrentAmount:     decimal.Zero,
		TargetUnit:        targetUnit,
		StartDate:         startDate,
		EndDate:           endDate,
		DurationDays:      durationDays,
		IsActive:          true,
		ReminderFrequency: frequency,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// ProgressPercentage returns the completion percentage, uncapped.
// A zero target counts as fully complete.
func (g *Goal) ProgressPercentage() float64 {
	if g.TargetAmount.IsZero() {
		return 100
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// HasDeadline reports whether the goal carries an end date.
func (g *Goal) HasDeadline() bool {
	return g.EndDate != nil
}

// DisplayName returns the description when present, otherwise the goal type
// with underscores spelled out.
func (g *Goal) DisplayName() string {
	if g.Description != "" {
		return g.Description
	}
	return strings.ReplaceAll(g.GoalType, "_", " ")
}
