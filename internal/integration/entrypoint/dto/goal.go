package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	UserID            string  `json:"userId" binding:"required,uuid"`
	GoalType          string  `json:"goalType" binding:"required"`
	Description       string  `json:"description,omitempty"`
	TargetAmount      float64 `json:"targetAmount" binding:"gte=0"`
	TargetUnit        string  `json:"targetUnit" binding:"required"`
	StartDate         *string `json:"startDate,omitempty"`
	EndDate           *string `json:"endDate,omitempty"`
	DurationDays      *int    `json:"durationDays,omitempty" binding:"omitempty,gt=0"`
	ReminderFrequency string  `json:"reminderFrequency,omitempty" binding:"omitempty,oneof=daily weekly never"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	GoalType          string    `json:"goalType"`
	Description       string    `json:"description"`
	TargetAmount      float64   `json:"targetAmount"`
	CurrentAmount     float64   `json:"currentAmount"`
	TargetUnit        string    `json:"targetUnit"`
	StartDate         string    `json:"startDate"`
	EndDate           *string   `json:"endDate,omitempty"`
	DurationDays      *int      `json:"durationDays,omitempty"`
	IsActive          bool      `json:"isActive"`
	ReminderFrequency string    `json:"reminderFrequency"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:                g.ID.String(),
		UserID:            g.UserID.String(),
		GoalType:          g.GoalType,
		Description:       g.Description,
		TargetAmount:      g.TargetAmount.InexactFloat64(),
		CurrentAmount:     g.CurrentAmount.InexactFloat64(),
		TargetUnit:        g.TargetUnit,
		StartDate:         g.StartDate.Format("2006-01-02"),
		DurationDays:      g.DurationDays,
		IsActive:          g.IsActive,
		ReminderFrequency: string(g.ReminderFrequency),
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}

	if g.EndDate != nil {
		dateStr := g.EndDate.Format("2006-01-02")
		response.EndDate = &dateStr
	}

	return response
}

// ToGoalListResponse converts a slice of goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: responses}
}
