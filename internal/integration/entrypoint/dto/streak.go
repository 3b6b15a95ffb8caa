package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/streak"
)

// UpdateStreakRequest represents the request body for a streak update.
type UpdateStreakRequest struct {
	UserID     string `json:"userId" binding:"required,uuid"`
	StreakType string `json:"streakType" binding:"required"`
}

// StreakResponse represents the streak state after an update.
type StreakResponse struct {
	Success        bool   `json:"success"`
	CurrentStreak  int    `json:"currentStreak"`
	BestStreak     int    `json:"bestStreak"`
	IsPersonalBest bool   `json:"isPersonalBest"`
	WasReset       bool   `json:"wasStreakReset"`
	Message        string `json:"message"`
}

// ToStreakResponse converts an AdvanceStreakOutput to its DTO.
func ToStreakResponse(output *streak.AdvanceStreakOutput) StreakResponse {
	return StreakResponse{
		Success:        true,
		CurrentStreak:  output.CurrentStreak,
		BestStreak:     output.BestStreak,
		IsPersonalBest: output.IsPersonalBest,
		WasReset:       output.WasReset,
		Message:        output.Message,
	}
}
