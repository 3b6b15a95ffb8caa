package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/progress"
)

// RecordProgressRequest represents the request body for recording progress.
type RecordProgressRequest struct {
	UserID string  `json:"userId" binding:"required,uuid"`
	GoalID string  `json:"goalId" binding:"required,uuid"`
	Amount float64 `json:"progressAmount"`
	Notes  string  `json:"notes,omitempty"`
}

// RecordProgressResponse represents the result of recording progress.
type RecordProgressResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	TotalProgress float64 `json:"totalProgress"`
	TargetAmount  float64 `json:"targetAmount"`
	IsCompleted   bool    `json:"isCompleted"`
}

// ToRecordProgressResponse converts a RecordProgressOutput to its DTO.
func ToRecordProgressResponse(output *progress.RecordProgressOutput) RecordProgressResponse {
	return RecordProgressResponse{
		Success:       true,
		Message:       output.Message,
		TotalProgress: output.TotalProgress.InexactFloat64(),
		TargetAmount:  output.TargetAmount.InexactFloat64(),
		IsCompleted:   output.IsCompleted,
	}
}
