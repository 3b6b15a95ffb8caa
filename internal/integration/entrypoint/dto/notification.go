package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/notification"
)

// CheckDeadlinesRequest represents the request body for a deadline check.
type CheckDeadlinesRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

// NotificationResponse represents one deadline notification.
type NotificationResponse struct {
	GoalID             string  `json:"goalId"`
	GoalType           string  `json:"goalType"`
	Type               string  `json:"type"`
	Message            string  `json:"message"`
	DaysRemaining      int     `json:"daysRemaining"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// CheckDeadlinesResponse represents the derived notifications.
type CheckDeadlinesResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalGoals    int                    `json:"totalGoals"`
}

// ToCheckDeadlinesResponse converts a CheckDeadlinesOutput to its DTO.
func ToCheckDeadlinesResponse(output *notification.CheckDeadlinesOutput) CheckDeadlinesResponse {
	notifications := make([]NotificationResponse, len(output.Notifications))
	for i, n := range output.Notifications {
		notifications[i] = NotificationResponse{
			GoalID:             n.GoalID.String(),
			GoalType:           n.GoalType,
			Type:               string(n.Type),
			Message:            n.Message,
			DaysRemaining:      n.DaysRemaining,
			ProgressPercentage: n.ProgressPercentage,
		}
	}

	return CheckDeadlinesResponse{
		Notifications: notifications,
		TotalGoals:    output.TotalGoals,
	}
}
