package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
)

// DashboardRequest represents the request body for a dashboard read.
type DashboardRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

// DashboardGoalResponse represents one goal's statistics on the dashboard.
type DashboardGoalResponse struct {
	ID                 string  `json:"id"`
	GoalType           string  `json:"goalType"`
	Description        string  `json:"description"`
	Progress           float64 `json:"progress"`
	Target             float64 `json:"target"`
	ProgressPercentage float64 `json:"progressPercentage"`
	DaysRemaining      *int    `json:"daysRemaining"`
	IsOverdue          bool    `json:"isOverdue"`
	Unit               string  `json:"unit"`
}

// DashboardResponse represents the dashboard aggregates.
type DashboardResponse struct {
	Goals            []DashboardGoalResponse `json:"goals"`
	TotalActiveGoals int                     `json:"totalActiveGoals"`
	CompletedGoals   int                     `json:"completedGoals"`
	OverdueGoals     int                     `json:"overdueGoals"`
}

// ToDashboardResponse converts a GetDashboardOutput to its DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	goals := make([]DashboardGoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = DashboardGoalResponse{
			ID:                 g.ID.String(),
			GoalType:           g.GoalType,
			Description:        g.Description,
			Progress:           g.Progress.InexactFloat64(),
			Target:             g.Target.InexactFloat64(),
			ProgressPercentage: g.ProgressPercentage,
			DaysRemaining:      g.DaysRemaining,
			IsOverdue:          g.IsOverdue,
			Unit:               g.Unit,
		}
	}

	return DashboardResponse{
		Goals:            goals,
		TotalActiveGoals: output.TotalActiveGoals,
		CompletedGoals:   output.CompletedGoals,
		OverdueGoals:     output.OverdueGoals,
	}
}
