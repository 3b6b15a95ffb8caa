package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/reminder"
)

// maxReportedReminders bounds how many reminders a sweep response echoes back.
const maxReportedReminders = 5

// RunRemindersRequest represents the request body for a reminder sweep.
type RunRemindersRequest struct {
	UserID *string `json:"userId,omitempty" binding:"omitempty,uuid"`
}

// CreatedReminderResponse represents one reminder produced by a sweep.
type CreatedReminderResponse struct {
	UserID   string `json:"userId"`
	GoalID   string `json:"goalId"`
	GoalType string `json:"goalType"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Urgency  string `json:"urgency"`
}

// RunRemindersResponse represents the result of a reminder sweep.
type RunRemindersResponse struct {
	Success           bool                      `json:"success"`
	RemindersCreated  int                       `json:"remindersCreated"`
	TotalGoalsChecked int                       `json:"totalGoalsChecked"`
	Reminders         []CreatedReminderResponse `json:"reminders"`
}

// ToRunRemindersResponse converts a GenerateRemindersOutput to its DTO.
func ToRunRemindersResponse(output *reminder.GenerateRemindersOutput) RunRemindersResponse {
	reported := output.Reminders
	if len(reported) > maxReportedReminders {
		reported = reported[:maxReportedReminders]
	}

	reminders := make([]CreatedReminderResponse, len(reported))
	for i, r := range reported {
		reminders[i] = CreatedReminderResponse{
			UserID:   r.UserID.String(),
			GoalID:   r.GoalID.String(),
			GoalType: r.GoalType,
			Title:    r.Title,
			Message:  r.Message,
			Urgency:  string(r.Urgency),
		}
	}

	return RunRemindersResponse{
		Success:           true,
		RemindersCreated:  output.RemindersCreated,
		TotalGoalsChecked: output.TotalGoalsChecked,
		Reminders:         reminders,
	}
}
