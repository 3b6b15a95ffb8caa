package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/motivation"
)

// MotivationRequest represents the request body for a motivation message.
type MotivationRequest struct {
	UserMessage string `json:"userMessage,omitempty"`
}

// MotivationResponse represents the generated motivation. Error is set when
// the canned fallback was served instead of an AI reply.
type MotivationResponse struct {
	Motivation string `json:"motivation"`
	Error      string `json:"error,omitempty"`
}

// ToMotivationResponse converts a GetMotivationOutput to its DTO.
func ToMotivationResponse(output *motivation.GetMotivationOutput) MotivationResponse {
	response := MotivationResponse{
		Motivation: output.Motivation,
	}
	if output.Fallback {
		response.Error = "Using fallback motivation"
	}
	return response
}
