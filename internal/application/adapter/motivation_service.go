package adapter

import "context"

// MotivationRequest carries the user context a motivational message is
// generated from.
type MotivationRequest struct {
	UserName    string
	Goal        string
	StreakDay   int
	Challenge   string
	UserMessage string
}

// MotivationService defines the interface for the AI text-completion service
// that produces short motivational messages.
type MotivationService interface {
	// Generate produces a short, supportive reply for the given context.
	Generate(ctx context.Context, request *MotivationRequest) (string, error)

	// IsAvailable checks if the service is configured.
	IsAvailable() bool
}
