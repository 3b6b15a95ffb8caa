// Package motivation contains the AI motivation use case.
package motivation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// fallbackMessage is served whenever the AI provider is unavailable or fails,
// so the caller always gets something encouraging back.
const fallbackMessage = "Keep going! You're doing great and every step forward counts. Your commitment to your goals is inspiring!"

const dailyCheckinStreak = "daily_checkin"

// GetMotivationInput represents the input for a motivation request.
type GetMotivationInput struct {
	UserID      uuid.UUID
	UserMessage string
}

// GetMotivationOutput represents the generated motivation.
type GetMotivationOutput struct {
	Motivation string
	Fallback   bool
}

// GetMotivationUseCase builds a personalized prompt from the user's profile,
// first active goal and check-in streak, and asks the AI coach for a short
// encouraging reply.
type GetMotivationUseCase struct {
	profileRepo adapter.ProfileRepository
	goalRepo    adapter.GoalRepository
	streakRepo  adapter.StreakRepository
	ai          adapter.MotivationService
}

// NewGetMotivationUseCase creates a new GetMotivationUseCase instance.
func NewGetMotivationUseCase(
	profileRepo adapter.ProfileRepository,
	goalRepo adapter.GoalRepository,
	streakRepo adapter.StreakRepository,
	ai adapter.MotivationService,
) *GetMotivationUseCase {
	return &GetMotivationUseCase{
		profileRepo: profileRepo,
		goalRepo:    goalRepo,
		streakRepo:  streakRepo,
		ai:          ai,
	}
}

// Execute generates a motivational reply. AI failures degrade to a canned
// message rather than an error, only a missing profile is reported.
func (uc *GetMotivationUseCase) Execute(ctx context.Context, input GetMotivationInput) (*GetMotivationOutput, error) {
	profile, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProfileNotFound) {
			return nil, domainerror.NewMotivationError(
				domainerror.ErrCodeProfileNotFound,
				"profile not found",
				domainerror.ErrProfileNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	request := adapter.MotivationRequest{
		UserName:    profile.DisplayName,
		Goal:        "building better habits",
		StreakDay:   0,
		Challenge:   "staying consistent",
		UserMessage: input.UserMessage,
	}
	if len(profile.Challenges) > 0 {
		request.Challenge = profile.Challenges[0]
	}

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		slog.Warn("Failed to load goals for motivation prompt", "user_id", input.UserID, "error", err)
	} else if len(goals) > 0 {
		request.Goal = goals[0].DisplayName()
	}

	streak, err := uc.streakRepo.FindByUserAndType(ctx, input.UserID, dailyCheckinStreak)
	if err != nil {
		slog.Warn("Failed to load streak for motivation prompt", "user_id", input.UserID, "error", err)
	} else if streak != nil {
		request.StreakDay = streak.CurrentCount
	}

	if !uc.ai.IsAvailable() {
		return &GetMotivationOutput{Motivation: fallbackMessage, Fallback: true}, nil
	}

	motivation, err := uc.ai.Generate(ctx, &request)
	if err != nil {
		slog.Error("Motivation generation failed, using fallback", "user_id", input.UserID, "error", err)
		return &GetMotivationOutput{Motivation: fallbackMessage, Fallback: true}, nil
	}

	return &GetMotivationOutput{Motivation: motivation}, nil
}
