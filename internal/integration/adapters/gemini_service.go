// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// GeminiService implements the MotivationService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Generate produces a short motivational reply for the given user context.
func (s *GeminiService) Generate(ctx context.Context, request *adapter.MotivationRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(150)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(request)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.MotivationRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a compassionate and motivating coach. Provide short, personalized, and encouraging responses that acknowledge the user's progress and challenges. Keep responses under 3 sentences and focus on actionable motivation.\n\n")
	sb.WriteString(fmt.Sprintf("The user's name is %s.\n", request.UserName))
	sb.WriteString(fmt.Sprintf("Goal: %s.\n", request.Goal))
	sb.WriteString(fmt.Sprintf("Streak day: %d.\n", request.StreakDay))
	sb.WriteString(fmt.Sprintf("Biggest challenge: %s.\n", request.Challenge))
	if request.UserMessage != "" {
		sb.WriteString(fmt.Sprintf("Today they said: %q.\n", request.UserMessage))
	}
	sb.WriteString("Provide a short, supportive, and motivational reply.")

	return sb.String()
}

// extractText pulls the plain-text reply out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return textContent, nil
}
