package services

import (
	"context"
	"fmt"

	"github.com/craftline/contentflow-api/internal/models"
	"github.com/sashabaranov/go-openai"
)

// AIService drafts script briefs for video tasks. Optional: the server runs
// without it when no API key is configured.
type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// GenerateScriptBrief asks the model for a short creative brief the script
// writer can start the pipeline's first stage from.
func (s *AIService) GenerateScriptBrief(ctx context.Context, client *models.Client, task *models.Task) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You write creative briefs for short-form marketing videos.

Business: %s (owner: %s), subscribed to the %s content plan.
Deliverable: %s.

Write a concise script brief (under 150 words) for this video: the hook, the
core message, and the call to action. Plain text only, no headings.`,
		client.BusinessName,
		client.OwnerName,
		client.Plan,
		task.Title,
	)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
