package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// CompletionClient is the outbound port to the completion provider.
// Tests substitute a fake; production uses AIService.
type CompletionClient interface {
	Complete(ctx context.Context, message string) (string, error)
}

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// Complete sends a single user message to the completion endpoint and
// returns the reply text.
func (s *AIService) Complete(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: message,
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
