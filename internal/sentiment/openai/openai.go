package openai

import (
	"context"
	"fmt"

	"github.com/quantrell/tradewind/internal/sentiment"
	"github.com/sashabaranov/go-openai"
)

// Analyzer scores market sentiment through the OpenAI API.
type Analyzer struct {
	client *openai.Client
	model  string
}

// New creates a new OpenAI sentiment analyzer.
func New(apiKey, model string) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key required")
	}
	if model == "" {
		model = "gpt-4o"
	}
	client := openai.NewClient(apiKey)
	return &Analyzer{client: client, model: model}, nil
}

// Name returns the analyzer name.
func (a *Analyzer) Name() string {
	return "openai"
}

// Score asks the model for a sentiment score on the snapshot.
func (a *Analyzer) Score(ctx context.Context, snap sentiment.Snapshot) (float64, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: sentiment.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: sentiment.Prompt(snap),
			},
		},
		MaxTokens:   256,
		Temperature: 0.3,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("openai API error: %w", err)
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	return sentiment.ParseScore(content)
}
