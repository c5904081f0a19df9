package claude

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/quantrell/tradewind/internal/sentiment"
)

// Analyzer scores market sentiment through the Anthropic API.
type Analyzer struct {
	client anthropic.Client
	model  string
}

// New creates a new Claude sentiment analyzer.
func New(apiKey, model string) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key required")
	}
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Analyzer{client: client, model: model}, nil
}

// Name returns the analyzer name.
func (a *Analyzer) Name() string {
	return "claude"
}

// Score asks the model for a sentiment score on the snapshot.
func (a *Analyzer) Score(ctx context.Context, snap sentiment.Snapshot) (float64, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 256,
		System: []anthropic.TextBlockParam{
			{Text: sentiment.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(sentiment.Prompt(snap))),
		},
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("claude API error: %w", err)
	}

	content := ""
	if len(resp.Content) > 0 && resp.Content[0].Type == "text" {
		content = resp.Content[0].Text
	}

	return sentiment.ParseScore(content)
}
