package factory

import (
	"fmt"

	"github.com/quantrell/tradewind/internal/config"
	"github.com/quantrell/tradewind/internal/sentiment"
	"github.com/quantrell/tradewind/internal/sentiment/claude"
	"github.com/quantrell/tradewind/internal/sentiment/ollama"
	"github.com/quantrell/tradewind/internal/sentiment/openai"
)

// New creates a sentiment analyzer based on configuration.
func New(cfg config.SentimentConfig) (sentiment.Analyzer, error) {
	switch cfg.Provider {
	case "claude":
		return claude.New(cfg.Claude.APIKey, cfg.Claude.Model)
	case "openai":
		return openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	case "ollama":
		return ollama.New(cfg.Ollama.Endpoint, cfg.Ollama.Model)
	default:
		return nil, fmt.Errorf("unknown sentiment provider: %s", cfg.Provider)
	}
}
