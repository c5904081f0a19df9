package provider

import (
	"context"
	"fmt"

	"github.com/quantrell/tradewind/internal/core"
	"github.com/quantrell/tradewind/internal/sentiment"
)

// LLMSentiment adapts a sentiment.Analyzer to the Provider contract.
// Analyzer failures surface as provider errors, which the aggregating
// strategy reduces to a neutral contribution.
type LLMSentiment struct {
	analyzer sentiment.Analyzer
}

// NewLLMSentiment wraps the given analyzer.
func NewLLMSentiment(analyzer sentiment.Analyzer) *LLMSentiment {
	return &LLMSentiment{analyzer: analyzer}
}

func (l *LLMSentiment) Name() string {
	return fmt.Sprintf("llm_%s", l.analyzer.Name())
}

func (l *LLMSentiment) Score(ctx context.Context, data core.MarketData) (float64, error) {
	score, err := l.analyzer.Score(ctx, sentiment.SnapshotFrom(data))
	if err != nil {
		return 0, core.WrapError(core.ErrProviderFailed, err)
	}
	return core.ClampSignal(score), nil
}
