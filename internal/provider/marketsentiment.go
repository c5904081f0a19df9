package provider

import (
	"context"

	"github.com/quantrell/tradewind/internal/core"
)

// MarketSentiment is a heuristic sentiment scorer that blends a
// technical reading (weight 0.6) with candle price action (weight 0.4).
// It needs no external service and serves as the offline fallback when
// no LLM analyzer is configured.
type MarketSentiment struct{}

// NewMarketSentiment returns the heuristic sentiment scorer.
func NewMarketSentiment() *MarketSentiment {
	return &MarketSentiment{}
}

func (m *MarketSentiment) Name() string { return "market_sentiment" }

func (m *MarketSentiment) Score(_ context.Context, data core.MarketData) (float64, error) {
	score := 0.6*m.technical(data) + 0.4*m.priceAction(data)
	return core.ClampSignal(score), nil
}

func (m *MarketSentiment) technical(data core.MarketData) float64 {
	var score float64

	if rsi, ok := data.Indicator("rsi"); ok {
		switch {
		case rsi > 70:
			score -= 0.5
		case rsi < 30:
			score += 0.5
		}
	}

	// Hot intraday volatility makes the RSI reading less trustworthy.
	if vol, ok := data.Indicator("volatility"); ok && data.Price > 0 {
		if vol/data.Price > 0.02 {
			score *= 0.8
		}
	}

	return score
}

func (m *MarketSentiment) priceAction(data core.MarketData) float64 {
	if !data.HasOHLC() {
		return 0
	}

	// A doji closing where it opened counts as bearish.
	var score float64
	if data.Close > data.Open {
		score += 0.3
	} else {
		score -= 0.3
	}

	// Where the close landed within the day's range: top of range is
	// bullish, bottom is bearish, midpoint contributes nothing.
	if data.High > data.Low {
		pos := (data.Close - data.Low) / (data.High - data.Low)
		score += (pos - 0.5) * 0.4
	}

	return score
}
