package provider

import (
	"context"

	"github.com/quantrell/tradewind/internal/core"
)

// OptionsFlow scores options-chain metrics: implied volatility
// percentile extremes, the put/call ratio as a contrarian gauge, and
// open interest as a conviction amplifier.
type OptionsFlow struct{}

// NewOptionsFlow returns the options flow scorer.
func NewOptionsFlow() *OptionsFlow {
	return &OptionsFlow{}
}

func (o *OptionsFlow) Name() string { return "options_flow" }

// Score reads the record's options-chain metrics. Missing metrics
// contribute nothing; a record with no chain data scores neutral.
func (o *OptionsFlow) Score(_ context.Context, data core.MarketData) (float64, error) {
	var score float64

	if ivp, ok := data.Options["iv_percentile"]; ok {
		switch {
		case ivp > 80:
			score -= 0.3
		case ivp < 20:
			score += 0.3
		}
	}

	if pcr, ok := data.Options["put_call_ratio"]; ok {
		switch {
		case pcr > 1.5:
			score -= 0.4
		case pcr < 0.5:
			score += 0.4
		}
	}

	oi, okOI := data.Options["open_interest"]
	avg, okAvg := data.Options["average_oi"]
	if okOI && okAvg && avg > 0 && oi > 1.5*avg {
		score *= 1.2
	}

	return core.ClampSignal(score), nil
}
