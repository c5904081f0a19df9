package provider

import (
	"context"

	"github.com/quantrell/tradewind/internal/core"
)

// Technical scores RSI and MACD readings with variant-specific weights.
// The futures variant amplifies on heavy volume; the options variant
// dampens when volatility runs hot, since momentum readings are less
// reliable there.
type Technical struct {
	name       string
	rsiWeight  float64
	macdWeight float64
	volumeAmp  bool
}

// NewFuturesTechnical returns the technical scorer tuned for futures:
// RSI contributes ±0.4, MACD ±0.3, and volume above 1.5x the running
// average amplifies the score by 1.2.
func NewFuturesTechnical() *Technical {
	return &Technical{
		name:       "futures_technical",
		rsiWeight:  0.4,
		macdWeight: 0.3,
		volumeAmp:  true,
	}
}

// NewOptionsTechnical returns the technical scorer tuned for options:
// RSI contributes ±0.3, MACD ±0.2, and volatility above 1.3x the
// running average dampens the score by 0.8.
func NewOptionsTechnical() *Technical {
	return &Technical{
		name:       "options_technical",
		rsiWeight:  0.3,
		macdWeight: 0.2,
		volumeAmp:  false,
	}
}

func (t *Technical) Name() string { return t.name }

// Score computes a mean-reversion style score: overbought RSI pushes
// bearish, oversold pushes bullish, MACD sign adds trend confirmation.
// Missing indicators simply contribute nothing.
func (t *Technical) Score(_ context.Context, data core.MarketData) (float64, error) {
	var score float64

	if rsi, ok := data.Indicator("rsi"); ok {
		switch {
		case rsi > 70:
			score -= t.rsiWeight
		case rsi < 30:
			score += t.rsiWeight
		}
	}

	// A flat MACD counts as bearish: no positive momentum to confirm.
	if macd, ok := data.Indicator("macd"); ok {
		if macd > 0 {
			score += t.macdWeight
		} else {
			score -= t.macdWeight
		}
	}

	if t.volumeAmp {
		if avg, ok := data.Indicator("average_volume"); ok && avg > 0 && data.Volume > 1.5*avg {
			score *= 1.2
		}
	} else {
		vol, okVol := data.Indicator("volatility")
		avg, okAvg := data.Indicator("average_volatility")
		if okVol && okAvg && avg > 0 && vol > 1.3*avg {
			score *= 0.8
		}
	}

	return core.ClampSignal(score), nil
}
