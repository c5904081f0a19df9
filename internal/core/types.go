package core

import (
	"math"
	"time"
)

// MarketData is the normalized unit every downstream component consumes.
// Symbol, Price and Timestamp are required; everything else is optional
// and a zero value means "absent".
type MarketData struct {
	Symbol    string
	Price     float64
	Timestamp time.Time

	Volume float64
	Open   float64
	High   float64
	Low    float64
	Close  float64

	// Indicators holds derived technical values keyed by name, e.g.
	// "rsi", "macd", "volatility", "average_volume".
	Indicators map[string]float64

	// Options holds options-chain metrics, e.g. "iv_percentile",
	// "put_call_ratio", "open_interest", "average_oi".
	Options map[string]float64

	// Meta carries auxiliary attributes such as "source" and
	// "data_quality" (a float in [0,1]).
	Meta map[string]any
}

// Validate checks the required fields for signal generation eligibility.
func (m MarketData) Validate() error {
	if m.Symbol == "" {
		return WrapError(ErrInvalidRecord, errMissingField("symbol"))
	}
	if m.Price <= 0 || math.IsNaN(m.Price) || math.IsInf(m.Price, 0) {
		return WrapError(ErrInvalidRecord, errMissingField("price"))
	}
	if m.Timestamp.IsZero() {
		return WrapError(ErrInvalidRecord, errMissingField("timestamp"))
	}
	return nil
}

// HasOHLC reports whether a full candle is present.
func (m MarketData) HasOHLC() bool {
	return m.Open > 0 && m.High > 0 && m.Low > 0 && m.Close > 0
}

// Indicator returns the named indicator and whether it is present.
func (m MarketData) Indicator(name string) (float64, bool) {
	v, ok := m.Indicators[name]
	return v, ok
}

// DataQuality returns the data_quality score from Meta, defaulting to 1.
func (m MarketData) DataQuality() float64 {
	if q, ok := m.Meta["data_quality"].(float64); ok {
		return q
	}
	return 1.0
}

// SignalSet maps provider name to a bounded score in [-1, 1]. Built fresh
// per strategy invocation and never shared between invocations.
type SignalSet map[string]float64

// Mean returns the arithmetic mean of all scores, 0 when empty.
func (s SignalSet) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// Variance returns the population variance of the scores, 0 when empty.
func (s SignalSet) Variance() float64 {
	if len(s) == 0 {
		return 0
	}
	mean := s.Mean()
	var sum float64
	for _, v := range s {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(s))
}

// Confidence measures inter-provider agreement as 1 - min(variance, 1).
// It is not statistical certainty: providers that agree on a wrong answer
// still yield high confidence. An empty set yields 0.
func (s SignalSet) Confidence() float64 {
	if len(s) == 0 {
		return 0
	}
	return 1.0 - math.Min(s.Variance(), 1.0)
}

// Action represents a simulated trade action.
type Action string

const (
	ActionHold Action = "hold"
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// StrategyResult is the single decision a strategy emits per market data
// record. Immutable once produced.
type StrategyResult struct {
	Timestamp  time.Time
	Symbol     string
	Signal     float64 // clamped to [-1, 1]; positive = bullish
	Confidence float64 // in [0, 1]
	Meta       map[string]any
}

// TradeResult is a hypothetical fill produced by the trade simulator.
type TradeResult struct {
	Action   Action
	Size     float64
	Price    float64 // execution price with slippage applied
	Slippage float64 // slippage rate that was applied
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ClampSignal bounds a score to the canonical [-1, 1] signal range.
func ClampSignal(v float64) float64 {
	return Clamp(v, -1, 1)
}
