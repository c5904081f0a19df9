// Package simulator turns strategy decisions into hypothetical fills.
// It is pure: no goroutines, no I/O, and the same decision against the
// same record always yields the same fill.
package simulator

import (
	"math"

	"github.com/quantrell/tradewind/internal/core"
)

// Config holds the simulation parameters.
type Config struct {
	// MinSignalThreshold is the absolute signal below which no trade
	// is taken. A signal exactly at the threshold trades.
	MinSignalThreshold float64

	// SlippageRate is applied against the trade direction: buys fill
	// above the record price, sells below.
	SlippageRate float64

	// TradeSize is the fixed size of every non-hold fill.
	TradeSize float64
}

// DefaultConfig returns the standard simulation parameters.
func DefaultConfig() Config {
	return Config{
		MinSignalThreshold: 0.2,
		SlippageRate:       0.001,
		TradeSize:          1.0,
	}
}

// Simulator produces deterministic hypothetical fills.
type Simulator struct {
	cfg Config
}

// New creates a simulator with the given parameters.
func New(cfg Config) *Simulator {
	return &Simulator{cfg: cfg}
}

// Simulate maps a strategy decision to a fill. Signals below the
// threshold, non-finite signals and non-positive record prices all
// produce a hold at the record price with zero size.
func (s *Simulator) Simulate(result core.StrategyResult, data core.MarketData) core.TradeResult {
	hold := core.TradeResult{
		Action: core.ActionHold,
		Size:   0,
		Price:  data.Price,
	}

	if math.IsNaN(result.Signal) || math.IsInf(result.Signal, 0) {
		return hold
	}
	if data.Price <= 0 {
		return hold
	}
	if math.Abs(result.Signal) < s.cfg.MinSignalThreshold {
		return hold
	}

	if result.Signal > 0 {
		return core.TradeResult{
			Action:   core.ActionBuy,
			Size:     s.cfg.TradeSize,
			Price:    data.Price * (1 + s.cfg.SlippageRate),
			Slippage: s.cfg.SlippageRate,
		}
	}
	return core.TradeResult{
		Action:   core.ActionSell,
		Size:     s.cfg.TradeSize,
		Price:    data.Price * (1 - s.cfg.SlippageRate),
		Slippage: s.cfg.SlippageRate,
	}
}
