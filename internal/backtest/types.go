// Package backtest replays historical market data through a strategy
// and the trade simulator, producing a per-record trail and aggregate
// performance metrics.
package backtest

import (
	"time"

	"github.com/quantrell/tradewind/internal/core"
)

// Record is one replayed step: the decision the strategy made, the
// simulated fill, and the pointwise P/L against the record price.
type Record struct {
	Timestamp time.Time           `json:"timestamp"`
	Symbol    string              `json:"symbol"`
	Decision  core.StrategyResult `json:"decision"`
	Trade     core.TradeResult    `json:"trade"`
	PnL       float64             `json:"pnl"`
}

// Metrics summarizes a completed backtest.
type Metrics struct {
	TotalTrades   int     `json:"total_trades"` // non-hold fills
	WinningTrades int     `json:"winning_trades"`
	WinRate       float64 `json:"win_rate"` // in [0, 1]; 0 with no trades
	AvgReturn     float64 `json:"avg_return"`
	SharpeRatio   float64 `json:"sharpe_ratio"`
	TotalPnL      float64 `json:"total_pnl"`
}

// Result is the outcome of one backtest run.
type Result struct {
	RunID     string        `json:"run_id"`
	Strategy  string        `json:"strategy"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Records   []Record      `json:"records"`
	Metrics   Metrics       `json:"metrics"`
}
