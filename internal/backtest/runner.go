package backtest

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quantrell/tradewind/internal/core"
	"github.com/quantrell/tradewind/internal/metrics"
	"github.com/quantrell/tradewind/internal/simulator"
	"github.com/quantrell/tradewind/internal/strategy"
)

// Runner replays records sequentially through one strategy and one
// simulator. Input order is preserved exactly: callers are expected to
// supply non-decreasing per-symbol timestamps, and violations are
// logged rather than reordered.
type Runner struct {
	strategy  strategy.Strategy
	simulator *simulator.Simulator
	logger    *zap.Logger
	metrics   *metrics.Registry
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics sets the metrics registry. Optional.
func WithMetrics(m *metrics.Registry) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// NewRunner creates a backtest runner.
func NewRunner(strat strategy.Strategy, sim *simulator.Simulator, opts ...Option) *Runner {
	r := &Runner{
		strategy:  strat,
		simulator: sim,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run replays the records in order. Individual bad records degrade to
// neutral decisions inside the strategy and never abort the run; only
// context cancellation does, returning the partial error.
func (r *Runner) Run(ctx context.Context, records []core.MarketData) (*Result, error) {
	started := time.Now()
	result := &Result{
		RunID:     uuid.New().String(),
		Strategy:  r.strategy.Name(),
		StartedAt: started,
		Records:   make([]Record, 0, len(records)),
	}

	lastSeen := make(map[string]time.Time)

	for i, data := range records {
		select {
		case <-ctx.Done():
			r.metrics.RecordBacktest("cancelled", time.Since(started).Seconds())
			return nil, ctx.Err()
		default:
		}

		if last, ok := lastSeen[data.Symbol]; ok && data.Timestamp.Before(last) {
			r.logger.Warn("record out of order",
				zap.String("symbol", data.Symbol),
				zap.Int("index", i),
				zap.Time("timestamp", data.Timestamp),
				zap.Time("previous", last),
			)
		}
		lastSeen[data.Symbol] = data.Timestamp

		decision := r.strategy.GenerateSignal(ctx, data)
		if math.IsNaN(decision.Signal) || math.IsInf(decision.Signal, 0) {
			r.logger.Warn("degraded decision",
				zap.String("symbol", data.Symbol),
				zap.Int("index", i),
				zap.Error(core.WrapError(core.ErrSimulationFailed,
					fmt.Errorf("non-finite signal %v", decision.Signal))),
			)
		}
		trade := r.simulator.Simulate(decision, data)
		r.metrics.RecordTrade(string(trade.Action))

		result.Records = append(result.Records, Record{
			Timestamp: data.Timestamp,
			Symbol:    data.Symbol,
			Decision:  decision,
			Trade:     trade,
			PnL:       pointPnL(trade, data),
		})
	}

	result.Duration = time.Since(started)
	result.Metrics = ComputeMetrics(result.Records)
	r.metrics.RecordBacktest("completed", result.Duration.Seconds())

	r.logger.Info("backtest completed",
		zap.String("run_id", result.RunID),
		zap.String("strategy", result.Strategy),
		zap.Int("records", len(result.Records)),
		zap.Int("trades", result.Metrics.TotalTrades),
		zap.Float64("total_pnl", result.Metrics.TotalPnL),
	)

	return result, nil
}

// pointPnL is the immediate mark-to-market of a fill against the
// record price. With slippage applied against the trade direction this
// is the cost of entry, not a realized round trip.
func pointPnL(trade core.TradeResult, data core.MarketData) float64 {
	switch trade.Action {
	case core.ActionBuy:
		return (data.Price - trade.Price) * trade.Size
	case core.ActionSell:
		return (trade.Price - data.Price) * trade.Size
	default:
		return 0
	}
}
