package strategy

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/quantrell/tradewind/internal/core"
	"github.com/quantrell/tradewind/internal/metrics"
	"github.com/quantrell/tradewind/internal/provider"
)

// Aggregator implements Strategy by running a fixed set of providers
// concurrently per record and combining their scores with an unweighted
// mean. Provider errors and panics degrade to a neutral contribution
// that still counts toward the mean, so a failing provider pulls the
// aggregate toward zero rather than vanishing from it.
type Aggregator struct {
	name      string
	providers []provider.Provider
	logger    *zap.Logger
	metrics   *metrics.Registry
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics sets the metrics registry. Optional.
func WithMetrics(m *metrics.Registry) Option {
	return func(a *Aggregator) {
		a.metrics = m
	}
}

// WithProviders appends extra providers to the variant's fixed set,
// e.g. weather, news or an LLM analyzer.
func WithProviders(ps ...provider.Provider) Option {
	return func(a *Aggregator) {
		a.providers = append(a.providers, ps...)
	}
}

// New creates an aggregating strategy over the given providers.
func New(name string, providers []provider.Provider, opts ...Option) *Aggregator {
	a := &Aggregator{
		name:      name,
		providers: providers,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewFutures creates the futures strategy: technical momentum with the
// futures thresholds plus heuristic market sentiment.
func NewFutures(opts ...Option) *Aggregator {
	return New("futures", []provider.Provider{
		provider.NewFuturesTechnical(),
		provider.NewMarketSentiment(),
	}, opts...)
}

// NewOptions creates the options strategy: technical momentum with the
// options thresholds plus options chain flow.
func NewOptions(opts ...Option) *Aggregator {
	return New("options", []provider.Provider{
		provider.NewOptionsTechnical(),
		provider.NewOptionsFlow(),
	}, opts...)
}

func (a *Aggregator) Name() string { return a.name }

// GenerateSignal runs every provider in its own goroutine, waits for
// all of them, and reduces the scores to one clamped signal with an
// agreement-based confidence. Deterministic when the providers are.
func (a *Aggregator) GenerateSignal(ctx context.Context, data core.MarketData) core.StrategyResult {
	result := core.StrategyResult{
		Timestamp: data.Timestamp,
		Symbol:    data.Symbol,
		Meta:      map[string]any{"strategy": a.name},
	}

	if err := data.Validate(); err != nil {
		a.logger.Warn("record failed validation",
			zap.String("strategy", a.name),
			zap.String("symbol", data.Symbol),
			zap.Error(err),
		)
		a.metrics.RecordRejectedRecord()
		result.Meta["validation_error"] = err.Error()
		return result
	}

	scores := make([]float64, len(a.providers))
	var wg sync.WaitGroup
	for i, p := range a.providers {
		wg.Add(1)
		go func(i int, p provider.Provider) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.logger.Error("provider panicked",
						zap.String("provider", p.Name()),
						zap.Any("panic", r),
					)
					a.metrics.RecordProviderFailure(p.Name())
					scores[i] = 0
				}
			}()

			score, err := p.Score(ctx, data)
			if err != nil {
				// A timed-out provider degrades exactly like a failed
				// one; only the logged classification differs.
				if errors.Is(err, context.DeadlineExceeded) {
					err = core.WrapError(core.ErrProviderTimeout, err)
				} else if !errors.Is(err, core.ErrProviderFailed) {
					err = core.WrapError(core.ErrProviderFailed, err)
				}
				a.logger.Warn("provider failed",
					zap.String("provider", p.Name()),
					zap.String("symbol", data.Symbol),
					zap.Error(err),
				)
				a.metrics.RecordProviderFailure(p.Name())
				scores[i] = 0
				return
			}
			scores[i] = core.ClampSignal(score)
		}(i, p)
	}
	wg.Wait()

	signals := make(core.SignalSet, len(a.providers))
	for i, p := range a.providers {
		signals[p.Name()] = scores[i]
	}

	result.Signal = core.ClampSignal(signals.Mean())
	result.Confidence = signals.Confidence()
	result.Meta["signals"] = signals

	a.metrics.RecordSignal(a.name, direction(result.Signal), abs(result.Signal))

	return result
}

func direction(signal float64) string {
	switch {
	case signal > 0:
		return "bullish"
	case signal < 0:
		return "bearish"
	default:
		return "neutral"
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
