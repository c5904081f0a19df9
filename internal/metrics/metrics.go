// Package metrics exposes Prometheus instrumentation for the signal
// pipeline. All record methods are safe on a nil receiver so callers
// can run without instrumentation wired.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	signalsGenerated *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
	recordsRejected  prometheus.Counter
	tradesSimulated  *prometheus.CounterVec
	signalStrength   prometheus.Histogram
	backtestsTotal   *prometheus.CounterVec
	backtestDuration prometheus.Histogram
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		signalsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradewind_signals_generated_total",
				Help: "Total number of strategy signals generated",
			},
			[]string{"strategy", "direction"},
		),
		providerFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradewind_provider_failures_total",
				Help: "Total number of signal provider failures",
			},
			[]string{"provider"},
		),
		recordsRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tradewind_records_rejected_total",
				Help: "Total number of market data records that failed validation",
			},
		),
		tradesSimulated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradewind_trades_simulated_total",
				Help: "Total number of simulated trades",
			},
			[]string{"action"},
		),
		signalStrength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tradewind_signal_strength",
				Help:    "Absolute aggregate signal strength",
				Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
			},
		),
		backtestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradewind_backtests_total",
				Help: "Total number of backtests",
			},
			[]string{"status"},
		),
		backtestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tradewind_backtest_duration_seconds",
				Help:    "Backtest duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
			},
		),
	}

	reg.MustRegister(r.signalsGenerated)
	reg.MustRegister(r.providerFailures)
	reg.MustRegister(r.recordsRejected)
	reg.MustRegister(r.tradesSimulated)
	reg.MustRegister(r.signalStrength)
	reg.MustRegister(r.backtestsTotal)
	reg.MustRegister(r.backtestDuration)

	return r
}

// RecordSignal records a generated signal and its strength.
func (r *Registry) RecordSignal(strategy, direction string, strength float64) {
	if r == nil {
		return
	}
	r.signalsGenerated.WithLabelValues(strategy, direction).Inc()
	r.signalStrength.Observe(strength)
}

// RecordProviderFailure records a provider error or panic.
func (r *Registry) RecordProviderFailure(provider string) {
	if r == nil {
		return
	}
	r.providerFailures.WithLabelValues(provider).Inc()
}

// RecordRejectedRecord records a record that failed validation.
func (r *Registry) RecordRejectedRecord() {
	if r == nil {
		return
	}
	r.recordsRejected.Inc()
}

// RecordTrade records a simulated trade action.
func (r *Registry) RecordTrade(action string) {
	if r == nil {
		return
	}
	r.tradesSimulated.WithLabelValues(action).Inc()
}

// RecordBacktest records a backtest completion.
func (r *Registry) RecordBacktest(status string, duration float64) {
	if r == nil {
		return
	}
	r.backtestsTotal.WithLabelValues(status).Inc()
	r.backtestDuration.Observe(duration)
}
