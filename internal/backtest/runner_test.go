package backtest

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/quantrell/tradewind/internal/core"
	"github.com/quantrell/tradewind/internal/simulator"
)

// scripted emits a fixed signal sequence, one per call.
type scripted struct {
	signals []float64
	calls   int
}

func (s *scripted) Name() string { return "scripted" }

func (s *scripted) GenerateSignal(_ context.Context, data core.MarketData) core.StrategyResult {
	signal := 0.0
	if s.calls < len(s.signals) {
		signal = s.signals[s.calls]
	}
	s.calls++
	return core.StrategyResult{
		Timestamp:  data.Timestamp,
		Symbol:     data.Symbol,
		Signal:     signal,
		Confidence: 1,
	}
}

func makeRecords(n int) []core.MarketData {
	base := time.Date(2026, 8, 20, 9, 15, 0, 0, time.UTC)
	records := make([]core.MarketData, n)
	for i := range records {
		records[i] = core.MarketData{
			Symbol:    "NIFTY",
			Price:     100,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return records
}

func TestRunner_Run(t *testing.T) {
	strat := &scripted{signals: []float64{0.5, -0.6, 0.1}}
	runner := NewRunner(strat, simulator.New(simulator.DefaultConfig()))

	result, err := runner.Run(context.Background(), makeRecords(3))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.RunID == "" {
		t.Error("expected a run ID")
	}
	if result.Strategy != "scripted" {
		t.Errorf("Strategy = %q, want scripted", result.Strategy)
	}
	if len(result.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(result.Records))
	}

	wantActions := []core.Action{core.ActionBuy, core.ActionSell, core.ActionHold}
	for i, want := range wantActions {
		if got := result.Records[i].Trade.Action; got != want {
			t.Errorf("record %d: Action = %v, want %v", i, got, want)
		}
	}

	if result.Metrics.TotalTrades != 2 {
		t.Errorf("TotalTrades = %d, want 2", result.Metrics.TotalTrades)
	}

	// Slippage alone makes both immediate fills negative.
	if result.Metrics.TotalPnL >= 0 {
		t.Errorf("TotalPnL = %v, want negative from slippage", result.Metrics.TotalPnL)
	}

	// Hold record carries the record price and zero P/L.
	hold := result.Records[2]
	if hold.Trade.Price != 100 || hold.PnL != 0 {
		t.Errorf("hold record = %+v, want price 100 and zero pnl", hold)
	}
}

func TestRunner_EmptyInput(t *testing.T) {
	runner := NewRunner(&scripted{}, simulator.New(simulator.DefaultConfig()))

	result, err := runner.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Records) != 0 {
		t.Errorf("got %d records, want 0", len(result.Records))
	}
	if result.Metrics != (Metrics{}) {
		t.Errorf("Metrics = %+v, want zero", result.Metrics)
	}
}

func TestRunner_AllHolds(t *testing.T) {
	strat := &scripted{signals: []float64{0.1, -0.05, 0}}
	runner := NewRunner(strat, simulator.New(simulator.DefaultConfig()))

	result, err := runner.Run(context.Background(), makeRecords(3))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Metrics.TotalTrades != 0 {
		t.Errorf("TotalTrades = %d, want 0", result.Metrics.TotalTrades)
	}
	if result.Metrics.WinRate != 0 || result.Metrics.SharpeRatio != 0 {
		t.Errorf("Metrics = %+v, want zero rates for all holds", result.Metrics)
	}
}

func TestRunner_ZeroTradeSizeKeepsMetricsFinite(t *testing.T) {
	strat := &scripted{signals: []float64{0.5, -0.6}}
	runner := NewRunner(strat, simulator.New(simulator.Config{
		MinSignalThreshold: 0.2,
		SlippageRate:       0.001,
		TradeSize:          0,
	}))

	result, err := runner.Run(context.Background(), makeRecords(2))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Metrics.TotalTrades != 2 {
		t.Errorf("TotalTrades = %d, want 2", result.Metrics.TotalTrades)
	}
	if math.IsNaN(result.Metrics.AvgReturn) || math.IsInf(result.Metrics.AvgReturn, 0) {
		t.Errorf("AvgReturn = %v, want finite", result.Metrics.AvgReturn)
	}
	if math.IsNaN(result.Metrics.SharpeRatio) || math.IsInf(result.Metrics.SharpeRatio, 0) {
		t.Errorf("SharpeRatio = %v, want finite", result.Metrics.SharpeRatio)
	}
}

func TestRunner_ContextCancellation(t *testing.T) {
	runner := NewRunner(&scripted{}, simulator.New(simulator.DefaultConfig()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Run(ctx, makeRecords(5)); err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunner_NonFiniteSignalDegradesToHold(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	strat := &scripted{signals: []float64{math.NaN()}}
	runner := NewRunner(strat, simulator.New(simulator.DefaultConfig()),
		WithLogger(zap.New(obs)),
	)

	result, err := runner.Run(context.Background(), makeRecords(1))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := result.Records[0].Trade.Action; got != core.ActionHold {
		t.Errorf("Action = %v, want hold", got)
	}

	entries := logs.FilterMessage("degraded decision").All()
	if len(entries) != 1 {
		t.Fatalf("got %d warn entries, want 1", len(entries))
	}
	var logged error
	for _, f := range entries[0].Context {
		if f.Key == "error" {
			logged, _ = f.Interface.(error)
		}
	}
	if !errors.Is(logged, core.ErrSimulationFailed) {
		t.Errorf("logged error = %v, want ErrSimulationFailed classification", logged)
	}
}

func TestRunner_PreservesInputOrder(t *testing.T) {
	records := makeRecords(3)
	// Swap to violate the ordering precondition; the runner must log
	// and replay as given, never reorder.
	records[0], records[2] = records[2], records[0]

	strat := &scripted{signals: []float64{0.5, 0.5, 0.5}}
	runner := NewRunner(strat, simulator.New(simulator.DefaultConfig()))

	result, err := runner.Run(context.Background(), records)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i := range records {
		if !result.Records[i].Timestamp.Equal(records[i].Timestamp) {
			t.Errorf("record %d: timestamp %v, want input order %v", i, result.Records[i].Timestamp, records[i].Timestamp)
		}
	}
}
