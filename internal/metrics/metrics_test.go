package metrics

import (
	"testing"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg == nil {
		t.Fatal("expected non-nil registry")
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(mfs) == 0 {
		t.Error("expected some metrics to be registered")
	}
}

func TestRegistry_RecordSignal(t *testing.T) {
	reg := NewRegistry()

	reg.RecordSignal("futures", "buy", 0.45)
	reg.RecordProviderFailure("news")
	reg.RecordRejectedRecord()
	reg.RecordTrade("buy")
	reg.RecordBacktest("completed", 1.2)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	want := map[string]bool{
		"tradewind_signals_generated_total": false,
		"tradewind_provider_failures_total": false,
		"tradewind_records_rejected_total":  false,
		"tradewind_trades_simulated_total":  false,
		"tradewind_signal_strength":         false,
		"tradewind_backtests_total":         false,
		"tradewind_backtest_duration_seconds": false,
	}
	for _, mf := range mfs {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected %s metric", name)
		}
	}
}

func TestRegistry_NilSafe(t *testing.T) {
	var reg *Registry

	// Must not panic.
	reg.RecordSignal("futures", "buy", 0.45)
	reg.RecordProviderFailure("news")
	reg.RecordRejectedRecord()
	reg.RecordTrade("hold")
	reg.RecordBacktest("failed", 0.1)
}
