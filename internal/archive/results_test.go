package archive

import (
	"context"
	"testing"
	"time"

	"github.com/quantrell/tradewind/internal/backtest"
)

func TestSaveLoadResult(t *testing.T) {
	store, err := NewLocalFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalFS: %v", err)
	}
	ctx := context.Background()

	result := &backtest.Result{
		RunID:     "8f14e45f-ceea-4e17-9f8a-2d0c6a1f0001",
		Strategy:  "futures",
		StartedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Metrics:   backtest.Metrics{TotalTrades: 3, TotalPnL: -0.3},
	}

	key, err := SaveResult(ctx, store, result)
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if want := "backtests/" + result.RunID + ".json"; key != want {
		t.Errorf("key = %q, want %q", key, want)
	}

	loaded, err := LoadResult(ctx, store, result.RunID)
	if err != nil {
		t.Fatalf("LoadResult: %v", err)
	}
	if loaded.Strategy != "futures" || loaded.Metrics.TotalTrades != 3 {
		t.Errorf("loaded = %+v, want round-tripped result", loaded)
	}
}

func TestLoadResult_Missing(t *testing.T) {
	store, _ := NewLocalFS(t.TempDir())

	if _, err := LoadResult(context.Background(), store, "no-such-run"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestListResults(t *testing.T) {
	store, _ := NewLocalFS(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"run-a", "run-b"} {
		if _, err := SaveResult(ctx, store, &backtest.Result{RunID: id}); err != nil {
			t.Fatalf("SaveResult(%s): %v", id, err)
		}
	}

	runIDs, err := ListResults(ctx, store)
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if len(runIDs) != 2 {
		t.Errorf("got %d run IDs, want 2", len(runIDs))
	}
}
