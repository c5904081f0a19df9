package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/quantrell/tradewind/internal/backtest"
)

const resultPrefix = "backtests"

// ResultKey is the storage key for a backtest run's result document.
func ResultKey(runID string) string {
	return path.Join(resultPrefix, runID+".json")
}

// SaveResult persists a backtest result document and returns its key.
func SaveResult(ctx context.Context, s Storage, result *backtest.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}

	key := ResultKey(result.RunID)
	if err := s.Write(ctx, key, data); err != nil {
		return "", fmt.Errorf("writing result: %w", err)
	}
	return key, nil
}

// LoadResult retrieves the result document for a run.
func LoadResult(ctx context.Context, s Storage, runID string) (*backtest.Result, error) {
	data, err := s.Read(ctx, ResultKey(runID))
	if err != nil {
		return nil, fmt.Errorf("reading result: %w", err)
	}

	var result backtest.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}
	return &result, nil
}

// ListResults returns the run IDs of all archived results.
func ListResults(ctx context.Context, s Storage) ([]string, error) {
	keys, err := s.List(ctx, resultPrefix)
	if err != nil {
		return nil, err
	}

	runIDs := make([]string, 0, len(keys))
	for _, key := range keys {
		name := path.Base(key)
		if strings.HasSuffix(name, ".json") {
			runIDs = append(runIDs, strings.TrimSuffix(name, ".json"))
		}
	}
	return runIDs, nil
}
