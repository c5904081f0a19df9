// Package history loads historical market data from JSONL files and
// enriches records with derived indicators before replay.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/quantrell/tradewind/internal/core"
)

// rawRecord is the on-disk JSONL shape of one market data record.
type rawRecord struct {
	Symbol     string             `json:"symbol"`
	Price      float64            `json:"price"`
	Timestamp  time.Time          `json:"timestamp"`
	Volume     float64            `json:"volume,omitempty"`
	Open       float64            `json:"open,omitempty"`
	High       float64            `json:"high,omitempty"`
	Low        float64            `json:"low,omitempty"`
	Close      float64            `json:"close,omitempty"`
	Indicators map[string]float64 `json:"indicators,omitempty"`
	Options    map[string]float64 `json:"options,omitempty"`
	Location   string             `json:"location,omitempty"`
}

// Load reads a JSONL file of market data records, one object per line.
// Blank lines are skipped; a malformed line fails the whole load with
// its line number.
func Load(path string) ([]core.MarketData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	var records []core.MarketData

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(text) == 0 {
			continue
		}

		var raw rawRecord
		if err := json.Unmarshal(text, &raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		data := core.MarketData{
			Symbol:     raw.Symbol,
			Price:      raw.Price,
			Timestamp:  raw.Timestamp,
			Volume:     raw.Volume,
			Open:       raw.Open,
			High:       raw.High,
			Low:        raw.Low,
			Close:      raw.Close,
			Indicators: raw.Indicators,
			Options:    raw.Options,
		}
		if raw.Location != "" {
			data.Meta = map[string]any{"location": raw.Location}
		}

		records = append(records, data)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	return records, nil
}

// LoadEnriched loads a JSONL file and runs every record through a
// fresh Enricher in file order.
func LoadEnriched(path string) ([]core.MarketData, error) {
	records, err := Load(path)
	if err != nil {
		return nil, err
	}

	e := NewEnricher()
	for i := range records {
		records[i] = e.Enrich(records[i])
	}
	return records, nil
}
