package history

import (
	"github.com/quantrell/tradewind/internal/core"
	"github.com/quantrell/tradewind/internal/indicator"
)

const (
	rsiPeriod    = 14
	macdFast     = 12
	macdSlow     = 26
	volumeWindow = 20
)

// Enricher derives per-record indicators from the stream seen so far:
// RSI and MACD over accumulated closes, the high/low average, intraday
// volatility, a rolling average volume, and a data quality score.
// It keeps per-symbol state, so records must arrive in replay order.
// Indicators already present on a record are never overwritten.
type Enricher struct {
	closes  map[string][]float64
	volumes map[string][]float64
}

// NewEnricher creates an enricher with empty per-symbol state.
func NewEnricher() *Enricher {
	return &Enricher{
		closes:  make(map[string][]float64),
		volumes: make(map[string][]float64),
	}
}

// Enrich returns the record with derived indicators and metadata added.
func (e *Enricher) Enrich(data core.MarketData) core.MarketData {
	if data.Indicators == nil {
		data.Indicators = make(map[string]float64)
	}

	closePrice := data.Close
	if closePrice <= 0 {
		closePrice = data.Price
	}
	if closePrice > 0 && data.Symbol != "" {
		e.closes[data.Symbol] = append(e.closes[data.Symbol], closePrice)
	}

	closes := e.closes[data.Symbol]

	if _, ok := data.Indicators["rsi"]; !ok {
		if len(closes) > rsiPeriod {
			window := closes[len(closes)-rsiPeriod-1:]
			data.Indicators["rsi"] = indicator.RSI(window, rsiPeriod)
		}
	}

	if _, ok := data.Indicators["macd"]; !ok {
		if len(closes) >= macdSlow {
			fast := indicator.EMA(closes, macdFast)
			slow := indicator.EMA(closes, macdSlow)
			data.Indicators["macd"] = fast[len(fast)-1] - slow[len(slow)-1]
		}
	}

	if data.High > 0 && data.Low > 0 {
		if _, ok := data.Indicators["hl_avg"]; !ok {
			data.Indicators["hl_avg"] = (data.High + data.Low) / 2
		}
		if _, ok := data.Indicators["volatility"]; !ok {
			data.Indicators["volatility"] = data.High - data.Low
		}
	}

	if data.Volume > 0 && data.Symbol != "" {
		vols := append(e.volumes[data.Symbol], data.Volume)
		if len(vols) > volumeWindow {
			vols = vols[len(vols)-volumeWindow:]
		}
		e.volumes[data.Symbol] = vols

		if _, ok := data.Indicators["average_volume"]; !ok {
			if avg := indicator.SMA(vols, len(vols)); len(avg) > 0 {
				data.Indicators["average_volume"] = avg[0]
			}
		}
	}

	if data.Meta == nil {
		data.Meta = make(map[string]any)
	}
	if _, ok := data.Meta["data_quality"]; !ok {
		data.Meta["data_quality"] = quality(data)
	}

	return data
}

// quality scores field coverage: the fraction of required fields
// present, plus a 0.2 bonus scaled by optional field coverage, capped
// at 1.
func quality(data core.MarketData) float64 {
	var required float64
	if data.Symbol != "" {
		required++
	}
	if data.Price > 0 {
		required++
	}
	if !data.Timestamp.IsZero() {
		required++
	}

	var optional float64
	for _, v := range []float64{data.Volume, data.Open, data.High, data.Low, data.Close} {
		if v > 0 {
			optional++
		}
	}

	score := required/3 + 0.2*(optional/5)
	return core.Clamp(score, 0, 1)
}
