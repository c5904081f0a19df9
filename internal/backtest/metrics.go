package backtest

import (
	"math"

	"github.com/quantrell/tradewind/internal/core"
)

// ComputeMetrics derives aggregate performance from a replay trail.
// Holds carry a zero return but still count toward the return series,
// so a strategy that rarely trades shows a correspondingly flat
// average. Empty input yields zero metrics.
func ComputeMetrics(records []Record) Metrics {
	if len(records) == 0 {
		return Metrics{}
	}

	var m Metrics
	returns := make([]float64, 0, len(records))

	for _, r := range records {
		ret := 0.0
		if r.Trade.Action != core.ActionHold && r.Trade.Price > 0 {
			m.TotalTrades++
			m.TotalPnL += r.PnL
			// Zero-size fills carry no exposure, so their return is 0
			// rather than 0/0.
			if r.Trade.Size > 0 {
				ret = r.PnL / (r.Trade.Price * r.Trade.Size)
			}
			if isWin(r) {
				m.WinningTrades++
			}
		}
		returns = append(returns, ret)
	}

	if m.TotalTrades > 0 {
		m.WinRate = float64(m.WinningTrades) / float64(m.TotalTrades)
	}

	m.AvgReturn = mean(returns)
	m.SharpeRatio = sharpe(returns)

	return m
}

// isWin reports whether the fill ended up on the right side of the
// record price: buys that filled below it, sells that filled above it.
// Both reduce to a positive pointwise P/L.
func isWin(r Record) bool {
	return r.PnL > 0
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// sharpe is the ratio of mean return to its population standard
// deviation, with a zero risk-free rate. Zero when the series does not
// vary.
func sharpe(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	m := mean(vs)

	var variance float64
	for _, v := range vs {
		variance += (v - m) * (v - m)
	}
	stdDev := math.Sqrt(variance / float64(len(vs)))

	if stdDev == 0 {
		return 0
	}
	return m / stdDev
}
