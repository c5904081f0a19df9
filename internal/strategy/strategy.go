// Package strategy turns one market data record into one trading
// decision by fanning out to independent signal providers and combining
// their bounded scores.
package strategy

import (
	"context"

	"github.com/quantrell/tradewind/internal/core"
)

// Strategy produces one decision per market data record. GenerateSignal
// is total: it never returns an error and always yields a result with a
// signal in [-1, 1] and a confidence in [0, 1]. Records that fail
// validation produce a neutral result carrying the reason in metadata.
type Strategy interface {
	Name() string
	GenerateSignal(ctx context.Context, data core.MarketData) core.StrategyResult
}
