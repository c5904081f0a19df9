// Package provider contains the bounded signal providers a strategy
// fans out to. Each provider inspects one facet of a market data record
// and returns a score in [-1, 1]; errors are reduced to a neutral
// contribution by the aggregating strategy, never propagated further.
package provider

import (
	"context"

	"github.com/quantrell/tradewind/internal/core"
)

// Provider scores a single market data record. Implementations must be
// safe for concurrent use and must not retain the record.
type Provider interface {
	Name() string
	Score(ctx context.Context, data core.MarketData) (float64, error)
}
