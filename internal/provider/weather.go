package provider

import (
	"context"
	"strings"

	"github.com/quantrell/tradewind/internal/core"
	"github.com/quantrell/tradewind/internal/extdata"
)

// Weather contributes a small bounded score from current weather at a
// reference location. Commodity-linked symbols react to severe weather;
// for everything else the contribution hovers near zero.
type Weather struct {
	client   extdata.WeatherClient
	location string
}

// NewWeather wraps a weather client with a default location. A record
// may override the location via its "location" metadata key.
func NewWeather(client extdata.WeatherClient, location string) *Weather {
	return &Weather{client: client, location: location}
}

func (w *Weather) Name() string { return "weather" }

func (w *Weather) Score(ctx context.Context, data core.MarketData) (float64, error) {
	location := w.location
	if loc, ok := data.Meta["location"].(string); ok && loc != "" {
		location = loc
	}

	cond, err := w.client.Current(ctx, location)
	if err != nil {
		return 0, core.WrapError(core.ErrProviderFailed, err)
	}

	return weatherScore(cond.Condition), nil
}

func weatherScore(condition string) float64 {
	switch strings.ToLower(condition) {
	case "thunderstorm", "tornado", "squall", "hurricane":
		return -0.3
	case "rain", "snow", "drizzle":
		return -0.2
	case "clear":
		return 0.1
	default:
		return 0
	}
}
