package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/quantrell/tradewind/internal/config"
	"github.com/quantrell/tradewind/internal/extdata"
	"github.com/quantrell/tradewind/internal/logger"
	"github.com/quantrell/tradewind/internal/metrics"
	"github.com/quantrell/tradewind/internal/provider"
	"github.com/quantrell/tradewind/internal/sentiment/factory"
	"github.com/quantrell/tradewind/internal/strategy"
)

const (
	defaultWeatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"
	defaultNewsEndpoint    = "https://newsapi.org/v2/everything"
)

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Defaults(), nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	development := cfg.Logging.Development || debug
	level := cfg.Logging.Level
	if debug {
		level = "debug"
	}
	return logger.NewWithLevel(development, level)
}

func newRegistry(cfg *config.Config) *metrics.Registry {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.NewRegistry()
}

// buildStrategy wires a strategy variant with the auxiliary providers
// the configuration enables: LLM sentiment, weather and news.
func buildStrategy(name string, cfg *config.Config, log *zap.Logger, reg *metrics.Registry) (strategy.Strategy, error) {
	if sc, ok := cfg.Strategies[name]; ok && !sc.Enabled {
		return nil, fmt.Errorf("strategy %q is disabled in config", name)
	}

	var extras []provider.Provider

	if cfg.Sentiment.Provider != "" {
		analyzer, err := factory.New(cfg.Sentiment)
		if err != nil {
			return nil, fmt.Errorf("building sentiment analyzer: %w", err)
		}
		extras = append(extras, provider.NewLLMSentiment(analyzer))
	}

	if cfg.Feeds.Weather.Enabled {
		endpoint := cfg.Feeds.Weather.Endpoint
		if endpoint == "" {
			endpoint = defaultWeatherEndpoint
		}
		client := extdata.NewWeatherAPI(cfg.Feeds.Weather.APIKey, endpoint)
		extras = append(extras, provider.NewWeather(client, cfg.Feeds.Weather.Location))
	}

	if cfg.Feeds.News.Enabled {
		endpoint := cfg.Feeds.News.Endpoint
		if endpoint == "" {
			endpoint = defaultNewsEndpoint
		}
		extras = append(extras, provider.NewNews(extdata.NewNewsAPI(cfg.Feeds.News.APIKey, endpoint)))
	}

	opts := []strategy.Option{
		strategy.WithLogger(log),
		strategy.WithMetrics(reg),
		strategy.WithProviders(extras...),
	}

	switch name {
	case "futures":
		return strategy.NewFutures(opts...), nil
	case "options":
		return strategy.NewOptions(opts...), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want futures or options)", name)
	}
}
