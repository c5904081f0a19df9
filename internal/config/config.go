package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/quantrell/tradewind/internal/core"
	"github.com/spf13/viper"
)

type Config struct {
	Logging    LoggingConfig             `mapstructure:"logging"`
	Strategies map[string]StrategyConfig `mapstructure:"strategies"`
	Simulator  SimulatorConfig           `mapstructure:"simulator"`
	Sentiment  SentimentConfig           `mapstructure:"sentiment"`
	Feeds      FeedsConfig               `mapstructure:"feeds"`
	Archive    ArchiveConfig             `mapstructure:"archive"`
	Metrics    MetricsConfig             `mapstructure:"metrics"`
}

type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

// StrategyConfig enables a strategy variant and carries its parameters.
type StrategyConfig struct {
	Enabled bool           `mapstructure:"enabled"`
	Params  map[string]any `mapstructure:"params"`
}

// SimulatorConfig holds trade simulation settings.
type SimulatorConfig struct {
	MinSignalThreshold float64 `mapstructure:"min_signal_threshold"`
	SlippageRate       float64 `mapstructure:"slippage_rate"`
	TradeSize          float64 `mapstructure:"trade_size"`
}

// SentimentConfig selects the LLM sentiment backend.
type SentimentConfig struct {
	Provider string       `mapstructure:"provider"`
	Claude   ClaudeConfig `mapstructure:"claude"`
	OpenAI   OpenAIConfig `mapstructure:"openai"`
	Ollama   OllamaConfig `mapstructure:"ollama"`
}

type ClaudeConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OllamaConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Model    string `mapstructure:"model"`
}

// FeedsConfig holds auxiliary context feed settings.
type FeedsConfig struct {
	Weather WeatherFeedConfig `mapstructure:"weather"`
	News    NewsFeedConfig    `mapstructure:"news"`
}

type WeatherFeedConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint"`
	Location string `mapstructure:"location"`
}

type NewsFeedConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint"`
	Topic    string `mapstructure:"topic"`
}

// ArchiveConfig selects where backtest results are persisted.
type ArchiveConfig struct {
	Type string   `mapstructure:"type"` // "localfs" or "s3"
	Path string   `mapstructure:"path"` // For localfs
	S3   S3Config `mapstructure:"s3"`   // For S3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Development: false,
			Level:       "info",
		},
		Strategies: map[string]StrategyConfig{
			"futures": {Enabled: true},
			"options": {Enabled: true},
		},
		Simulator: SimulatorConfig{
			MinSignalThreshold: 0.2,
			SlippageRate:       0.001,
			TradeSize:          1.0,
		},
		Archive: ArchiveConfig{
			Type: "localfs",
			Path: "archive",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

var knownStrategies = map[string]struct{}{
	"futures": {},
	"options": {},
}

// Validate checks the configuration for errors. A failure here is fatal
// at startup; nothing downstream recovers from a bad config.
func (c *Config) Validate() error {
	for name := range c.Strategies {
		if _, ok := knownStrategies[name]; !ok {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("unknown strategy %q (want futures or options)", name))
		}
	}

	if t := c.Simulator.MinSignalThreshold; t < 0 || t > 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("min_signal_threshold must be between 0 and 1, got %f", t))
	}
	if s := c.Simulator.SlippageRate; s < 0 || s >= 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("slippage_rate must be in [0, 1), got %f", s))
	}
	if c.Simulator.TradeSize < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("trade_size cannot be negative, got %f", c.Simulator.TradeSize))
	}

	// Sentiment validation - if provider set, check config exists
	if c.Sentiment.Provider != "" {
		switch c.Sentiment.Provider {
		case "claude":
			if c.Sentiment.Claude.APIKey == "" {
				return core.WrapError(core.ErrConfigMissing,
					fmt.Errorf("claude api_key required when provider is claude"))
			}
		case "openai":
			if c.Sentiment.OpenAI.APIKey == "" {
				return core.WrapError(core.ErrConfigMissing,
					fmt.Errorf("openai api_key required when provider is openai"))
			}
		case "ollama":
			if c.Sentiment.Ollama.Endpoint == "" {
				return core.WrapError(core.ErrConfigMissing,
					fmt.Errorf("ollama endpoint required when provider is ollama"))
			}
		default:
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("unknown sentiment provider: %s", c.Sentiment.Provider))
		}
	}

	if c.Feeds.Weather.Enabled && c.Feeds.Weather.APIKey == "" {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("weather feed api_key required when enabled"))
	}
	if c.Feeds.News.Enabled && c.Feeds.News.APIKey == "" {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("news feed api_key required when enabled"))
	}

	switch c.Archive.Type {
	case "", "localfs":
	case "s3":
		if c.Archive.S3.Bucket == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("s3 bucket required when archive type is s3"))
		}
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown archive type: %s", c.Archive.Type))
	}

	return nil
}
