package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantrell/tradewind/internal/core"
)

func TestLoad_FromFile(t *testing.T) {
	content := []byte(`
logging:
  development: true
  level: debug

simulator:
  min_signal_threshold: 0.25
  slippage_rate: 0.002
  trade_size: 2.0

strategies:
  futures:
    enabled: true
  options:
    enabled: false

archive:
  type: localfs
  path: "/tmp/tradewind/archive"
`)

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Simulator.MinSignalThreshold != 0.25 {
		t.Errorf("expected threshold 0.25, got %f", cfg.Simulator.MinSignalThreshold)
	}
	if cfg.Simulator.TradeSize != 2.0 {
		t.Errorf("expected trade size 2.0, got %f", cfg.Simulator.TradeSize)
	}
	if !cfg.Strategies["futures"].Enabled {
		t.Error("expected futures strategy enabled")
	}
	if cfg.Strategies["options"].Enabled {
		t.Error("expected options strategy disabled")
	}
	if cfg.Archive.Type != "localfs" {
		t.Errorf("expected localfs, got %s", cfg.Archive.Type)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_CLAUDE_KEY", "sk-test-123")

	content := []byte(`
sentiment:
  provider: claude
  claude:
    api_key: "${TEST_CLAUDE_KEY}"
`)

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sentiment.Claude.APIKey != "sk-test-123" {
		t.Errorf("expected expanded api key, got %q", cfg.Sentiment.Claude.APIKey)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Simulator.MinSignalThreshold != 0.2 {
		t.Errorf("expected default threshold 0.2, got %f", cfg.Simulator.MinSignalThreshold)
	}
	if cfg.Simulator.SlippageRate != 0.001 {
		t.Errorf("expected default slippage 0.001, got %f", cfg.Simulator.SlippageRate)
	}
	if cfg.Simulator.TradeSize != 1.0 {
		t.Errorf("expected default trade size 1.0, got %f", cfg.Simulator.TradeSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Simulator: SimulatorConfig{MinSignalThreshold: 0.2, SlippageRate: 0.001, TradeSize: 1},
		}
	}

	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  bool
		wantCode *core.Error
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:     "unknown strategy",
			mutate:   func(c *Config) { c.Strategies = map[string]StrategyConfig{"scalping": {}} },
			wantErr:  true,
			wantCode: core.ErrConfigInvalid,
		},
		{
			name:     "threshold out of range",
			mutate:   func(c *Config) { c.Simulator.MinSignalThreshold = 1.5 },
			wantErr:  true,
			wantCode: core.ErrConfigInvalid,
		},
		{
			name:     "negative slippage",
			mutate:   func(c *Config) { c.Simulator.SlippageRate = -0.1 },
			wantErr:  true,
			wantCode: core.ErrConfigInvalid,
		},
		{
			name:     "negative trade size",
			mutate:   func(c *Config) { c.Simulator.TradeSize = -1 },
			wantErr:  true,
			wantCode: core.ErrConfigInvalid,
		},
		{
			name:     "claude without api key",
			mutate:   func(c *Config) { c.Sentiment.Provider = "claude" },
			wantErr:  true,
			wantCode: core.ErrConfigMissing,
		},
		{
			name:     "unknown sentiment provider",
			mutate:   func(c *Config) { c.Sentiment.Provider = "bard" },
			wantErr:  true,
			wantCode: core.ErrConfigInvalid,
		},
		{
			name:     "weather feed without key",
			mutate:   func(c *Config) { c.Feeds.Weather.Enabled = true },
			wantErr:  true,
			wantCode: core.ErrConfigMissing,
		},
		{
			name:     "s3 archive without bucket",
			mutate:   func(c *Config) { c.Archive.Type = "s3" },
			wantErr:  true,
			wantCode: core.ErrConfigMissing,
		},
		{
			name:     "unknown archive type",
			mutate:   func(c *Config) { c.Archive.Type = "tape" },
			wantErr:  true,
			wantCode: core.ErrConfigInvalid,
		},
		{
			name: "ollama with endpoint is fine",
			mutate: func(c *Config) {
				c.Sentiment.Provider = "ollama"
				c.Sentiment.Ollama.Endpoint = "http://localhost:11434"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, tt.wantCode) {
				t.Errorf("expected code %s, got %v", tt.wantCode.Code, err)
			}
		})
	}
}
