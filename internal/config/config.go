package config

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"StockScreener/internal/screener"
)

// Config holds all application configuration.
type Config struct {
	Screen struct {
		Period       string `yaml:"period" env:"PERIOD, overwrite"`
		Workers      int    `yaml:"workers" env:"WORKERS, overwrite"`
		MarketSuffix string `yaml:"market_suffix" env:"MARKET_SUFFIX, overwrite"`
	} `yaml:"screen" env:", prefix=SCREEN_"`
	DataSource struct {
		Provider string `yaml:"provider" env:"PROVIDER, overwrite"`
		BaseURL  string `yaml:"base_url" env:"BASE_URL, overwrite"`
		APIKey   string `yaml:"api_key" env:"API_KEY, overwrite"`
	} `yaml:"data_source" env:", prefix=DATA_"`
	Output struct {
		Results string `yaml:"results" env:"RESULTS, overwrite"`
		Passed  string `yaml:"passed" env:"PASSED, overwrite"`
	} `yaml:"output" env:", prefix=OUTPUT_"`
	Watch struct {
		Cron string `yaml:"cron" env:"CRON, overwrite"`
	} `yaml:"watch" env:", prefix=WATCH_"`
	Telegram struct {
		BotToken string `yaml:"bot_token" env:"BOT_TOKEN, overwrite"`
		ChatID   string `yaml:"chat_id" env:"CHAT_ID, overwrite"`
	} `yaml:"telegram" env:", prefix=TELEGRAM_"`
	Logging struct {
		Level  string `yaml:"level" env:"LEVEL, overwrite"`
		Format string `yaml:"format" env:"FORMAT, overwrite"`
	} `yaml:"logging" env:", prefix=LOG_"`
	Proxy string `yaml:"proxy" env:"HTTPS_PROXY, overwrite"`
}

// Load reads config from an optional .env file and a YAML file, applies
// environment variable overrides, then fills defaults. A missing YAML file
// is not an error; the defaults make a usable configuration on their own.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	// Defaults
	if cfg.Screen.Period == "" {
		cfg.Screen.Period = screener.DefaultPeriod
	}
	if cfg.Screen.Workers == 0 {
		cfg.Screen.Workers = screener.DefaultWorkers
	}
	if cfg.Screen.MarketSuffix == "" {
		cfg.Screen.MarketSuffix = screener.DefaultSuffix
	}
	if cfg.DataSource.Provider == "" {
		if cfg.DataSource.BaseURL != "" {
			cfg.DataSource.Provider = "rest"
		} else {
			cfg.DataSource.Provider = "yahoo"
		}
	}
	if cfg.Output.Results == "" {
		cfg.Output.Results = "screen_results.csv"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 30 15 * * 1-5" // after the NSE close, weekdays
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Screen.Workers <= 0 {
		return fmt.Errorf("screen.workers must be positive")
	}
	switch c.DataSource.Provider {
	case "yahoo", "rest", "mock":
	default:
		return fmt.Errorf("data_source.provider must be yahoo, rest or mock, got %q", c.DataSource.Provider)
	}
	if c.DataSource.Provider == "rest" && c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required for the rest provider")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
