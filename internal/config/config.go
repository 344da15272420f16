package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	IndiaMART IndiaMARTConfig `yaml:"indiamart" mapstructure:"indiamart"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Economics EconomicsConfig `yaml:"economics" mapstructure:"economics"`
	Limits    LimitsConfig    `yaml:"limits" mapstructure:"limits"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`

	// Offline disables every network-backed price tier; estimates come
	// from the bundled rate tables alone.
	Offline bool `yaml:"offline" mapstructure:"offline"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	Model       string `yaml:"model" mapstructure:"model"`
	MaxTokens   int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// IndiaMARTConfig configures the B2B listing scrape tier.
type IndiaMARTConfig struct {
	BaseURL        string  `yaml:"base_url" mapstructure:"base_url"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// SearchConfig configures the web search price tier.
type SearchConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// EconomicsConfig holds the tunables of the cost model.
type EconomicsConfig struct {
	MarketingRate       float64 `yaml:"marketing_rate" mapstructure:"marketing_rate"`
	FixedMonthlyCost    float64 `yaml:"fixed_monthly_cost" mapstructure:"fixed_monthly_cost"`
	AssumedMonthlyUnits int     `yaml:"assumed_monthly_units" mapstructure:"assumed_monthly_units"`
	Zone                string  `yaml:"zone" mapstructure:"zone"`
	TierTimeoutSecs     int     `yaml:"tier_timeout_secs" mapstructure:"tier_timeout_secs"`
	MaxParallelLookups  int     `yaml:"max_parallel_lookups" mapstructure:"max_parallel_lookups"`
}

// LimitsConfig bounds the accepted product inputs.
type LimitsConfig struct {
	MinWeightGrams float64 `yaml:"min_weight_grams" mapstructure:"min_weight_grams"`
	MaxWeightGrams float64 `yaml:"max_weight_grams" mapstructure:"max_weight_grams"`
	MinPrice       float64 `yaml:"min_price" mapstructure:"min_price"`
	MaxPrice       float64 `yaml:"max_price" mapstructure:"max_price"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.gonogo")

	// Environment
	v.SetEnvPrefix("GONOGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("anthropic.timeout_secs", 30)
	v.SetDefault("indiamart.base_url", "https://dir.indiamart.com")
	v.SetDefault("indiamart.requests_per_sec", 0.5)
	v.SetDefault("search.key", "")
	v.SetDefault("search.base_url", "https://s.jina.ai")
	v.SetDefault("economics.marketing_rate", 0.10)
	v.SetDefault("economics.fixed_monthly_cost", 50000)
	v.SetDefault("economics.assumed_monthly_units", 500)
	v.SetDefault("economics.zone", "national")
	v.SetDefault("economics.tier_timeout_secs", 15)
	v.SetDefault("economics.max_parallel_lookups", 5)
	v.SetDefault("limits.min_weight_grams", 50)
	v.SetDefault("limits.max_weight_grams", 1000)
	v.SetDefault("limits.min_price", 50)
	v.SetDefault("limits.max_price", 2000)
	v.SetDefault("offline", false)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
