package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration for the resolver.
type Config struct {
	InputCSV  string `mapstructure:"INPUT_CSV"`
	OutputCSV string `mapstructure:"OUTPUT_CSV"`

	SearchBaseURL string `mapstructure:"SEARCH_BASE_URL"`
	SiteFilter    string `mapstructure:"SITE_FILTER"`
	ProfileMarker string `mapstructure:"PROFILE_MARKER"`

	MaxQueryLength   int `mapstructure:"MAX_QUERY_LENGTH"`
	NavTimeoutSec    int `mapstructure:"NAV_TIMEOUT_SECONDS"`
	MarkerTimeoutSec int `mapstructure:"MARKER_TIMEOUT_SECONDS"`
	SettleDelayMS    int `mapstructure:"SETTLE_DELAY_MS"`
	SubjectDelaySec  int `mapstructure:"SUBJECT_DELAY_SECONDS"`

	StoreDriver string `mapstructure:"STORE_DRIVER"` // "csv" or "postgres"
	PostgresURL string `mapstructure:"POSTGRES_URL"`

	SeenBackend string `mapstructure:"SEEN_BACKEND"` // "memory" or "redis"
	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	RedisDB     int    `mapstructure:"REDIS_DB"`
	SeenTTLDays int    `mapstructure:"SEEN_TTL_DAYS"`

	DebugDir string `mapstructure:"DEBUG_DIR"`
	OpsPort  string `mapstructure:"OPS_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	Headless bool   `mapstructure:"HEADLESS"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present.
	// This allows configuration purely through environment variables.
	_ = viper.ReadInConfig()

	viper.SetDefault("INPUT_CSV", "speakers.csv")
	viper.SetDefault("OUTPUT_CSV", "linkedin_profiles.csv")
	viper.SetDefault("SEARCH_BASE_URL", "https://duckduckgo.com")
	viper.SetDefault("SITE_FILTER", "linkedin.com/in")
	viper.SetDefault("PROFILE_MARKER", "linkedin.com/in/")
	viper.SetDefault("MAX_QUERY_LENGTH", 200)
	viper.SetDefault("NAV_TIMEOUT_SECONDS", 10)
	viper.SetDefault("MARKER_TIMEOUT_SECONDS", 2)
	viper.SetDefault("SETTLE_DELAY_MS", 500)
	viper.SetDefault("SUBJECT_DELAY_SECONDS", 2)
	viper.SetDefault("STORE_DRIVER", "csv")
	viper.SetDefault("SEEN_BACKEND", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SEEN_TTL_DAYS", 30)
	viper.SetDefault("DEBUG_DIR", "")
	viper.SetDefault("OPS_PORT", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HEADLESS", true)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) NavTimeout() time.Duration { return time.Duration(c.NavTimeoutSec) * time.Second }
func (c *Config) MarkerTimeout() time.Duration {
	return time.Duration(c.MarkerTimeoutSec) * time.Second
}
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}
func (c *Config) SubjectDelay() time.Duration { return time.Duration(c.SubjectDelaySec) * time.Second }
func (c *Config) SeenTTL() time.Duration      { return time.Duration(c.SeenTTLDays) * 24 * time.Hour }
