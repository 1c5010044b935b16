package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAppSecret is only acceptable outside production.
const DefaultAppSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string        `mapstructure:"SERVER_PORT"`
	MySQLDSN    string        `mapstructure:"MYSQL_DSN"`
	RedisAddr   string        `mapstructure:"REDIS_ADDR"`
	RedisDB     int           `mapstructure:"REDIS_DB"`
	RedisPass   string        `mapstructure:"REDIS_PASSWORD"`
	AppSecret   string        `mapstructure:"APP_SECRET"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	Env         string        `mapstructure:"APP_ENV"`
	SentryDSN   string        `mapstructure:"SENTRY_DSN"`
	SwaggerHost string        `mapstructure:"SWAGGER_HOST"`
	ResetDB     bool          `mapstructure:"RESET_DB"`
}

// Load builds Config from a .env file (when present) and the environment,
// with sensible defaults.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("MYSQL_DSN", "user:password@tcp(localhost:3306)/sharecircle?charset=utf8mb4&parseTime=True&loc=UTC")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("APP_SECRET", DefaultAppSecret)
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SENTRY_DSN", "")
	v.SetDefault("SWAGGER_HOST", "")
	v.SetDefault("RESET_DB", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return errors.New("SERVER_PORT is required")
	}
	if c.AppSecret == "" {
		return errors.New("APP_SECRET is required")
	}
	if c.TokenTTL < 0 {
		return errors.New("TOKEN_TTL must not be negative")
	}
	if c.IsProduction() {
		if c.AppSecret == DefaultAppSecret {
			return errors.New("APP_SECRET must be changed from the default value in production")
		}
		if len(c.AppSecret) < 32 {
			return errors.New("APP_SECRET must be at least 32 characters in production")
		}
	}
	return nil
}
