// Package config handles application configuration loading and validation.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration, loaded from config.yml and
// overridden by environment variables.
type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	RedisURL string `mapstructure:"REDIS_URL"`

	AccessTokenKey  string `mapstructure:"ACCESS_TOKEN_KEY"`
	RefreshTokenKey string `mapstructure:"REFRESH_TOKEN_KEY"`
	AccessTokenAge  int    `mapstructure:"ACCESS_TOKEN_AGE"`

	TracingEnabled  bool    `mapstructure:"TRACING_ENABLED"`
	TracingExporter string  `mapstructure:"TRACING_EXPORTER"`
	OTLPEndpoint    string  `mapstructure:"OTLP_ENDPOINT"`
	TracingSampler  float64 `mapstructure:"TRACING_SAMPLER_RATIO"`
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "developer")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "forumapi")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379")
	viper.SetDefault("ACCESS_TOKEN_KEY", "access-secret-change-in-production")
	viper.SetDefault("REFRESH_TOKEN_KEY", "refresh-secret-change-in-production")
	viper.SetDefault("ACCESS_TOKEN_AGE", 3600)
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_EXPORTER", "stdout")
	viper.SetDefault("OTLP_ENDPOINT", "localhost:4318")
	viper.SetDefault("TRACING_SAMPLER_RATIO", 1.0)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		slog.Info("No config file found, using environment variables and defaults")
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that the configuration is usable, with stricter rules in
// production.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.AccessTokenKey == "" {
		return fmt.Errorf("ACCESS_TOKEN_KEY is required")
	}
	if c.RefreshTokenKey == "" {
		return fmt.Errorf("REFRESH_TOKEN_KEY is required")
	}
	if c.AccessTokenAge <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_AGE must be positive, got %d", c.AccessTokenAge)
	}

	if c.IsProduction() {
		if strings.Contains(c.AccessTokenKey, "change-in-production") ||
			strings.Contains(c.RefreshTokenKey, "change-in-production") {
			return fmt.Errorf("default token keys are not allowed in production")
		}
		if len(c.AccessTokenKey) < 32 || len(c.RefreshTokenKey) < 32 {
			return fmt.Errorf("token keys must be at least 32 characters in production")
		}
		if c.DBPassword == "" {
			return fmt.Errorf("DB_PASSWORD is required in production")
		}
		if c.DBSSLMode == "disable" {
			slog.Warn("Database SSL is disabled in production")
		}
	} else if len(c.AccessTokenKey) < 32 || len(c.RefreshTokenKey) < 32 {
		slog.Warn("Token keys are shorter than 32 characters, consider longer keys")
	}

	return nil
}

// IsProduction reports whether the app runs in a production environment.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}
