package config

import (
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Supported log output formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	ServiceName string
	Logging     LoggingConfig
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	// Level is a textual level name such as INFO, DEBUG or WARNING.
	Level  string
	Format string
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVICE_NAME", "listservice")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LOG_FORMAT", LogFormatText)

	cfg := &Config{
		Environment: strings.ToLower(v.GetString("ENVIRONMENT")),
		Port:        v.GetString("PORT"),
		ServiceName: v.GetString("SERVICE_NAME"),
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the application cannot run with.
// The log level is deliberately not validated here: unknown names fall back to info.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment, validation.Required,
			validation.In(EnvDevelopment, EnvTest, EnvStaging, EnvProduction)),
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.ServiceName, validation.Required),
		validation.Field(&c.Logging),
	)
}

// Validate checks the logging configuration
func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Format, validation.Required, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
