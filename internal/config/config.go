// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	// Persistent store. Backend is "sqlite" (embedded file, the default) or
	// "redis". StorePath is the SQLite file; RedisURL the Redis address or URL.
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	StorePath    string `mapstructure:"STORE_PATH"`
	RedisURL     string `mapstructure:"REDIS_URL"`

	// Admin gate. AdminPassword is a shared secret compared for exact
	// equality; it is a content-editing gate, not an authentication system.
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`

	// AI content gateway credential and endpoint. The key is read from the
	// hosting environment only, never from user input.
	AIAPIKey  string `mapstructure:"AI_API_KEY"`
	AIBaseURL string `mapstructure:"AI_BASE_URL"`
	AIModel   string `mapstructure:"AI_MODEL"`

	// Resource library upload cap, in bytes.
	MaxUploadBytes int64 `mapstructure:"MAX_UPLOAD_BYTES"`

	TracingEnabled  bool    `mapstructure:"TRACING_ENABLED"`
	TracingExporter string  `mapstructure:"TRACING_EXPORTER"`
	OTLPEndpoint    string  `mapstructure:"OTLP_ENDPOINT"`
	TracingSampler  float64 `mapstructure:"TRACING_SAMPLER_RATIO"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file may not exist; environment variables and defaults
	// are enough to run.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("required profile-specific config 'config.%s.yml' not found: %w", env, err)
		}
		log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
	}

	viper.SetDefault("PORT", "8375")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173")
	viper.SetDefault("STORE_BACKEND", "sqlite")
	viper.SetDefault("STORE_PATH", "soulshub.db")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("ADMIN_PASSWORD", "Souls4Jesus")
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("AI_API_KEY", "")
	viper.SetDefault("AI_BASE_URL", "")
	viper.SetDefault("AI_MODEL", "gpt-4.1-mini")
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(2*1024*1024))
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_EXPORTER", "stdout")
	viper.SetDefault("OTLP_ENDPOINT", "localhost:4318")
	viper.SetDefault("TRACING_SAMPLER_RATIO", 1.0)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required")
	}

	switch c.StoreBackend {
	case "sqlite", "redis":
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (want sqlite or redis)", c.StoreBackend)
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if isProduction {
		if c.JWTSecret == "your-secret-key-change-in-production" {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
		if c.AdminPassword == "Souls4Jesus" {
			log.Println("WARNING: ADMIN_PASSWORD is still the well-known default in production.")
		}
	} else {
		if len(c.JWTSecret) < 32 {
			log.Println("WARNING: JWT_SECRET is shorter than 32 characters. Consider using a stronger secret for production.")
		}
	}

	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}

	return nil
}
