package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:           "8375",
			Env:            "development",
			StoreBackend:   "sqlite",
			StorePath:      "soulshub.db",
			AdminPassword:  "Souls4Jesus",
			JWTSecret:      "secure-secret-at-least-32-chars-long",
			MaxUploadBytes: 2 * 1024 * 1024,
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development config", func(*Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Missing admin password", func(c *Config) { c.AdminPassword = "" }, true},
		{"Unknown store backend", func(c *Config) { c.StoreBackend = "postgres" }, true},
		{"Redis backend", func(c *Config) { c.StoreBackend = "redis" }, false},
		{"Zero upload cap", func(c *Config) { c.MaxUploadBytes = 0 }, true},
		{"Production with default JWT secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Production with short JWT secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"Production with strong secret", func(c *Config) {
			c.Env = "production"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
