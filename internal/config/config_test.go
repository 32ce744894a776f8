package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDevConfig() *Config {
	return &Config{
		Port:      "8000",
		JWTSecret: "dev-secret",
		Env:       "development",
	}
}

func TestValidate_Development(t *testing.T) {
	cfg := validDevConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingPort(t *testing.T) {
	cfg := validDevConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingJWTSecret(t *testing.T) {
	cfg := validDevConfig()
	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionRejectsDefaults(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"default jwt secret", func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" }},
		{"short jwt secret", func(c *Config) { c.JWTSecret = "short" }},
		{"default db password", func(c *Config) { c.DBPassword = "password" }},
		{"empty db password", func(c *Config) { c.DBPassword = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:       "8000",
				Env:        "production",
				JWTSecret:  "a-very-long-production-grade-secret-value",
				DBPassword: "sufficiently-strong",
			}
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_ProductionAcceptsStrongConfig(t *testing.T) {
	cfg := &Config{
		Port:       "8000",
		Env:        "production",
		JWTSecret:  "a-very-long-production-grade-secret-value",
		DBPassword: "sufficiently-strong",
		DBSSLMode:  "require",
	}
	assert.NoError(t, cfg.Validate())
}
