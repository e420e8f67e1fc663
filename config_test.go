package main

import (
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "DB_DRIVER", "DB_URL", "ADDRESS_LISTEN", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, PRO_ENV, cfg.Environment)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "", cfg.Address)
	assert.Equal(t, []string{"*"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, float64(0), cfg.RateLimit)
	assert.Equal(t, log.INFO, cfg.LogLevel)
}

func TestLoadConfigDev(t *testing.T) {
	t.Setenv("ENV", DEV_ENV)
	t.Setenv("ADDRESS_LISTEN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("RATE_LIMIT", "-1")
	_, err := loadConfig()
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT", "")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = loadConfig()
	assert.Error(t, err)
}
