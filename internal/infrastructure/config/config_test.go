package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "erp-console", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, cfg.API.BaseURL, cfg.Auth.BaseURL, "auth endpoints default next to the CRUD API")
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, float64(20), cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 10, cfg.HTTP.RateLimitBurst)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ERP_APP_ENV", "staging")
	t.Setenv("ERP_API_BASE_URL", "https://erp.example.com/api")
	t.Setenv("ERP_AUTH_BASE_URL", "https://auth.example.com")
	t.Setenv("ERP_AUTH_HANDSHAKE_SECRET", "s3cret")
	t.Setenv("ERP_HTTP_TIMEOUT", "5s")
	t.Setenv("ERP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Env)
	assert.Equal(t, "https://erp.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "https://auth.example.com", cfg.Auth.BaseURL)
	assert.Equal(t, "s3cret", cfg.Auth.HandshakeSecret)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	t.Setenv("ERP_API_BASE_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_url")
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ERP_APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.handshake_secret")
}

func TestLoad_RateLimitValidation(t *testing.T) {
	t.Setenv("ERP_HTTP_RATE_LIMIT_ENABLED", "true")
	t.Setenv("ERP_HTTP_RATE_LIMIT_RPS", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_rps")
}
