package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App  AppConfig
	API  APIConfig
	Auth AuthConfig
	HTTP HTTPConfig
	Log  LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// APIConfig holds the primary CRUD endpoint root
type APIConfig struct {
	BaseURL string
}

// AuthConfig holds the token endpoint root and the shared handshake secret
// used to authorize token issuance and refresh
type AuthConfig struct {
	BaseURL         string
	HandshakeSecret string
}

// HTTPConfig holds outbound HTTP client settings
type HTTPConfig struct {
	Timeout          time.Duration
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with ERP_ prefix (e.g., ERP_AUTH_HANDSHAKE_SECRET)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.erp-console")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("ERP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		API: APIConfig{
			BaseURL: v.GetString("api.base_url"),
		},
		Auth: AuthConfig{
			BaseURL:         v.GetString("auth.base_url"),
			HandshakeSecret: v.GetString("auth.handshake_secret"),
		},
		HTTP: HTTPConfig{
			Timeout:          v.GetDuration("http.timeout"),
			RateLimitEnabled: v.GetBool("http.rate_limit_enabled"),
			RateLimitRPS:     v.GetFloat64("http.rate_limit_rps"),
			RateLimitBurst:   v.GetInt("http.rate_limit_burst"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "erp-console"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8080/api"
	}
	if cfg.Auth.BaseURL == "" {
		// Token endpoints live next to the CRUD API unless configured apart
		cfg.Auth.BaseURL = cfg.API.BaseURL
	}
	if cfg.HTTP.Timeout == 0 {
		cfg.HTTP.Timeout = 30 * time.Second
	}
	if cfg.HTTP.RateLimitRPS == 0 {
		cfg.HTTP.RateLimitRPS = 20
	}
	if cfg.HTTP.RateLimitBurst == 0 {
		cfg.HTTP.RateLimitBurst = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if _, err := url.ParseRequestURI(c.Auth.BaseURL); err != nil {
		return fmt.Errorf("auth.base_url is not a valid URL: %w", err)
	}
	if c.HTTP.RateLimitEnabled && c.HTTP.RateLimitRPS <= 0 {
		return fmt.Errorf("http.rate_limit_rps must be positive when rate limiting is enabled")
	}

	if c.App.Env == "production" {
		if c.Auth.HandshakeSecret == "" {
			return fmt.Errorf("auth.handshake_secret is required in production")
		}
	}

	return nil
}
