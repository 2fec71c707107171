// Package config loads Bonusly client settings from the process
// environment, an optional .env file, and an optional YAML settings
// file. Loading is a single construction-time step: it either returns
// usable settings or a configuration error, never a partially
// initialized client.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/madninja/bonusly-go/pkg/client"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables, e.g.
// BONUSLY_TOKEN, BONUSLY_BASE_URL, BONUSLY_TIMEOUT, BONUSLY_PAGE_SIZE.
const envPrefix = "BONUSLY"

// Settings holds everything needed to construct a client.
type Settings struct {
	// Token is the API access token. Required.
	Token string `mapstructure:"token"`

	// BaseURL overrides the production API root.
	BaseURL string `mapstructure:"base_url"`

	// Timeout bounds each request.
	Timeout time.Duration `mapstructure:"timeout"`

	// PageSize is the page size used for collection endpoints.
	PageSize int `mapstructure:"page_size"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

type loaderOptions struct {
	envFile      string
	settingsFile string
}

// Option customizes Load.
type Option func(*loaderOptions)

// WithEnvFile loads environment variables from an explicit .env file
// instead of the default ./.env lookup. The file must exist.
func WithEnvFile(path string) Option {
	return func(lo *loaderOptions) { lo.envFile = path }
}

// WithSettingsFile reads a YAML settings file in addition to the
// environment. Environment variables win over file values.
func WithSettingsFile(path string) Option {
	return func(lo *loaderOptions) { lo.settingsFile = path }
}

// Load resolves settings. A missing access token is a configuration
// error, not a panic.
func Load(opts ...Option) (Settings, error) {
	var lo loaderOptions
	for _, opt := range opts {
		opt(&lo)
	}

	if lo.envFile != "" {
		if err := godotenv.Load(lo.envFile); err != nil {
			return Settings{}, client.NewConfigurationError(fmt.Sprintf("load env file %s: %v", lo.envFile, err))
		}
	} else {
		// A local .env is optional.
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for _, key := range []string{"token", "base_url", "timeout", "page_size", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, client.NewConfigurationError(fmt.Sprintf("bind %s: %v", key, err))
		}
	}

	v.SetDefault("base_url", client.DefaultBaseURL)
	v.SetDefault("timeout", client.DefaultTimeout)
	v.SetDefault("page_size", client.DefaultPageSize)
	v.SetDefault("log_level", "info")

	if lo.settingsFile != "" {
		v.SetConfigFile(lo.settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, client.NewConfigurationError(fmt.Sprintf("read settings file %s: %v", lo.settingsFile, err))
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, client.NewConfigurationError(fmt.Sprintf("unmarshal settings: %v", err))
	}

	if settings.Token == "" {
		return Settings{}, client.NewConfigurationError(fmt.Sprintf("missing %s_TOKEN", envPrefix))
	}
	if settings.PageSize < 1 {
		return Settings{}, client.NewConfigurationError(fmt.Sprintf("page size must be >= 1 (got %d)", settings.PageSize))
	}

	return settings, nil
}

// NewClient loads settings and constructs a client from them. This is
// the usual entry point for applications:
//
//	c, err := config.NewClient()
func NewClient(opts ...Option) (*client.Client, error) {
	settings, err := Load(opts...)
	if err != nil {
		return nil, err
	}

	cfg := client.DefaultConfig(settings.Token)
	cfg.BaseURL = settings.BaseURL
	cfg.Timeout = settings.Timeout
	return client.New(cfg)
}
