// Package config provides configuration management for the ad pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidMode              = errors.New("extract.mode must be 'mock' or 'api'")
	ErrInvalidMockCount         = errors.New("extract.mock_count must be at least 1")
	ErrMissingAPIBaseURL        = errors.New("extract.api.base_url is required")
	ErrNoCountries              = errors.New("extract.api.countries must list at least one country")
	ErrInvalidMaxAttempts       = errors.New("extract.api.retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("extract.api.retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("extract.api.retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("extract.api.retry.timeout_sec must be at least 1")
	ErrMissingBronzeDir         = errors.New("layers.bronze_dir is required")
	ErrMissingSilverDir         = errors.New("layers.silver_dir is required")
	ErrMissingGoldDir           = errors.New("layers.gold_dir is required")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Extraction modes.
const (
	ModeMock = "mock"
	ModeAPI  = "api"
)

// Config represents the complete pipeline configuration.
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Layers  LayersConfig  `yaml:"layers"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExtractConfig contains raw-data acquisition settings.
type ExtractConfig struct {
	Mode      string    `yaml:"mode"`
	MockCount int       `yaml:"mock_count"`
	API       APIConfig `yaml:"api"`
}

// APIConfig contains ads-archive API settings.
type APIConfig struct {
	BaseURL     string      `yaml:"base_url"`
	SearchTerms string      `yaml:"search_terms"`
	AdType      string      `yaml:"ad_type"`
	Countries   []string    `yaml:"countries"`
	Retry       RetryPolicy `yaml:"retry"`
}

// RetryPolicy defines retry behavior for remote fetches.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// LayersConfig holds the base directory for each pipeline layer.
type LayersConfig struct {
	BronzeDir string `yaml:"bronze_dir"`
	SilverDir string `yaml:"silver_dir"`
	GoldDir   string `yaml:"gold_dir"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			Mode:      ModeMock,
			MockCount: 50,
			API: APIConfig{
				BaseURL:     "https://graph.facebook.com/v18.0/ads_archive",
				SearchTerms: "microlearning",
				AdType:      "POLITICAL_AND_ISSUE_ADS",
				Countries:   []string{"US"},
				Retry: RetryPolicy{
					MaxAttempts:       3,
					InitialDelayMs:    500,
					MaxDelayMs:        30000,
					BackoffMultiplier: 2.0,
					TimeoutSec:        30,
				},
			},
		},
		Layers: LayersConfig{
			BronzeDir: "data/bronze",
			SilverDir: "data/silver",
			GoldDir:   "data/gold",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Extract.Mode != ModeMock && c.Extract.Mode != ModeAPI {
		return ErrInvalidMode
	}

	if c.Extract.Mode == ModeMock && c.Extract.MockCount < 1 {
		return ErrInvalidMockCount
	}

	if c.Extract.Mode == ModeAPI {
		if c.Extract.API.BaseURL == "" {
			return ErrMissingAPIBaseURL
		}

		if len(c.Extract.API.Countries) == 0 {
			return ErrNoCountries
		}

		if err := c.Extract.API.Retry.Validate(); err != nil {
			return err
		}
	}

	if c.Layers.BronzeDir == "" {
		return ErrMissingBronzeDir
	}

	if c.Layers.SilverDir == "" {
		return ErrMissingSilverDir
	}

	if c.Layers.GoldDir == "" {
		return ErrMissingGoldDir
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Validate validates the retry policy.
func (rp *RetryPolicy) Validate() error {
	if rp.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if rp.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if rp.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if rp.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
// The first retry (attempt 2) waits InitialDelayMs; each further retry
// multiplies the delay by BackoffMultiplier, capped at MaxDelayMs.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 2; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the HTTP timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Mode: %s, Bronze: %s, Silver: %s, Gold: %s}",
		c.Extract.Mode,
		c.Layers.BronzeDir,
		c.Layers.SilverDir,
		c.Layers.GoldDir,
	)
}
