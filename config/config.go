package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/inference-gateway/coordpick/internal/constants"
	"github.com/inference-gateway/coordpick/internal/logger"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is the project-local configuration file
	DefaultConfigPath = ".coordpick/config.yaml"

	// EnvPrefix is the prefix viper uses for environment overrides
	EnvPrefix = "COORDPICK"

	// ModeCanonical stretches every image to the logical resolution at load time
	ModeCanonical = "canonical"
	// ModeDeferred keeps the source untouched and records its natural size
	ModeDeferred = "deferred"
)

// Config represents the coordpick configuration
type Config struct {
	Gallery   GalleryConfig   `yaml:"gallery" mapstructure:"gallery"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Clipboard ClipboardConfig `yaml:"clipboard" mapstructure:"clipboard"`
	Notify    NotifyConfig    `yaml:"notify" mapstructure:"notify"`
	Web       WebConfig       `yaml:"web" mapstructure:"web"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// GalleryConfig contains normalization and gallery settings
type GalleryConfig struct {
	Mode            string `yaml:"mode" mapstructure:"mode"`
	Width           int    `yaml:"width" mapstructure:"width"`
	Height          int    `yaml:"height" mapstructure:"height"`
	Background      string `yaml:"background" mapstructure:"background"`
	SeedPlaceholder bool   `yaml:"seed_placeholder" mapstructure:"seed_placeholder"`
	PlaceholderURL  string `yaml:"placeholder_url" mapstructure:"placeholder_url"`
}

// FetchConfig contains settings for loading remote images
type FetchConfig struct {
	Timeout   int              `yaml:"timeout" mapstructure:"timeout"`
	MaxSize   int64            `yaml:"max_size" mapstructure:"max_size"`
	UserAgent string           `yaml:"user_agent" mapstructure:"user_agent"`
	Cache     FetchCacheConfig `yaml:"cache" mapstructure:"cache"`
	Retry     FetchRetryConfig `yaml:"retry" mapstructure:"retry"`
}

// FetchRetryConfig controls retries of transient remote fetch failures
type FetchRetryConfig struct {
	Enabled           bool `yaml:"enabled" mapstructure:"enabled"`
	MaxAttempts       int  `yaml:"max_attempts" mapstructure:"max_attempts"`
	InitialBackoffMs  int  `yaml:"initial_backoff_ms" mapstructure:"initial_backoff_ms"`
	MaxBackoffMs      int  `yaml:"max_backoff_ms" mapstructure:"max_backoff_ms"`
	BackoffMultiplier int  `yaml:"backoff_multiplier" mapstructure:"backoff_multiplier"`
}

// FetchCacheConfig contains cache settings for fetched image bytes
type FetchCacheConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	TTL     int  `yaml:"ttl" mapstructure:"ttl"`
}

// ClipboardConfig controls the system clipboard sink
type ClipboardConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// NotifyConfig contains lifetimes of transient UI feedback, in milliseconds
type NotifyConfig struct {
	ToastMillis  int `yaml:"toast_ms" mapstructure:"toast_ms"`
	RippleMillis int `yaml:"ripple_ms" mapstructure:"ripple_ms"`
}

// WebConfig contains the gallery web server settings
type WebConfig struct {
	Host          string `yaml:"host" mapstructure:"host"`
	Port          int    `yaml:"port" mapstructure:"port"`
	MaxUploadSize int64  `yaml:"max_upload_size" mapstructure:"max_upload_size"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Gallery: GalleryConfig{
			Mode:            ModeCanonical,
			Width:           constants.LogicalWidth,
			Height:          constants.LogicalHeight,
			Background:      "#000000",
			SeedPlaceholder: true,
			PlaceholderURL:  constants.PlaceholderImageURL,
		},
		Fetch: FetchConfig{
			Timeout:   0, // host default, no enforced timeout
			MaxSize:   52428800,
			UserAgent: "coordpick/1.0",
			Cache: FetchCacheConfig{
				Enabled: true,
				TTL:     600,
			},
			Retry: FetchRetryConfig{
				Enabled:           false,
				MaxAttempts:       3,
				InitialBackoffMs:  500,
				MaxBackoffMs:      4000,
				BackoffMultiplier: 2,
			},
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
		Notify: NotifyConfig{
			ToastMillis:  int(constants.ToastLifetime.Milliseconds()),
			RippleMillis: int(constants.RippleLifetime.Milliseconds()),
		},
		Web: WebConfig{
			Host:          "127.0.0.1",
			Port:          8420,
			MaxUploadSize: 33554432,
		},
	}
}

// Validate checks the configuration for values the services cannot work with
func (c *Config) Validate() error {
	switch c.Gallery.Mode {
	case ModeCanonical, ModeDeferred:
	default:
		return fmt.Errorf("invalid gallery mode %q (expected %q or %q)", c.Gallery.Mode, ModeCanonical, ModeDeferred)
	}

	if c.Gallery.Width <= 0 || c.Gallery.Height <= 0 {
		return fmt.Errorf("gallery resolution must be positive, got %dx%d", c.Gallery.Width, c.Gallery.Height)
	}

	if _, err := ParseHexColor(c.Gallery.Background); err != nil {
		return fmt.Errorf("invalid gallery background: %w", err)
	}

	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("fetch timeout cannot be negative")
	}

	if c.Fetch.MaxSize <= 0 {
		return fmt.Errorf("fetch max_size must be positive")
	}

	if c.Fetch.Retry.Enabled && (c.Fetch.Retry.MaxAttempts < 1 || c.Fetch.Retry.BackoffMultiplier < 1) {
		return fmt.Errorf("fetch retry needs max_attempts and backoff_multiplier of at least 1")
	}

	if c.Notify.ToastMillis <= 0 || c.Notify.RippleMillis <= 0 {
		return fmt.Errorf("notify lifetimes must be positive")
	}

	if c.Web.Port < 0 || c.Web.Port > 65535 {
		return fmt.Errorf("invalid web port %d", c.Web.Port)
	}

	return nil
}

// LoadConfig loads configuration from file
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = getDefaultConfigPath()
		logger.Debug("Using default config path", "path", configPath)
	} else {
		logger.Debug("Using custom config path", "path", configPath)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Debug("Config file not found, using default configuration", "path", configPath)
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		logger.Error("Failed to read config file", "path", configPath, "error", err)
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		logger.Error("Failed to parse config file", "path", configPath, "error", err)
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Successfully loaded config", "path", configPath, "mode", config.Gallery.Mode)
	return config, nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error("Failed to create config directory", "dir", dir, "error", err)
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		logger.Error("Failed to write config file", "path", configPath, "error", err)
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logger.Debug("Successfully saved config", "path", configPath)
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rgb" into its RGB components
func ParseHexColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return rgb, fmt.Errorf("color %q must be #rgb or #rrggbb", s)
	}

	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return rgb, fmt.Errorf("color %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return rgb, nil
}

func getDefaultConfigPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return DefaultConfigPath
	}
	return filepath.Join(wd, DefaultConfigPath)
}
