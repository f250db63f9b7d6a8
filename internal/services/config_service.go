package services

import (
	"fmt"

	config "github.com/inference-gateway/coordpick/config"
	viper "github.com/spf13/viper"
)

// ConfigService handles configuration updates and reloading
type ConfigService struct {
	viper  *viper.Viper
	config *config.Config
}

// NewConfigService creates a new config service
func NewConfigService(v *viper.Viper, cfg *config.Config) *ConfigService {
	return &ConfigService{
		viper:  v,
		config: cfg,
	}
}

// Reload re-reads configuration from disk
func (cs *ConfigService) Reload() (*config.Config, error) {
	if err := cs.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to re-read config file: %w", err)
	}

	newConfig, err := config.FromViper(cs.viper)
	if err != nil {
		return nil, err
	}

	cs.config = newConfig
	return newConfig, nil
}

// GetConfig returns the current config
func (cs *ConfigService) GetConfig() *config.Config {
	return cs.config
}

// SetValue sets a configuration value using dot notation and saves it to disk.
// The value is validated before anything is written.
func (cs *ConfigService) SetValue(key, value string) error {
	previous := cs.viper.Get(key)
	cs.viper.Set(key, value)

	if _, err := config.FromViper(cs.viper); err != nil {
		cs.viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := config.WriteViperConfigWithIndent(cs.viper, 2); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	newConfig, err := cs.Reload()
	if err != nil {
		return fmt.Errorf("failed to reload config after setting: %w", err)
	}

	cs.config = newConfig
	return nil
}
