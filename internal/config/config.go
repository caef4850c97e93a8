package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/avikram/kubeportal/internal/util"
)

const (
	defaultConfigName = ".kubeportal"
	defaultConfigDir  = ".kubeportal"
)

// Manager handles kubeportal configuration
type Manager struct {
	configPath string
	config     *PortalConfig
	viper      *viper.Viper
}

// NewManager creates a new configuration manager
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &PortalConfig{},
	}
}

// Load loads the portal configuration from file
func (m *Manager) Load() (*PortalConfig, error) {
	// Set up config file path
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		// Try multiple locations
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		// Check ~/.kubeportal/config.yaml
		m.viper.AddConfigPath(filepath.Join(home, defaultConfigDir))
		// Check ~/.kubeportal.yaml
		m.viper.AddConfigPath(home)
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	// Set environment variable support
	m.viper.SetEnvPrefix("KUBEPORTAL")
	m.viper.AutomaticEnv()

	// Initialize config to ensure defaults are set even for empty configs
	m.config = &PortalConfig{}

	// Read config file
	if err := m.viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// File doesn't exist, apply defaults and return
		m.applyDefaults()
		return m.config, nil
	}

	// Unmarshal into config struct
	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidConfig, err)
	}

	// Apply defaults
	m.applyDefaults()

	return m.config, nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *PortalConfig {
	return m.config
}

// AssistEnabled reports whether a chat completion endpoint is configured
func (m *Manager) AssistEnabled() bool {
	return m.config != nil && m.config.Assist.Endpoint != ""
}

// applyDefaults sets default values for configuration
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.DefaultNamespace == "" {
		m.config.DefaultNamespace = "default"
	}

	if m.config.TailLines == 0 {
		m.config.TailLines = 200
	}

	if m.config.Defaults.Timeout == 0 {
		m.config.Defaults.Timeout = 180 * time.Second
	}

	if m.config.Defaults.OutputFormat == "" {
		m.config.Defaults.OutputFormat = "table"
	}
}
