package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from configDir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// SHADE_STORAGE_BACKEND, SHADE_ASSETS_DOMAIN, ...
	v.SetEnvPrefix("SHADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SHADE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SHADE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.build()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.configDir, configName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// build unmarshals, normalizes and validates the current viper state.
func (m *Manager) build() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)

	if err := ensureStoragePath(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ResolveStoragePath fills an empty storage.path with the XDG default of the
// selected backend. Load does this already; callers building a Config by hand
// (e.g. the fallback to DefaultConfig) need it before opening a repository.
func ResolveStoragePath(config *Config) error {
	return ensureStoragePath(config)
}

func ensureStoragePath(config *Config) error {
	if config.Storage.Path != "" || config.Storage.Backend == StorageBackendMemory {
		return nil
	}

	var (
		path string
		err  error
	)
	switch config.Storage.Backend {
	case StorageBackendFile:
		path, err = GetPreferencesFile()
	default:
		path, err = GetDatabaseFile()
	}
	if err != nil {
		return fmt.Errorf("failed to get storage path: %w", err)
	}
	config.Storage.Path = path
	return nil
}

func normalizeConfig(config *Config) {
	backend := StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend))))
	if backend == "" {
		backend = StorageBackendSQLite
	}
	config.Storage.Backend = backend
	config.Storage.Path = strings.TrimSpace(config.Storage.Path)

	config.Assets.Domain = strings.TrimSpace(config.Assets.Domain)
	config.Assets.BucketID = strings.TrimSpace(config.Assets.BucketID)
	config.Assets.Project = strings.TrimSpace(config.Assets.Project)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.UI.ToggleStyle = strings.ToLower(strings.TrimSpace(config.UI.ToggleStyle))
	if config.UI.ToggleStyle == "" {
		config.UI.ToggleStyle = DefaultConfig().UI.ToggleStyle
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configName)
}

// createDefaultConfig writes the defaults to config.toml.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configName)

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// storage.path is resolved in build(); it still needs a default so that
	// SHADE_STORAGE_PATH is picked up by AutomaticEnv during Unmarshal.
	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)

	m.viper.SetDefault("assets.domain", defaults.Assets.Domain)
	m.viper.SetDefault("assets.bucket_id", defaults.Assets.BucketID)
	m.viper.SetDefault("assets.project", defaults.Assets.Project)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("ui.toggle_style", defaults.UI.ToggleStyle)
}
