package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(cfg *Config)
		errorField string
	}{
		{
			name:       "unknown backend",
			mutate:     func(cfg *Config) { cfg.Storage.Backend = "postgres" },
			errorField: "storage.backend",
		},
		{
			name:       "empty domain",
			mutate:     func(cfg *Config) { cfg.Assets.Domain = "" },
			errorField: "assets.domain",
		},
		{
			name:       "domain with scheme",
			mutate:     func(cfg *Config) { cfg.Assets.Domain = "https://assets.example.com" },
			errorField: "assets.domain",
		},
		{
			name:       "domain with path",
			mutate:     func(cfg *Config) { cfg.Assets.Domain = "assets.example.com/v1" },
			errorField: "assets.domain",
		},
		{
			name:       "empty bucket",
			mutate:     func(cfg *Config) { cfg.Assets.BucketID = "" },
			errorField: "assets.bucket_id",
		},
		{
			name:       "empty project",
			mutate:     func(cfg *Config) { cfg.Assets.Project = "" },
			errorField: "assets.project",
		},
		{
			name:       "bad log level",
			mutate:     func(cfg *Config) { cfg.Logging.Level = "verbose" },
			errorField: "logging.level",
		},
		{
			name:       "bad toggle style",
			mutate:     func(cfg *Config) { cfg.UI.ToggleStyle = "slider" },
			errorField: "ui.toggle_style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorField)
		})
	}
}

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Backend = "nope"
	cfg.Assets.Project = ""

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.backend")
	assert.Contains(t, err.Error(), "assets.project")
}
