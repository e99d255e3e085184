package config

import "github.com/bnema/shade/internal/domain/entity"

// Default configuration constants
const (
	defaultAssetsDomain   = "localhost"
	defaultAssetsBucketID = "theme-placeholders"
	defaultAssetsProject  = "shade"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: StorageBackendSQLite,
		},
		Assets: AssetsConfig{
			Domain:   defaultAssetsDomain,
			BucketID: defaultAssetsBucketID,
			Project:  defaultAssetsProject,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		UI: UIConfig{
			ToggleStyle: string(entity.DefaultToggleStyle),
		},
	}
}
