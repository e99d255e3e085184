// Package config loads, validates and watches the shade configuration file.
package config

import "github.com/bnema/shade/internal/domain/entity"

// Config is the full application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" toml:"storage" json:"storage"`
	Assets  AssetsConfig  `mapstructure:"assets" toml:"assets" json:"assets"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	UI      UIConfig      `mapstructure:"ui" toml:"ui" json:"ui"`
}

// StorageBackend selects where preferences are persisted.
type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendFile   StorageBackend = "file"
	StorageBackendMemory StorageBackend = "memory"
)

// StorageConfig configures the preference repository.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=file,enum=memory,default=sqlite,description=Where preferences are persisted"`
	// Path of the database or TOML file. Empty selects the XDG data directory.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty" jsonschema:"description=Database or preferences file path (empty: XDG data dir)"`
}

// AssetsConfig locates the bucket serving theme placeholder images.
type AssetsConfig struct {
	Domain   string `mapstructure:"domain" toml:"domain" json:"domain" jsonschema:"description=Host (and optional port) of the storage service"`
	BucketID string `mapstructure:"bucket_id" toml:"bucket_id" json:"bucket_id" jsonschema:"description=Bucket holding placeholder images"`
	Project  string `mapstructure:"project" toml:"project" json:"project" jsonschema:"description=Project id sent with asset requests"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// UIConfig holds presentation options for the CLI front-ends.
type UIConfig struct {
	ToggleStyle string `mapstructure:"toggle_style" toml:"toggle_style" json:"toggle_style" jsonschema:"enum=switch,enum=checkbox,enum=segmented,enum=icon,enum=radio,default=switch"`
}

// AssetLocation converts the assets section to the domain type.
func (c *Config) AssetLocation() entity.AssetLocation {
	return entity.AssetLocation{
		Domain:   c.Assets.Domain,
		BucketID: c.Assets.BucketID,
		Project:  c.Assets.Project,
	}
}

// ToggleStyle returns the configured toggle style, or the default if invalid.
func (c *Config) ToggleStyle() entity.ToggleStyle {
	style, err := entity.ParseToggleStyle(c.UI.ToggleStyle)
	if err != nil {
		return entity.DefaultToggleStyle
	}
	return style
}
