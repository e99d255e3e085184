package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/shade/internal/domain/entity"
)

// validateConfig collects every invalid value instead of stopping at the first one.
func validateConfig(config *Config) error {
	var validationErrors []string

	switch config.Storage.Backend {
	case StorageBackendSQLite, StorageBackendFile, StorageBackendMemory:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("storage.backend must be one of: sqlite, file, memory (got: %s)", config.Storage.Backend))
	}

	if config.Assets.Domain == "" {
		validationErrors = append(validationErrors, "assets.domain cannot be empty")
	} else if strings.Contains(config.Assets.Domain, "://") || strings.Contains(config.Assets.Domain, "/") {
		validationErrors = append(validationErrors,
			fmt.Sprintf("assets.domain must be a bare host[:port] without scheme or path (got: %s)", config.Assets.Domain))
	}
	if config.Assets.BucketID == "" {
		validationErrors = append(validationErrors, "assets.bucket_id cannot be empty")
	}
	if config.Assets.Project == "" {
		validationErrors = append(validationErrors, "assets.project cannot be empty")
	}

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}

	if _, err := entity.ParseToggleStyle(config.UI.ToggleStyle); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("ui.toggle_style must be one of: switch, checkbox, segmented, icon, radio (got: %s)", config.UI.ToggleStyle))
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, "; "))
	}
	return nil
}
