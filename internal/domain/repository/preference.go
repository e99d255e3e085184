package repository

import (
	"context"
)

// Persisted preference keys.
const (
	KeyThemeColor     = "app_theme_color"
	KeyBrightnessMode = "app_brightness_mode"
)

// PreferenceRepository is a durable string key-value store for user preferences.
type PreferenceRepository interface {
	// Get returns the stored value for key.
	// found is false (with a nil error) if the key was never written.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
