package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/shade/internal/domain/repository"
	"github.com/bnema/shade/internal/infrastructure/persistence/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository_MissingFileIsEmpty(t *testing.T) {
	repo := filestore.NewPreferenceRepository(filepath.Join(t.TempDir(), "preferences.toml"))

	value, found, err := repo.Get(context.Background(), repository.KeyThemeColor)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestPreferenceRepository_WritesReadableTOML(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "preferences.toml")
	repo := filestore.NewPreferenceRepository(path)

	require.NoError(t, repo.Set(ctx, repository.KeyThemeColor, "forest"))
	require.NoError(t, repo.Set(ctx, repository.KeyBrightnessMode, "dark"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "app_theme_color")
	assert.Contains(t, string(data), "forest")

	// A second instance sees what the first wrote.
	other := filestore.NewPreferenceRepository(path)
	value, found, err := other.Get(ctx, repository.KeyBrightnessMode)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}

func TestPreferenceRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := filestore.NewPreferenceRepository(filepath.Join(t.TempDir(), "preferences.toml"))

	require.NoError(t, repo.Set(ctx, repository.KeyThemeColor, "rose"))
	require.NoError(t, repo.Delete(ctx, repository.KeyThemeColor))
	require.NoError(t, repo.Delete(ctx, repository.KeyThemeColor))

	_, found, err := repo.Get(ctx, repository.KeyThemeColor)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPreferenceRepository_CorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("app_theme_color = [unterminated"), 0o644))
	repo := filestore.NewPreferenceRepository(path)

	_, _, err := repo.Get(context.Background(), repository.KeyThemeColor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse preferences file")
}

func TestPreferenceRepository_NonStringValueReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("app_brightness_mode = 1\n"), 0o644))
	repo := filestore.NewPreferenceRepository(path)

	_, _, err := repo.Get(context.Background(), repository.KeyBrightnessMode)
	require.Error(t, err)
}
