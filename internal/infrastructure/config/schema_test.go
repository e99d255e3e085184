package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Shade Configuration", doc["title"])

	raw := string(data)
	for _, field := range []string{"storage", "assets", "bucket_id", "toggle_style", "segmented"} {
		assert.Contains(t, raw, field)
	}
}

func TestWriteSchemaFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	path, err := WriteSchemaFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, schemaName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
