// Package filestore persists preferences in a flat TOML document.
package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/shade/internal/domain/repository"
	"github.com/bnema/shade/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// PreferenceRepository stores preferences as `key = "value"` pairs in one TOML file.
// The file is re-read on every Get so edits by other processes are picked up,
// and rewritten atomically (temp file + rename) on every mutation.
type PreferenceRepository struct {
	path string
	mu   sync.Mutex
}

// Compile-time interface check.
var _ repository.PreferenceRepository = (*PreferenceRepository)(nil)

// NewPreferenceRepository creates a repository backed by the file at path.
// The file and its directory are created on first write.
func NewPreferenceRepository(path string) *PreferenceRepository {
	return &PreferenceRepository{path: path}
}

// Path returns the backing file path.
func (r *PreferenceRepository) Path() string {
	return r.path
}

func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return "", false, err
	}

	logging.FromContext(ctx).Debug().Str("key", key).Str("path", r.path).Msg("getting preference")

	raw, ok := values[key]
	if !ok {
		return "", false, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("preference %q in %s is not a string (got %T)", key, r.path, raw)
	}
	return value, true, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return err
	}
	values[key] = value

	logging.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("setting preference")
	return r.write(values)
}

func (r *PreferenceRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return r.write(values)
}

// read loads the document. A missing file is an empty document.
func (r *PreferenceRepository) read() (map[string]any, error) {
	values := make(map[string]any)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file %s: %w", r.path, err)
	}
	return values, nil
}

func (r *PreferenceRepository) write(values map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(r.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(values); err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".preferences-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set preferences file mode: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace preferences file: %w", err)
	}
	return nil
}
