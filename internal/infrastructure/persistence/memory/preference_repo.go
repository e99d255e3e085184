// Package memory provides process-local repository implementations.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/shade/internal/domain/repository"
)

// PreferenceRepository keeps preferences in a map. Nothing survives the process;
// it backs --ephemeral runs and tests that simulate restarts by sharing one instance.
type PreferenceRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// Compile-time interface check.
var _ repository.PreferenceRepository = (*PreferenceRepository)(nil)

// NewPreferenceRepository creates an empty in-memory repository.
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{values: make(map[string]string)}
}

func (r *PreferenceRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *PreferenceRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *PreferenceRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

// Len returns the number of stored keys.
func (r *PreferenceRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.values)
}
