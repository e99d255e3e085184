package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/repository"
	"github.com/bnema/shade/internal/logging"
)

const (
	getPreferenceQuery = `SELECT value FROM preferences WHERE key = ?`
	setPreferenceQuery = `INSERT INTO preferences (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deletePreferenceQuery = `DELETE FROM preferences WHERE key = ?`
)

type preferenceRepo struct {
	provider port.DatabaseProvider
}

// NewPreferenceRepository creates a SQLite-backed preference repository.
// The database is opened on first use through provider.
func NewPreferenceRepository(provider port.DatabaseProvider) repository.PreferenceRepository {
	return &preferenceRepo{provider: provider}
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Msg("getting preference")

	db, err := r.provider.DB(ctx)
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(ctx, getPreferenceQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Str("value", value).Msg("setting preference")

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, setPreferenceQuery, key, value); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}
	return nil
}

func (r *preferenceRepo) Delete(ctx context.Context, key string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, deletePreferenceQuery, key); err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}
