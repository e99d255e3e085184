// Package port defines interfaces between the appearance store and its adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the SQLite connection backing the preference repository.
// The connection is opened on first use, so commands that never touch
// preferences never create the database file.
type DatabaseProvider interface {
	// DB returns the database connection, opening and migrating it if necessary.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the database connection if it was opened.
	Close() error

	// IsInitialized returns true once the connection has been opened.
	IsInitialized() bool
}
