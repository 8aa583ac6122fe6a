package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the shared SQL handle of the navigation log.
type DatabaseProvider interface {
	// DB opens the database on first call and returns the same handle after.
	DB(ctx context.Context) (*sql.DB, error)

	// Opened reports whether DB has succeeded at least once.
	Opened() bool

	Close() error
}
