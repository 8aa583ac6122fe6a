package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/logging"
)

// LazyDB defers opening the database until a repository needs it, so
// commands that never touch the navigation log skip the WASM compile and
// migrations. A failed open is retried on the next call.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database file at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the open handle, opening it first if needed.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, fmt.Errorf("database %s: closed", l.path)
	}
	if l.db != nil {
		return l.db, nil
	}

	logging.FromContext(ctx).Debug().Str("path", l.path).Msg("opening navigation log database")
	db, err := NewConnection(ctx, l.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	l.db = db
	return db, nil
}

// Opened reports whether the database has been opened.
func (l *LazyDB) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file location.
func (l *LazyDB) Path() string {
	return l.path
}

// Close closes the handle if one was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}
