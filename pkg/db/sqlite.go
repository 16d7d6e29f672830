// pkg/db/sqlite.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

// NewSQLiteDB initializes and returns a new SQLite database connection at the
// given path (":memory:" for an in-memory database).
func NewSQLiteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite at %q: %w", path, err)
	}

	// SQLite allows a single writer; a one-connection pool also keeps
	// :memory: databases coherent across queries.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite at %q: %w", path, err)
	}

	return db, nil
}
