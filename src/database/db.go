package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable is returned by all queries when the store could not be
// reached at startup. Requests fail individually; the process stays up.
var ErrUnavailable = errors.New("database unavailable")

// Database holds the PostgreSQL connection pool. A Database with a nil pool
// is valid: every operation fails with ErrUnavailable.
type Database struct {
	pool *pgxpool.Pool
}

// New creates a database connection pool and applies schema.sql.
func New(ctx context.Context, databaseURL string) (*Database, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &Database{pool: pool}

	if err := db.initializeSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// NewUnavailable returns a Database whose every query fails with
// ErrUnavailable. Used when the store is unreachable at startup.
func NewUnavailable() *Database {
	return &Database{}
}

// NewFromPool wraps an existing pool (used by tests).
func NewFromPool(pool *pgxpool.Pool) *Database {
	return &Database{pool: pool}
}

// Close closes the connection pool.
func (db *Database) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// initializeSchema reads and executes schema.sql.
func (db *Database) initializeSchema(ctx context.Context) error {
	schemaPath := "schema.sql"

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		content, err = os.ReadFile(filepath.Join("/", schemaPath))
		if err != nil {
			return fmt.Errorf("failed to read schema.sql: %w", err)
		}
	}

	if _, err := db.pool.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Health checks if the database is reachable.
func (db *Database) Health(ctx context.Context) error {
	if db == nil || db.pool == nil {
		return ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.pool.Ping(ctx)
}

// errRow satisfies pgx.Row for the unavailable-store case.
type errRow struct{ err error }

func (r errRow) Scan(dest ...any) error { return r.err }

// QueryRow executes a query and returns a single row.
func (db *Database) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if db == nil || db.pool == nil {
		return errRow{err: ErrUnavailable}
	}
	return db.pool.QueryRow(ctx, sql, args...)
}

// Query executes a query and returns rows.
func (db *Database) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if db == nil || db.pool == nil {
		return nil, ErrUnavailable
	}
	return db.pool.Query(ctx, sql, args...)
}

// Exec executes a statement and returns its command tag.
func (db *Database) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if db == nil || db.pool == nil {
		return pgconn.CommandTag{}, ErrUnavailable
	}
	return db.pool.Exec(ctx, sql, args...)
}
