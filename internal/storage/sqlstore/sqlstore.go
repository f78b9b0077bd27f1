// Package sqlstore provides a database/sql implementation of the storage.Store
// interface for SQLite and PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver registered as "pgx"
	_ "modernc.org/sqlite"             // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/flightlog/internal/storage"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Ensure SQLStore implements storage.Store
var _ storage.Store = (*SQLStore)(nil)

// SQLStore implements storage.Store on top of database/sql.
type SQLStore struct {
	db     *sql.DB
	sb     sq.StatementBuilderType
	driver string
}

// New opens a SQLite database at dbPath.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLStore, error) {
	return Open(context.Background(), DriverSQLite, dbPath)
}

// Open connects to the database described by driver and dsn and migrates it
// to the latest schema. For SQLite the dsn is a file path.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	var (
		db          *sql.DB
		placeholder sq.PlaceholderFormat
		err         error
	)

	switch driver {
	case DriverSQLite:
		db, err = openSQLite(dsn)
		placeholder = sq.Question
	case DriverPostgres:
		db, err = sql.Open("pgx", dsn)
		placeholder = sq.Dollar
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(ctx, db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	return &SQLStore{
		db:     db,
		sb:     sq.StatementBuilder.PlaceholderFormat(placeholder),
		driver: driver,
	}, nil
}

func openSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		// Create parent directory if it doesn't exist
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	return sql.Open("sqlite", dsn)
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// exec runs a built statement and returns the number of affected rows.
func (s *SQLStore) exec(ctx context.Context, runner sq.ExecerContext, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}
	res, err := runner.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Ping verifies the database is reachable.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
