// Package sqlite implements storage.Storage on top of an embedded
// SQLite database. Timestamps are stored as unix milliseconds.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

//go:embed schema.sql
var schema string

type Storage struct {
	logger zerolog.Logger
	db     *sql.DB
}

var _ storage.Storage = (*Storage)(nil)

// Open opens the database at path and makes sure the schema exists.
func Open(ctx context.Context, logger zerolog.Logger, path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is empty")
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// Every connection to :memory: gets its own database, so the single
	// connection must live as long as the pool.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	_, err = db.ExecContext(ctx, schema)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info().
		Str("path", path).
		Msg("opened sqlite db")
	return &Storage{
		logger: logger,
		db:     db,
	}, nil
}

func (s *Storage) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("failed to close sqlite db: %w", err)
	}
	s.logger.Info().Msg("closed sqlite db")
	return nil
}

func isUniqueViolation(err error) bool {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return false
	}
	code := liteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
