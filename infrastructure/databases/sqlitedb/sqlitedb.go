// Package sqlitedb provides the embedded datastore used when the task
// dashboard runs without a PostgreSQL server.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jrazmi/shopkeep/sdk/environment"
)

// Set of error variables for CRUD operations.
var (
	ErrDBNotFound        = sql.ErrNoRows
	ErrDBDuplicatedEntry = errors.New("duplicated entry")
)

// Options represents the exportable datastore configuration
type Options struct {
	Path string `env:"SQLITE_PATH" default:"shopkeep.db"`
}

// Option is a function that configures the datastore options
type Option func(*Options)

// WithPath overrides the database file path
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// NewFromEnv opens the datastore using environment variables
func NewFromEnv(prefix string, opts ...Option) (*sql.DB, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sqlite config: %w", err)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return Open(cfg.Path)
}

// Open opens the database file, creating it when missing.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// StatusCheck returns nil if it can successfully talk to the database
func StatusCheck(ctx context.Context, db *sql.DB) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second)
		defer cancel()
	}
	return db.PingContext(ctx)
}

// HandleSqliteError converts driver errors to application errors
func HandleSqliteError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return ErrDBDuplicatedEntry
		}
	}

	message := strings.ToLower(err.Error())
	if strings.Contains(message, "unique constraint failed") {
		return ErrDBDuplicatedEntry
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrDBNotFound
	}

	return err
}
