package postgresdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/jrazmi/shopkeep/sdk/environment"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
)

// PostgreSQL error codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	undefinedTable      = "42P01"
)

// Set of error variables for CRUD operations.
var (
	ErrDBNotFound          = pgx.ErrNoRows
	ErrDBDuplicatedEntry   = errors.New("duplicated entry")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrUndefinedTable      = errors.New("undefined table")
)

type Pool = pgxpool.Pool

// Options represents the exportable database configuration. The DB_* keys
// and their fallbacks match what the dashboards have always read.
type Options struct {
	Host        string        `env:"DB_HOST" default:"localhost"`
	Name        string        `env:"DB_NAME" default:"taskmanager"`
	User        string        `env:"DB_USER" default:"postgres"`
	Password    string        `env:"DB_PASSWORD" default:"password"`
	Port        int           `env:"DB_PORT" default:"5432"`
	SSLMode     string        `env:"DB_SSL_MODE" default:"disable"`
	MaxConns    int           `env:"DB_MAX_CONNS" default:"25"`
	MinConns    int           `env:"DB_MIN_CONNS" default:"5"`
	MaxLifetime time.Duration `env:"DB_MAX_LIFETIME" default:"1h"`
	MaxIdleTime time.Duration `env:"DB_MAX_IDLE_TIME" default:"30m"`
	HealthCheck time.Duration `env:"DB_HEALTH_CHECK" default:"1m"`
}

// URL assembles the connection string from the discrete settings.
func (o Options) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.User, o.Password),
		Host:   fmt.Sprintf("%s:%d", o.Host, o.Port),
		Path:   o.Name,
	}
	q := url.Values{}
	q.Set("sslmode", o.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// options holds the internal runtime configuration
type options struct {
	databaseURL    string
	maxConns       int
	minConns       int
	maxLifetime    time.Duration
	maxIdleTime    time.Duration
	healthCheck    time.Duration
	logger         *slog.Logger
	tracer         pgx.QueryTracer
	connectTimeout time.Duration
	logQueries     bool
}

// Option is a function that configures the database options
type Option func(*options)

// WithLogger sets a custom logger for the database
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer sets a custom query tracer
func WithTracer(tracer pgx.QueryTracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithDatabaseURL overrides the assembled connection string
func WithDatabaseURL(url string) Option {
	return func(o *options) {
		o.databaseURL = url
	}
}

// WithMaxConns sets the maximum number of connections
func WithMaxConns(max int) Option {
	return func(o *options) {
		o.maxConns = max
	}
}

// WithMinConns sets the minimum number of connections
func WithMinConns(min int) Option {
	return func(o *options) {
		o.minConns = min
	}
}

// WithMaxLifetime sets the maximum connection lifetime
func WithMaxLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		o.maxLifetime = lifetime
	}
}

// WithMaxIdleTime sets the maximum idle time for connections
func WithMaxIdleTime(idleTime time.Duration) Option {
	return func(o *options) {
		o.maxIdleTime = idleTime
	}
}

// WithHealthCheck sets the health check period
func WithHealthCheck(period time.Duration) Option {
	return func(o *options) {
		o.healthCheck = period
	}
}

// WithConnectTimeout sets the connection timeout
func WithConnectTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.connectTimeout = timeout
	}
}

// WithLogQueries enables or disables query logging
func WithLogQueries(enable bool) Option {
	return func(o *options) {
		o.logQueries = enable
	}
}

// NewFromEnv creates a new database connection using environment variables
func NewFromEnv(prefix string, opts ...Option) (*pgxpool.Pool, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	return newDatabase(cfg, opts...)
}

// NewTestDB creates a test database connection
func NewTestDB(conn string, opts ...Option) (*pgxpool.Pool, error) {
	cfg := Options{
		MaxConns:    25,
		MinConns:    5,
		MaxLifetime: time.Hour,
		MaxIdleTime: time.Hour,
		HealthCheck: time.Hour,
	}
	opts = append([]Option{WithDatabaseURL(conn)}, opts...)
	return newDatabase(cfg, opts...)
}

// newDatabase creates a new database connection with given config and applies options
func newDatabase(cfg Options, opts ...Option) (*pgxpool.Pool, error) {
	internalOpts := &options{
		databaseURL:    cfg.URL(),
		maxConns:       cfg.MaxConns,
		minConns:       cfg.MinConns,
		maxLifetime:    cfg.MaxLifetime,
		maxIdleTime:    cfg.MaxIdleTime,
		healthCheck:    cfg.HealthCheck,
		connectTimeout: 10 * time.Second,
		logQueries:     false,
	}

	// Apply functional options to override config
	for _, opt := range opts {
		opt(internalOpts)
	}

	if internalOpts.logger == nil {
		internalOpts.logger = slog.Default()
	}

	if internalOpts.tracer == nil && internalOpts.logQueries {
		internalOpts.tracer = NewMultiQueryTracer(
			NewLoggingQueryTracer(internalOpts.logger),
		)
	}

	return openDatabase(internalOpts)
}

// openDatabase creates the actual database connection
func openDatabase(opts *options) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(opts.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	poolConfig.MaxConns = int32(opts.maxConns)
	poolConfig.MinConns = int32(opts.minConns)
	poolConfig.MaxConnLifetime = opts.maxLifetime
	poolConfig.MaxConnIdleTime = opts.maxIdleTime
	poolConfig.HealthCheckPeriod = opts.healthCheck

	if opts.tracer != nil {
		poolConfig.ConnConfig.Tracer = opts.tracer
	}

	// NUMERIC columns scan into shopspring decimals
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

// StatusCheck returns nil if it can successfully talk to the database
func StatusCheck(ctx context.Context, pool *pgxpool.Pool) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second)
		defer cancel()
	}

	return pool.Ping(ctx)
}

// HandlePgError converts PostgreSQL errors to application errors
func HandlePgError(err error) error {
	if err == nil {
		return nil
	}

	var pqerr *pgconn.PgError
	if errors.As(err, &pqerr) {
		switch pqerr.Code {
		case undefinedTable:
			return ErrUndefinedTable
		case uniqueViolation:
			return ErrDBDuplicatedEntry
		case foreignKeyViolation:
			return ErrForeignKeyViolation
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrDBNotFound
	}

	return err
}

// Example usage:
//
// Environment variables (DB_HOST, DB_NAME, DB_USER, DB_PASSWORD, DB_PORT):
//   pool, err := postgresdb.NewFromEnv("")
//
// With additional options:
//   pool, err := postgresdb.NewFromEnv("",
//       postgresdb.WithLogger(myLogger),
//       postgresdb.WithMaxConns(50),
//       postgresdb.WithLogQueries(true),
//   )
//
// Test database:
//   pool, err := postgresdb.NewTestDB(connString,
//       postgresdb.WithLogger(testLogger),
//   )
