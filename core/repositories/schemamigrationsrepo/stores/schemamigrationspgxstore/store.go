package schemamigrationspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/schemamigrationsrepo"
	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// List returns the applied migrations ordered by version, which matches
// the order the runner applied them in.
func (s *Store) List(ctx context.Context) ([]schemamigrationsrepo.SchemaMigration, error) {
	query := `SELECT version, checksum, applied_at, created_at, updated_at
	FROM public.schema_migrations
	ORDER BY version`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[schemamigrationsrepo.SchemaMigration])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
