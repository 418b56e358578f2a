// Package schemamigrationsrepo reads the migration history the runner
// records in schema_migrations. It is read only; the runner itself owns
// the writes.
package schemamigrationsrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Storer defines the data storage interface for migration history.
type Storer interface {
	List(ctx context.Context) ([]SchemaMigration, error)
}

// Repository provides access to applied migrations.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new schema migrations repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns every applied migration in version order.
func (r *Repository) List(ctx context.Context) ([]SchemaMigration, error) {
	migrations, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schema migrations: %w", err)
	}

	return migrations, nil
}
