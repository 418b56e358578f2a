// app/tooling/commands/status.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/shopkeep/core/repositories/schemamigrationsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/schemamigrationsrepo/stores/schemamigrationspgxstore"
	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Status prints the applied migration history.
func Status(ctx context.Context, log *logger.Logger, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	repo := schemamigrationsrepo.NewRepository(log, schemamigrationspgxstore.NewStore(log, pool))

	migrations, err := repo.List(ctx)
	if err != nil {
		// A missing tracking table just means migrate has never run.
		if errors.Is(err, postgresdb.ErrUndefinedTable) {
			fmt.Println("no migrations applied (schema_migrations does not exist yet)")
			return nil
		}
		return fmt.Errorf("list migrations: %w", err)
	}

	if len(migrations) == 0 {
		fmt.Println("no migrations applied")
		return nil
	}

	for _, m := range migrations {
		fmt.Printf("  %s  applied %s  checksum %.8s\n", m.Version, m.AppliedAt.Format(time.RFC3339), m.Checksum)
	}
	fmt.Printf("%d migrations applied\n", len(migrations))

	return nil
}
