package reportspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/reportsrepo"
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

// Summary aggregates the ledger in one round trip. COALESCE keeps the
// sums at zero while the tables are empty.
func (s *Store) Summary(ctx context.Context) (reportsrepo.FinancialSummary, error) {
	query := `SELECT
		COALESCE((SELECT SUM(total) FROM public.invoices WHERE is_paid), 0) AS invoice_income,
		COALESCE((SELECT SUM(amount) FROM public.expenses), 0) AS expense_total,
		COALESCE((SELECT SUM(amount) FROM public.withdrawals), 0) AS withdrawal_total,
		COALESCE((SELECT SUM(net) FROM public.salaries WHERE is_paid), 0) AS salary_total`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return reportsrepo.FinancialSummary{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[reportsrepo.FinancialSummary])
	if err != nil {
		return reportsrepo.FinancialSummary{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}
