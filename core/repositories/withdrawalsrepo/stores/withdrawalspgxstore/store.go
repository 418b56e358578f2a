package withdrawalspgxstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/withdrawalsrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
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

// Create inserts a new Withdrawal.
func (s *Store) Create(ctx context.Context, input withdrawalsrepo.CreateWithdrawal) (withdrawalsrepo.Withdrawal, error) {
	query := `INSERT INTO public.withdrawals (purpose, amount, withdrawn_on) VALUES (@purpose, @amount, @withdrawn_on) RETURNING *`

	args := pgx.NamedArgs{
		"purpose":      input.Purpose,
		"amount":       input.Amount,
		"withdrawn_on": input.WithdrawnOn,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return withdrawalsrepo.Withdrawal{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[withdrawalsrepo.Withdrawal])
	if err != nil {
		return withdrawalsrepo.Withdrawal{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Withdrawal records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter withdrawalsrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]withdrawalsrepo.Withdrawal, error) {
	query := `SELECT id, purpose, amount, withdrawn_on, created_at FROM public.withdrawals`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	var wc []string
	if filter.WithdrawnAfter != nil {
		wc = append(wc, "withdrawn_on >= @withdrawn_after")
		data["withdrawn_after"] = *filter.WithdrawnAfter
	}
	if filter.WithdrawnBefore != nil {
		wc = append(wc, "withdrawn_on <= @withdrawn_before")
		data["withdrawn_before"] = *filter.WithdrawnBefore
	}
	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.withdrawals",
		Direction:  orderBy.Direction,
	}
	if err := postgresdb.ApplyInt64CursorPagination(buf, data, cursorConfig, false); err != nil {
		return nil, err
	}

	if err := postgresdb.AddOrderByClause(buf, orderBy.Field, "id", orderBy.Direction, false); err != nil {
		return nil, err
	}

	postgresdb.AddLimitClause(page.Limit, data, buf)

	rows, err := s.pool.Query(ctx, buf.String(), data)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[withdrawalsrepo.Withdrawal])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
