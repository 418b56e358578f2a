package receivablespgxstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/receivablesrepo"
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

// Create inserts a new Receivable.
func (s *Store) Create(ctx context.Context, input receivablesrepo.CreateReceivable) (receivablesrepo.Receivable, error) {
	query := `INSERT INTO public.account_receivables (debtor_name, reference, amount, due_on, is_collected) VALUES (@debtor_name, @reference, @amount, @due_on, @is_collected) RETURNING *`

	args := pgx.NamedArgs{
		"debtor_name":  input.DebtorName,
		"reference":    input.Reference,
		"amount":       input.Amount,
		"due_on":       input.DueOn,
		"is_collected": input.IsCollected,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return receivablesrepo.Receivable{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[receivablesrepo.Receivable])
	if err != nil {
		return receivablesrepo.Receivable{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Receivable records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter receivablesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]receivablesrepo.Receivable, error) {
	query := `SELECT id, debtor_name, reference, amount, due_on, is_collected, created_at FROM public.account_receivables`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	var wc []string
	if filter.IsCollected != nil {
		wc = append(wc, "is_collected = @filter_is_collected")
		data["filter_is_collected"] = *filter.IsCollected
	}
	if filter.DebtorName != nil {
		wc = append(wc, "debtor_name = @filter_debtor_name")
		data["filter_debtor_name"] = *filter.DebtorName
	}
	if filter.DueAfter != nil {
		wc = append(wc, "due_on >= @due_after")
		data["due_after"] = *filter.DueAfter
	}
	if filter.DueBefore != nil {
		wc = append(wc, "due_on <= @due_before")
		data["due_before"] = *filter.DueBefore
	}
	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.account_receivables",
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

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[receivablesrepo.Receivable])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
