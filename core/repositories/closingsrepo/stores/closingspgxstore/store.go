package closingspgxstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/closingsrepo"
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

// Create inserts a new Closing. A duplicate closing date surfaces as
// postgresdb.ErrDBDuplicatedEntry.
func (s *Store) Create(ctx context.Context, input closingsrepo.CreateClosing) (closingsrepo.Closing, error) {
	query := `INSERT INTO public.daily_closings (closing_date, cash_total, bank_total, sales_total, notes) VALUES (@closing_date, @cash_total, @bank_total, @sales_total, @notes) RETURNING *`

	args := pgx.NamedArgs{
		"closing_date": input.ClosingDate,
		"cash_total":   input.CashTotal,
		"bank_total":   input.BankTotal,
		"sales_total":  input.SalesTotal,
		"notes":        input.Notes,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return closingsrepo.Closing{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[closingsrepo.Closing])
	if err != nil {
		return closingsrepo.Closing{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Closing records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter closingsrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]closingsrepo.Closing, error) {
	query := `SELECT id, closing_date, cash_total, bank_total, sales_total, notes, created_at FROM public.daily_closings`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	var wc []string
	if filter.ClosedAfter != nil {
		wc = append(wc, "closing_date >= @closed_after")
		data["closed_after"] = *filter.ClosedAfter
	}
	if filter.ClosedBefore != nil {
		wc = append(wc, "closing_date <= @closed_before")
		data["closed_before"] = *filter.ClosedBefore
	}
	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.daily_closings",
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

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[closingsrepo.Closing])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
