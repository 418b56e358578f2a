package statementspgxstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/statementsrepo"
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

// Create inserts a new StatementEntry.
func (s *Store) Create(ctx context.Context, input statementsrepo.CreateStatementEntry) (statementsrepo.StatementEntry, error) {
	query := `INSERT INTO public.account_statements (entry_date, description, debit, credit) VALUES (@entry_date, @description, @debit, @credit) RETURNING *`

	args := pgx.NamedArgs{
		"entry_date":  input.EntryDate,
		"description": input.Description,
		"debit":       input.Debit,
		"credit":      input.Credit,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return statementsrepo.StatementEntry{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[statementsrepo.StatementEntry])
	if err != nil {
		return statementsrepo.StatementEntry{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves StatementEntry records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter statementsrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]statementsrepo.StatementEntry, error) {
	query := `SELECT id, entry_date, description, debit, credit, created_at FROM public.account_statements`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	var wc []string
	if filter.EntryAfter != nil {
		wc = append(wc, "entry_date >= @entry_after")
		data["entry_after"] = *filter.EntryAfter
	}
	if filter.EntryBefore != nil {
		wc = append(wc, "entry_date <= @entry_before")
		data["entry_before"] = *filter.EntryBefore
	}
	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.account_statements",
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

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[statementsrepo.StatementEntry])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
