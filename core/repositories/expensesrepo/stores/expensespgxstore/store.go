package expensespgxstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/expensesrepo"
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

// Create inserts a new Expense.
func (s *Store) Create(ctx context.Context, input expensesrepo.CreateExpense) (expensesrepo.Expense, error) {
	query := `INSERT INTO public.expenses (label, category, amount, spent_on) VALUES (@label, @category, @amount, @spent_on) RETURNING *`

	args := pgx.NamedArgs{
		"label":    input.Label,
		"category": input.Category,
		"amount":   input.Amount,
		"spent_on": input.SpentOn,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return expensesrepo.Expense{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[expensesrepo.Expense])
	if err != nil {
		return expensesrepo.Expense{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Expense records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter expensesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]expensesrepo.Expense, error) {
	query := `SELECT id, label, category, amount, spent_on, created_at FROM public.expenses`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	var wc []string
	if filter.Category != nil {
		wc = append(wc, "category = @filter_category")
		data["filter_category"] = *filter.Category
	}
	if filter.SpentAfter != nil {
		wc = append(wc, "spent_on >= @spent_after")
		data["spent_after"] = *filter.SpentAfter
	}
	if filter.SpentBefore != nil {
		wc = append(wc, "spent_on <= @spent_before")
		data["spent_before"] = *filter.SpentBefore
	}
	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.expenses",
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

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[expensesrepo.Expense])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
