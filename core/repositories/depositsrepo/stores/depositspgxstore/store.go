package depositspgxstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/depositsrepo"
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

// Create inserts a new Deposit.
func (s *Store) Create(ctx context.Context, input depositsrepo.CreateDeposit) (depositsrepo.Deposit, error) {
	query := `INSERT INTO public.deposits (reference, method, amount, deposited_on) VALUES (@reference, @method, @amount, @deposited_on) RETURNING *`

	args := pgx.NamedArgs{
		"reference":    input.Reference,
		"method":       input.Method,
		"amount":       input.Amount,
		"deposited_on": input.DepositedOn,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return depositsrepo.Deposit{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[depositsrepo.Deposit])
	if err != nil {
		return depositsrepo.Deposit{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Deposit records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter depositsrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]depositsrepo.Deposit, error) {
	query := `SELECT id, reference, method, amount, deposited_on, created_at FROM public.deposits`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	var wc []string
	if filter.Method != nil {
		wc = append(wc, "method = @filter_method")
		data["filter_method"] = *filter.Method
	}
	if filter.DepositedAfter != nil {
		wc = append(wc, "deposited_on >= @deposited_after")
		data["deposited_after"] = *filter.DepositedAfter
	}
	if filter.DepositedBefore != nil {
		wc = append(wc, "deposited_on <= @deposited_before")
		data["deposited_before"] = *filter.DepositedBefore
	}
	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.deposits",
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

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[depositsrepo.Deposit])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
