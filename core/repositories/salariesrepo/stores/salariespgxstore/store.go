package salariespgxstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/salariesrepo"
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

// Create inserts a new Salary. A missing employee surfaces as
// postgresdb.ErrForeignKeyViolation.
func (s *Store) Create(ctx context.Context, input salariesrepo.CreateSalary) (salariesrepo.Salary, error) {
	query := `INSERT INTO public.salaries (employee_id, period, gross, deductions, net, is_paid, paid_on) VALUES (@employee_id, @period, @gross, @deductions, @net, @is_paid, @paid_on) RETURNING *`

	args := pgx.NamedArgs{
		"employee_id": input.EmployeeID,
		"period":      input.Period,
		"gross":       input.Gross,
		"deductions":  input.Deductions,
		"net":         input.Net,
		"is_paid":     input.IsPaid,
		"paid_on":     input.PaidOn,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return salariesrepo.Salary{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[salariesrepo.Salary])
	if err != nil {
		return salariesrepo.Salary{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Salary records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter salariesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]salariesrepo.Salary, error) {
	query := `SELECT id, employee_id, period, gross, deductions, net, is_paid, paid_on, created_at FROM public.salaries`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	var wc []string
	if filter.EmployeeID != nil {
		wc = append(wc, "employee_id = @filter_employee_id")
		data["filter_employee_id"] = *filter.EmployeeID
	}
	if filter.Period != nil {
		wc = append(wc, "period = @filter_period")
		data["filter_period"] = *filter.Period
	}
	if filter.IsPaid != nil {
		wc = append(wc, "is_paid = @filter_is_paid")
		data["filter_is_paid"] = *filter.IsPaid
	}
	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.salaries",
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

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[salariesrepo.Salary])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
