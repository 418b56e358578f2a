package employeespgxstore

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/employeesrepo"
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

// Create inserts a new Employee.
func (s *Store) Create(ctx context.Context, input employeesrepo.CreateEmployee) (employeesrepo.Employee, error) {
	query := `INSERT INTO public.employees (name, position, phone, monthly_salary, is_active, joined_on) VALUES (@name, @position, @phone, @monthly_salary, @is_active, @joined_on) RETURNING *`

	args := pgx.NamedArgs{
		"name":           input.Name,
		"position":       input.Position,
		"phone":          input.Phone,
		"monthly_salary": input.MonthlySalary,
		"is_active":      input.IsActive,
		"joined_on":      input.JoinedOn,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return employeesrepo.Employee{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[employeesrepo.Employee])
	if err != nil {
		return employeesrepo.Employee{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Get retrieves a single Employee by ID.
func (s *Store) Get(ctx context.Context, id int64) (employeesrepo.Employee, error) {
	query := `SELECT id, name, position, phone, monthly_salary, is_active, joined_on, created_at FROM public.employees WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return employeesrepo.Employee{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[employeesrepo.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employeesrepo.Employee{}, employeesrepo.ErrEmployeeNotFound
		}
		return employeesrepo.Employee{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Employee records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter employeesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]employeesrepo.Employee, error) {
	query := `SELECT id, name, position, phone, monthly_salary, is_active, joined_on, created_at FROM public.employees`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	var wc []string
	if filter.IsActive != nil {
		wc = append(wc, "is_active = @filter_is_active")
		data["filter_is_active"] = *filter.IsActive
	}
	if filter.Name != nil {
		wc = append(wc, "name = @filter_name")
		data["filter_name"] = *filter.Name
	}
	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.employees",
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

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[employeesrepo.Employee])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
