package categoriespgxstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo"
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

// Create inserts a new Category. Duplicate names surface as
// postgresdb.ErrDBDuplicatedEntry.
func (s *Store) Create(ctx context.Context, input categoriesrepo.CreateCategory) (categoriesrepo.Category, error) {
	query := `INSERT INTO public.categories (name, color) VALUES (@name, @color) RETURNING *`

	args := pgx.NamedArgs{
		"name":  input.Name,
		"color": input.Color,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return categoriesrepo.Category{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[categoriesrepo.Category])
	if err != nil {
		return categoriesrepo.Category{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Category records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter categoriesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]categoriesrepo.Category, error) {
	query := `SELECT id, name, color, created_at FROM public.categories`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	var wc []string
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
		TableName:  "public.categories",
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

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[categoriesrepo.Category])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}
