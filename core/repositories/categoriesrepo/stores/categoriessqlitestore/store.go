// Package categoriessqlitestore implements the categories Storer on the
// embedded SQLite database.
package categoriessqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

type Store struct {
	log *logger.Logger
	db  *sql.DB
}

func NewStore(log *logger.Logger, db *sql.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Create inserts a new Category. Duplicate names surface as
// sqlitedb.ErrDBDuplicatedEntry.
func (s *Store) Create(ctx context.Context, input categoriesrepo.CreateCategory) (categoriesrepo.Category, error) {
	now := time.Now()

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, color, created_at) VALUES (?, ?, ?)`,
		input.Name,
		input.Color,
		toMillis(now),
	)
	if err != nil {
		return categoriesrepo.Category{}, sqlitedb.HandleSqliteError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return categoriesrepo.Category{}, fmt.Errorf("last insert id: %w", err)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, color, created_at FROM categories WHERE id = ?`, id)

	return scanCategory(row)
}

// List retrieves Category records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter categoriesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]categoriesrepo.Category, error) {
	orderColumn, err := orderColumn(orderBy.Field)
	if err != nil {
		return nil, err
	}
	direction, err := orderDirection(orderBy.Direction)
	if err != nil {
		return nil, err
	}

	var where []string
	var args []any
	if filter.Name != nil {
		where = append(where, "name = ?")
		args = append(args, *filter.Name)
	}

	if page.Cursor != 0 {
		operator := ">"
		if direction == fop.DESC {
			operator = "<"
		}
		where = append(where, fmt.Sprintf(
			"(%[1]s %[2]s (SELECT %[1]s FROM categories WHERE id = ?) OR (%[1]s = (SELECT %[1]s FROM categories WHERE id = ?) AND id %[2]s ?))",
			orderColumn, operator,
		))
		args = append(args, page.Cursor, page.Cursor, page.Cursor)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, name, color, created_at FROM categories`)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	fmt.Fprintf(&sb, " ORDER BY %s %s", orderColumn, direction)
	if orderColumn != "id" {
		fmt.Fprintf(&sb, ", id %s", direction)
	}
	sb.WriteString(" LIMIT ?")
	args = append(args, page.Limit)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, sqlitedb.HandleSqliteError(err)
	}
	defer rows.Close()

	var categories []categoriesrepo.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (categoriesrepo.Category, error) {
	var category categoriesrepo.Category
	var createdAt int64

	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Color,
		&createdAt,
	)
	if err != nil {
		return categoriesrepo.Category{}, err
	}

	category.CreatedAt = fromMillis(createdAt)
	return category, nil
}

func orderColumn(field string) (string, error) {
	switch field {
	case "id", "name", "created_at":
		return field, nil
	}
	return "", fmt.Errorf("invalid order field name: %s", field)
}

func orderDirection(direction string) (string, error) {
	switch direction {
	case fop.ASC, fop.DESC:
		return direction, nil
	}
	return "", fmt.Errorf("invalid order direction: %s", direction)
}
