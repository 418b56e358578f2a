// Package taskssqlitestore implements the tasks Storer on an embedded
// SQLite database so the dashboard can run without a PostgreSQL server.
// Timestamps are stored as unix milliseconds and due dates as ISO text.
package taskssqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

const dateLayout = time.DateOnly

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

// Create inserts a new Task.
func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	now := time.Now()

	var dueDate sql.NullString
	if input.DueDate != nil {
		dueDate = sql.NullString{String: input.DueDate.UTC().Format(dateLayout), Valid: true}
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, priority, status, due_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.Title,
		input.Description,
		input.Priority,
		tasksrepo.StatusPending,
		dueDate,
		toMillis(now),
		toMillis(now),
	)
	if err != nil {
		return tasksrepo.Task{}, sqlitedb.HandleSqliteError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("last insert id: %w", err)
	}

	return s.Get(ctx, id)
}

// Get retrieves a single Task by ID.
func (s *Store) Get(ctx context.Context, id int64) (tasksrepo.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, priority, status, due_date, created_at, updated_at
		   FROM tasks
		  WHERE id = ?`,
		id,
	)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrTaskNotFound
		}
		return tasksrepo.Task{}, fmt.Errorf("get task row: %w", err)
	}

	return task, nil
}

// List retrieves Task records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter tasksrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]tasksrepo.Task, error) {
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
	applyFilter(filter, &where, &args)

	if page.Cursor != 0 {
		operator := ">"
		if direction == fop.DESC {
			operator = "<"
		}
		where = append(where, fmt.Sprintf(
			"(%[1]s %[2]s (SELECT %[1]s FROM tasks WHERE id = ?) OR (%[1]s = (SELECT %[1]s FROM tasks WHERE id = ?) AND id %[2]s ?))",
			orderColumn, operator,
		))
		args = append(args, page.Cursor, page.Cursor, page.Cursor)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, title, description, priority, status, due_date, created_at, updated_at FROM tasks`)
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

	var tasks []tasksrepo.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}

	return tasks, nil
}

// Update modifies an existing Task.
func (s *Store) Update(ctx context.Context, id int64, input tasksrepo.UpdateTask) error {
	var fields []string
	var args []any

	if input.Title != nil {
		fields = append(fields, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Description != nil {
		fields = append(fields, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Priority != nil {
		fields = append(fields, "priority = ?")
		args = append(args, *input.Priority)
	}
	if input.Status != nil {
		fields = append(fields, "status = ?")
		args = append(args, *input.Status)
	}
	if input.DueDate != nil {
		fields = append(fields, "due_date = ?")
		args = append(args, input.DueDate.UTC().Format(dateLayout))
	}

	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	fields = append(fields, "updated_at = ?")
	args = append(args, toMillis(time.Now()))
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = ?`, strings.Join(fields, ", "))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return sqlitedb.HandleSqliteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return tasksrepo.ErrTaskNotFound
	}

	return nil
}

// Delete removes a Task.
func (s *Store) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return sqlitedb.HandleSqliteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return tasksrepo.ErrTaskNotFound
	}

	return nil
}

// Stats returns the status counts in a single scan of the table.
func (s *Store) Stats(ctx context.Context) (tasksrepo.TaskStats, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT
			COUNT(*),
			COUNT(CASE WHEN status = 'Completed' THEN 1 END),
			COUNT(CASE WHEN status = 'Pending' THEN 1 END),
			COUNT(CASE WHEN status = 'In Progress' THEN 1 END)
		 FROM tasks`,
	)

	var stats tasksrepo.TaskStats
	if err := row.Scan(&stats.Total, &stats.Completed, &stats.Pending, &stats.InProgress); err != nil {
		return tasksrepo.TaskStats{}, fmt.Errorf("scan task stats: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (tasksrepo.Task, error) {
	var task tasksrepo.Task
	var description sql.NullString
	var dueDate sql.NullString
	var createdAt int64
	var updatedAt int64

	err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.Priority,
		&task.Status,
		&dueDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return tasksrepo.Task{}, err
	}

	if description.Valid {
		task.Description = &description.String
	}
	if dueDate.Valid {
		parsed, err := time.ParseInLocation(dateLayout, dueDate.String, time.UTC)
		if err != nil {
			return tasksrepo.Task{}, fmt.Errorf("parse due date %q: %w", dueDate.String, err)
		}
		task.DueDate = &parsed
	}
	task.CreatedAt = fromMillis(createdAt)
	task.UpdatedAt = fromMillis(updatedAt)

	return task, nil
}

func applyFilter(filter tasksrepo.Filter, where *[]string, args *[]any) {
	if filter.Status != nil {
		*where = append(*where, "status = ?")
		*args = append(*args, *filter.Status)
	}
	if filter.Priority != nil {
		*where = append(*where, "priority = ?")
		*args = append(*args, *filter.Priority)
	}
	if filter.DueBefore != nil {
		*where = append(*where, "due_date <= ?")
		*args = append(*args, filter.DueBefore.UTC().Format(dateLayout))
	}
	if filter.DueAfter != nil {
		*where = append(*where, "due_date >= ?")
		*args = append(*args, filter.DueAfter.UTC().Format(dateLayout))
	}
	if filter.CreatedAtBefore != nil {
		*where = append(*where, "created_at <= ?")
		*args = append(*args, toMillis(*filter.CreatedAtBefore))
	}
	if filter.CreatedAtAfter != nil {
		*where = append(*where, "created_at >= ?")
		*args = append(*args, toMillis(*filter.CreatedAtAfter))
	}
}

func orderColumn(field string) (string, error) {
	switch field {
	case "id", "title", "priority", "status", "due_date", "created_at", "updated_at":
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
