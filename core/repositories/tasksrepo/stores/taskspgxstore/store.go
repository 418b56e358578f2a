package taskspgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
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

// Create inserts a new Task.
func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	query := `INSERT INTO public.tasks (title, description, priority, due_date) VALUES (@title, @description, @priority, @due_date) RETURNING *`

	args := pgx.NamedArgs{
		"title":       input.Title,
		"description": input.Description,
		"priority":    input.Priority,
		"due_date":    input.DueDate,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Get retrieves a single Task by ID.
func (s *Store) Get(ctx context.Context, id int64) (tasksrepo.Task, error) {
	query := `SELECT id, title, description, priority, status, due_date, created_at, updated_at FROM public.tasks WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrTaskNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves Task records with filtering, ordering, and pagination.
func (s *Store) List(ctx context.Context, filter tasksrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]tasksrepo.Task, error) {
	query := `SELECT id, title, description, priority, status, due_date, created_at, updated_at FROM public.tasks`

	buf := bytes.NewBufferString(query)
	data := pgx.NamedArgs{}

	applyFilter(filter, data, buf)

	cursorConfig := postgresdb.Int64CursorConfig{
		Cursor:     page.Cursor,
		OrderField: orderBy.Field,
		PKField:    "id",
		TableName:  "public.tasks",
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

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

// Update modifies an existing Task.
func (s *Store) Update(ctx context.Context, id int64, input tasksrepo.UpdateTask) error {
	var fields []string
	data := pgx.NamedArgs{
		"id": id,
	}

	if input.Title != nil {
		fields = append(fields, "title = @title")
		data["title"] = input.Title
	}
	if input.Description != nil {
		fields = append(fields, "description = @description")
		data["description"] = input.Description
	}
	if input.Priority != nil {
		fields = append(fields, "priority = @priority")
		data["priority"] = input.Priority
	}
	if input.Status != nil {
		fields = append(fields, "status = @status")
		data["status"] = input.Status
	}
	if input.DueDate != nil {
		fields = append(fields, "due_date = @due_date")
		data["due_date"] = input.DueDate
	}

	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	// Handle updated_at specially - always set it
	fields = append(fields, "updated_at = @updated_at")
	data["updated_at"] = time.Now()

	query := fmt.Sprintf(`UPDATE public.tasks SET %s WHERE id = @id`, strings.Join(fields, ", "))

	result, err := s.pool.Exec(ctx, query, data)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if result.RowsAffected() == 0 {
		return tasksrepo.ErrTaskNotFound
	}

	return nil
}

// Delete removes a Task.
func (s *Store) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM public.tasks WHERE id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}

	result, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if result.RowsAffected() == 0 {
		return tasksrepo.ErrTaskNotFound
	}

	return nil
}

// Stats returns the status counts in a single scan of the table.
func (s *Store) Stats(ctx context.Context) (tasksrepo.TaskStats, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'Completed' THEN 1 END) AS completed,
		COUNT(CASE WHEN status = 'Pending' THEN 1 END) AS pending,
		COUNT(CASE WHEN status = 'In Progress' THEN 1 END) AS in_progress
	FROM public.tasks`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return tasksrepo.TaskStats{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.TaskStats])
	if err != nil {
		return tasksrepo.TaskStats{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

func applyFilter(filter tasksrepo.Filter, data pgx.NamedArgs, buf *bytes.Buffer) {
	var wc []string

	if filter.Status != nil {
		wc = append(wc, "status = @filter_status")
		data["filter_status"] = *filter.Status
	}
	if filter.Priority != nil {
		wc = append(wc, "priority = @filter_priority")
		data["filter_priority"] = *filter.Priority
	}
	if filter.DueBefore != nil {
		wc = append(wc, "due_date <= @due_before")
		data["due_before"] = *filter.DueBefore
	}
	if filter.DueAfter != nil {
		wc = append(wc, "due_date >= @due_after")
		data["due_after"] = *filter.DueAfter
	}
	if filter.CreatedAtBefore != nil {
		wc = append(wc, "created_at <= @created_at_before")
		data["created_at_before"] = *filter.CreatedAtBefore
	}
	if filter.CreatedAtAfter != nil {
		wc = append(wc, "created_at >= @created_at_after")
		data["created_at_after"] = *filter.CreatedAtAfter
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
