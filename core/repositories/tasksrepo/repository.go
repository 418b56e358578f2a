// Package tasksrepo manages the personal task list shown on the
// dashboard. Tasks are stored either in PostgreSQL or SQLite depending
// on how the app is configured; both stores satisfy Storer.
package tasksrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Storer defines the complete data storage interface for Task.
type Storer interface {
	repositories.Creator[Task, CreateTask]
	repositories.Getter[Task, int64]
	repositories.Lister[Task, Filter]
	repositories.Updater[int64, UpdateTask]
	repositories.Deleter[int64]

	Stats(ctx context.Context) (TaskStats, error)
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create validates the payload and stores a new task. An empty priority
// falls back to Medium, matching the column default.
func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	if input.Title == "" {
		return Task{}, fmt.Errorf("create task: title is required")
	}
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if !ValidPriority(input.Priority) {
		return Task{}, fmt.Errorf("create task: invalid priority %q", input.Priority)
	}

	task, err := r.storer.Create(ctx, input)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "created task", "task_id", task.ID)
	return task, nil
}

// Get returns a single task by id.
func (r *Repository) Get(ctx context.Context, id int64) (Task, error) {
	task, err := r.storer.Get(ctx, id)
	if err != nil {
		return Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return task, nil
}

// List returns tasks matching the filter, ordered and paginated.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Task, error) {
	tasks, err := r.storer.List(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update to an existing task.
func (r *Repository) Update(ctx context.Context, id int64, updates UpdateTask) error {
	if updates.Priority != nil && !ValidPriority(*updates.Priority) {
		return fmt.Errorf("update task %d: invalid priority %q", id, *updates.Priority)
	}
	if updates.Status != nil && !ValidStatus(*updates.Status) {
		return fmt.Errorf("update task %d: invalid status %q", id, *updates.Status)
	}
	if updates.Title != nil && *updates.Title == "" {
		return fmt.Errorf("update task %d: title cannot be empty", id)
	}

	if err := r.storer.Update(ctx, id, updates); err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

// UpdateStatus moves a task to a new status without touching any other
// field. This is the quick toggle on the dashboard list.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !ValidStatus(status) {
		return fmt.Errorf("update task %d status: invalid status %q", id, status)
	}

	if err := r.storer.Update(ctx, id, UpdateTask{Status: &status}); err != nil {
		return fmt.Errorf("update task %d status: %w", id, err)
	}

	r.log.InfoContext(ctx, "updated task status", "task_id", id, "status", status)
	return nil
}

// Delete removes a task. Deleting a missing task returns ErrTaskNotFound.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	r.log.InfoContext(ctx, "deleted task", "task_id", id)
	return nil
}

// Stats returns the status counts for the dashboard header.
func (r *Repository) Stats(ctx context.Context) (TaskStats, error) {
	stats, err := r.storer.Stats(ctx)
	if err != nil {
		return TaskStats{}, fmt.Errorf("task stats: %w", err)
	}
	return stats, nil
}
