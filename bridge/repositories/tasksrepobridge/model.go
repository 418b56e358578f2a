package tasksrepobridge

import (
	"fmt"

	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
)

// Task is the wire representation of a task. Dates render as
// YYYY-MM-DD, timestamps as RFC3339.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TaskStats mirrors the dashboard header counters.
type TaskStats struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
}

// CreateTaskInput is the POST payload.
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

// Validate implements the web validator interface.
func (i CreateTaskInput) Validate() error {
	if i.Title == "" {
		return fmt.Errorf("title is required")
	}
	if i.Priority != "" && !tasksrepo.ValidPriority(i.Priority) {
		return fmt.Errorf("invalid priority %q", i.Priority)
	}
	return nil
}

// UpdateTaskInput is the PUT payload. Absent fields stay untouched.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

// Validate implements the web validator interface.
func (i UpdateTaskInput) Validate() error {
	if i.Title != nil && *i.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if i.Priority != nil && !tasksrepo.ValidPriority(*i.Priority) {
		return fmt.Errorf("invalid priority %q", *i.Priority)
	}
	if i.Status != nil && !tasksrepo.ValidStatus(*i.Status) {
		return fmt.Errorf("invalid status %q", *i.Status)
	}
	return nil
}

// UpdateTaskStatusInput is the status toggle payload.
type UpdateTaskStatusInput struct {
	Status string `json:"status"`
}

// Validate implements the web validator interface.
func (i UpdateTaskStatusInput) Validate() error {
	if !tasksrepo.ValidStatus(i.Status) {
		return fmt.Errorf("invalid status %q", i.Status)
	}
	return nil
}
