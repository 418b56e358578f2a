package tasksrepo

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// Priorities accepted for a task.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Statuses a task moves through.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// ValidPriority reports whether p is one of the accepted priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the accepted statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is the main entity type.
type Task struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Priority    string     `db:"priority"`
	Status      string     `db:"status"`
	DueDate     *time.Time `db:"due_date"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// CreateTask contains fields for creating a new task.
type CreateTask struct {
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Priority    string     `db:"priority"`
	DueDate     *time.Time `db:"due_date"`
}

// UpdateTask contains fields for updating an existing task.
// All fields are optional (pointers) to support partial updates.
type UpdateTask struct {
	Title       *string    `db:"title"`
	Description *string    `db:"description"`
	Priority    *string    `db:"priority"`
	Status      *string    `db:"status"`
	DueDate     *time.Time `db:"due_date"`
}

// TaskStats is the dashboard header aggregate. Total always equals
// Completed + Pending + InProgress because those are the only statuses.
type TaskStats struct {
	Total      int64 `db:"total"`
	Completed  int64 `db:"completed"`
	Pending    int64 `db:"pending"`
	InProgress int64 `db:"in_progress"`
}
