package tasksrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(task tasksrepo.Task) Task {
	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: validation.GetStringOrEmpty(task.Description),
		Priority:    task.Priority,
		Status:      task.Status,
		DueDate:     formatDatePtr(task.DueDate),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalStatsToBridge converts the stats aggregate to the bridge model.
func MarshalStatsToBridge(stats tasksrepo.TaskStats) TaskStats {
	return TaskStats{
		Total:      stats.Total,
		Completed:  stats.Completed,
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
	}
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateTaskInput) (tasksrepo.CreateTask, error) {
	create := tasksrepo.CreateTask{
		Title:    input.Title,
		Priority: input.Priority,
	}

	if input.Description != "" {
		create.Description = validation.StringPtr(input.Description)
	}
	if input.DueDate != "" {
		due, err := validation.ParseFlexibleDate(input.DueDate)
		if err != nil {
			return tasksrepo.CreateTask{}, fmt.Errorf("invalid due_date: %w", err)
		}
		create.DueDate = &due
	}

	return create, nil
}

// MarshalUpdateToRepository converts bridge update input to repository input.
func MarshalUpdateToRepository(input UpdateTaskInput) (tasksrepo.UpdateTask, error) {
	update := tasksrepo.UpdateTask{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
	}

	if input.DueDate != nil && *input.DueDate != "" {
		due, err := validation.ParseFlexibleDate(*input.DueDate)
		if err != nil {
			return tasksrepo.UpdateTask{}, fmt.Errorf("invalid due_date: %w", err)
		}
		update.DueDate = &due
	}

	return update, nil
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
