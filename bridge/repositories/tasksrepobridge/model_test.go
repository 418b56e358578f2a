package tasksrepobridge_test

import (
	"testing"
	"time"

	"github.com/jrazmi/shopkeep/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
)

func TestCreateTaskInput_Validate(t *testing.T) {
	good := tasksrepobridge.CreateTaskInput{Title: "Buy milk", Priority: "High"}
	if err := good.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Priority is optional; the repository applies the Medium default.
	if err := (tasksrepobridge.CreateTaskInput{Title: "Buy milk"}).Validate(); err != nil {
		t.Errorf("unexpected error for empty priority: %v", err)
	}

	if err := (tasksrepobridge.CreateTaskInput{Priority: "High"}).Validate(); err == nil {
		t.Errorf("expected error for missing title")
	}
	if err := (tasksrepobridge.CreateTaskInput{Title: "x", Priority: "Critical"}).Validate(); err == nil {
		t.Errorf("expected error for unknown priority")
	}
}

func TestUpdateTaskStatusInput_Validate(t *testing.T) {
	for _, status := range []string{"Pending", "In Progress", "Completed"} {
		input := tasksrepobridge.UpdateTaskStatusInput{Status: status}
		if err := input.Validate(); err != nil {
			t.Errorf("status %q: unexpected error %v", status, err)
		}
	}

	for _, status := range []string{"", "Done", "pending"} {
		input := tasksrepobridge.UpdateTaskStatusInput{Status: status}
		if err := input.Validate(); err == nil {
			t.Errorf("expected error for status %q", status)
		}
	}
}

func TestMarshalCreateToRepository_ParsesDueDate(t *testing.T) {
	create, err := tasksrepobridge.MarshalCreateToRepository(tasksrepobridge.CreateTaskInput{
		Title:   "File taxes",
		DueDate: "2026-09-15",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if create.DueDate == nil {
		t.Fatalf("expected parsed due date")
	}
	if create.DueDate.Format(time.DateOnly) != "2026-09-15" {
		t.Errorf("expected 2026-09-15, got %v", create.DueDate)
	}

	if _, err := tasksrepobridge.MarshalCreateToRepository(tasksrepobridge.CreateTaskInput{
		Title:   "File taxes",
		DueDate: "next tuesday",
	}); err == nil {
		t.Errorf("expected error for unparseable due date")
	}
}

func TestMarshalToBridge_FormatsDatesAndBlanks(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 22, 10, 30, 0, 0, time.UTC)

	wire := tasksrepobridge.MarshalToBridge(tasksrepo.Task{
		ID:        3,
		Title:     "File taxes",
		Priority:  "High",
		Status:    "Pending",
		DueDate:   &due,
		CreatedAt: now,
		UpdatedAt: now,
	})

	if wire.DueDate != "2026-09-15" {
		t.Errorf("expected date-only due date, got %q", wire.DueDate)
	}
	if wire.CreatedAt != "2026-08-22T10:30:00Z" {
		t.Errorf("expected RFC3339 created_at, got %q", wire.CreatedAt)
	}
	if wire.Description != "" {
		t.Errorf("nil description should render empty, got %q", wire.Description)
	}

	noDue := tasksrepobridge.MarshalToBridge(tasksrepo.Task{ID: 4, Title: "x", CreatedAt: now, UpdatedAt: now})
	if noDue.DueDate != "" {
		t.Errorf("nil due date should render empty, got %q", noDue.DueDate)
	}
}
