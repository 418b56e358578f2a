package tasksrepo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

type stubStorer struct {
	lastCreate tasksrepo.CreateTask
	lastUpdate tasksrepo.UpdateTask
	updateErr  error
	deleteErr  error
	stats      tasksrepo.TaskStats
}

func (s *stubStorer) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	s.lastCreate = input
	return tasksrepo.Task{ID: 1, Title: input.Title, Priority: input.Priority, Status: tasksrepo.StatusPending}, nil
}

func (s *stubStorer) Get(ctx context.Context, id int64) (tasksrepo.Task, error) {
	return tasksrepo.Task{ID: id}, nil
}

func (s *stubStorer) List(ctx context.Context, filter tasksrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]tasksrepo.Task, error) {
	return nil, nil
}

func (s *stubStorer) Update(ctx context.Context, id int64, updates tasksrepo.UpdateTask) error {
	s.lastUpdate = updates
	return s.updateErr
}

func (s *stubStorer) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

func (s *stubStorer) Stats(ctx context.Context) (tasksrepo.TaskStats, error) {
	return s.stats, nil
}

func TestRepository_CreateDefaultsPriority(t *testing.T) {
	storer := &stubStorer{}
	repo := tasksrepo.NewRepository(testLogger(), storer)

	if _, err := repo.Create(context.Background(), tasksrepo.CreateTask{Title: "Buy milk"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if storer.lastCreate.Priority != tasksrepo.PriorityMedium {
		t.Errorf("expected Medium default, got %q", storer.lastCreate.Priority)
	}
}

func TestRepository_CreateRejectsBadInput(t *testing.T) {
	repo := tasksrepo.NewRepository(testLogger(), &stubStorer{})
	ctx := context.Background()

	if _, err := repo.Create(ctx, tasksrepo.CreateTask{}); err == nil {
		t.Errorf("expected error for missing title")
	}
	if _, err := repo.Create(ctx, tasksrepo.CreateTask{Title: "x", Priority: "Critical"}); err == nil {
		t.Errorf("expected error for unknown priority")
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	storer := &stubStorer{}
	repo := tasksrepo.NewRepository(testLogger(), storer)
	ctx := context.Background()

	if err := repo.UpdateStatus(ctx, 7, tasksrepo.StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if storer.lastUpdate.Status == nil || *storer.lastUpdate.Status != tasksrepo.StatusCompleted {
		t.Errorf("expected status update, got %+v", storer.lastUpdate)
	}
	if storer.lastUpdate.Title != nil || storer.lastUpdate.Priority != nil {
		t.Errorf("status toggle must not touch other fields: %+v", storer.lastUpdate)
	}

	if err := repo.UpdateStatus(ctx, 7, "Done"); err == nil {
		t.Errorf("expected error for unknown status")
	}
}

func TestRepository_UpdateValidates(t *testing.T) {
	repo := tasksrepo.NewRepository(testLogger(), &stubStorer{})
	ctx := context.Background()

	empty := ""
	if err := repo.Update(ctx, 1, tasksrepo.UpdateTask{Title: &empty}); err == nil {
		t.Errorf("expected error for empty title")
	}

	bad := "Sideways"
	if err := repo.Update(ctx, 1, tasksrepo.UpdateTask{Status: &bad}); err == nil {
		t.Errorf("expected error for unknown status")
	}
}

func TestRepository_DeleteMissingPassesThrough(t *testing.T) {
	storer := &stubStorer{deleteErr: tasksrepo.ErrTaskNotFound}
	repo := tasksrepo.NewRepository(testLogger(), storer)

	err := repo.Delete(context.Background(), 404)
	if !errors.Is(err, tasksrepo.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestRepository_StatsPassesThrough(t *testing.T) {
	storer := &stubStorer{stats: tasksrepo.TaskStats{Total: 6, Completed: 2, Pending: 3, InProgress: 1}}
	repo := tasksrepo.NewRepository(testLogger(), storer)

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != stats.Completed+stats.Pending+stats.InProgress {
		t.Errorf("stats do not add up: %+v", stats)
	}
}
