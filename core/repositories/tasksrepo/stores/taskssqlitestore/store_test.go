package taskssqlitestore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo/stores/taskssqlitestore"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func newTestStore(t *testing.T) *taskssqlitestore.Store {
	t.Helper()

	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlitedb.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return taskssqlitestore.NewStore(testLogger(), db)
}

func defaultPage() fop.PageInt64Cursor {
	return fop.PageInt64Cursor{Limit: 20}
}

func TestStore_CreateGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, tasksrepo.CreateTask{
		Title:    "Buy milk",
		Priority: tasksrepo.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Errorf("expected assigned id")
	}
	if created.Status != tasksrepo.StatusPending {
		t.Errorf("expected new task to be Pending, got %q", created.Status)
	}
	if created.DueDate != nil {
		t.Errorf("expected nil due date, got %v", created.DueDate)
	}
	if created.UpdatedAt.Before(created.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", created.UpdatedAt, created.CreatedAt)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Buy milk" || got.Priority != tasksrepo.PriorityHigh {
		t.Errorf("round trip mismatch: %+v", got)
	}

	tasks, err := store.List(ctx, tasksrepo.Filter{}, tasksrepo.DefaultOrderBy, defaultPage())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != created.ID {
		t.Errorf("expected the created task in the listing, got %+v", tasks)
	}
}

func TestStore_CreateStoresDueDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	created, err := store.Create(ctx, tasksrepo.CreateTask{
		Title:    "File quarterly taxes",
		Priority: tasksrepo.PriorityUrgent,
		DueDate:  &due,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.DueDate == nil || !created.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, created.DueDate)
	}
}

func TestStore_UpdateStatusTouchesUpdatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, tasksrepo.CreateTask{Title: "Water plants", Priority: tasksrepo.PriorityLow})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Timestamps are stored at millisecond resolution.
	time.Sleep(10 * time.Millisecond)

	status := tasksrepo.StatusCompleted
	if err := store.Update(ctx, created.ID, tasksrepo.UpdateTask{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != tasksrepo.StatusCompleted {
		t.Errorf("expected Completed, got %q", got.Status)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Errorf("expected updated_at %v after created_at %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestStore_UpdateMissingReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	title := "ghost"
	err := store.Update(context.Background(), 999, tasksrepo.UpdateTask{Title: &title})
	if !errors.Is(err, tasksrepo.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestStore_DeleteRemovesTask(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, tasksrepo.CreateTask{Title: "Temporary", Priority: tasksrepo.PriorityMedium})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Get(ctx, created.ID); !errors.Is(err, tasksrepo.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, tasksrepo.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}

	tasks, err := store.List(ctx, tasksrepo.Filter{}, tasksrepo.DefaultOrderBy, defaultPage())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty listing after delete, got %d rows", len(tasks))
	}
}

func TestStore_ListFiltersByStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		if _, err := store.Create(ctx, tasksrepo.CreateTask{Title: title, Priority: tasksrepo.PriorityMedium}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	tasks, err := store.List(ctx, tasksrepo.Filter{}, tasksrepo.DefaultOrderBy, defaultPage())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	status := tasksrepo.StatusInProgress
	if err := store.Update(ctx, tasks[0].ID, tasksrepo.UpdateTask{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	pending := tasksrepo.StatusPending
	filtered, err := store.List(ctx, tasksrepo.Filter{Status: &pending}, tasksrepo.DefaultOrderBy, defaultPage())
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 pending tasks, got %d", len(filtered))
	}
	for _, task := range filtered {
		if task.Status != tasksrepo.StatusPending {
			t.Errorf("filter leaked status %q", task.Status)
		}
	}
}

func TestStore_ListCursorWalksWholeList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var want []int64
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		created, err := store.Create(ctx, tasksrepo.CreateTask{Title: title, Priority: tasksrepo.PriorityMedium})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		want = append(want, created.ID)
	}

	seen := map[int64]bool{}
	page := fop.PageInt64Cursor{Limit: 2}
	for i := 0; i < 5; i++ {
		tasks, err := store.List(ctx, tasksrepo.Filter{}, tasksrepo.DefaultOrderBy, page)
		if err != nil {
			t.Fatalf("list page: %v", err)
		}
		if len(tasks) == 0 {
			break
		}
		for _, task := range tasks {
			if seen[task.ID] {
				t.Fatalf("task %d returned twice while paging", task.ID)
			}
			seen[task.ID] = true
		}
		page.Cursor = tasks[len(tasks)-1].ID
	}

	if len(seen) != len(want) {
		t.Errorf("expected to walk %d tasks, saw %d", len(want), len(seen))
	}
}

func TestStore_StatsCountsAddUp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"p1", "p2", "c1", "w1"} {
		created, err := store.Create(ctx, tasksrepo.CreateTask{Title: title, Priority: tasksrepo.PriorityMedium})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		ids = append(ids, created.ID)
	}

	completed := tasksrepo.StatusCompleted
	if err := store.Update(ctx, ids[2], tasksrepo.UpdateTask{Status: &completed}); err != nil {
		t.Fatalf("update: %v", err)
	}
	inProgress := tasksrepo.StatusInProgress
	if err := store.Update(ctx, ids[3], tasksrepo.UpdateTask{Status: &inProgress}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 4 || stats.Completed != 1 || stats.Pending != 2 || stats.InProgress != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Total != stats.Completed+stats.Pending+stats.InProgress {
		t.Errorf("stats do not add up: %+v", stats)
	}
}

func TestStore_ClosedDatabaseReturnsErrors(t *testing.T) {
	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := sqlitedb.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Close()

	store := taskssqlitestore.NewStore(testLogger(), db)
	ctx := context.Background()

	if _, err := store.Create(ctx, tasksrepo.CreateTask{Title: "x", Priority: tasksrepo.PriorityLow}); err == nil {
		t.Errorf("expected create against closed database to fail")
	}
	if _, err := store.Get(ctx, 1); err == nil {
		t.Errorf("expected get against closed database to fail")
	}
	if _, err := store.List(ctx, tasksrepo.Filter{}, tasksrepo.DefaultOrderBy, defaultPage()); err == nil {
		t.Errorf("expected list against closed database to fail")
	}
	if _, err := store.Stats(ctx); err == nil {
		t.Errorf("expected stats against closed database to fail")
	}
}
