package categoriessqlitestore_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo/stores/categoriessqlitestore"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "categories.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlitedb.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func listAll(t *testing.T, store *categoriessqlitestore.Store) []categoriesrepo.Category {
	t.Helper()

	categories, err := store.List(context.Background(), categoriesrepo.Filter{},
		categoriesrepo.DefaultOrderBy, fop.PageInt64Cursor{Limit: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return categories
}

func TestStore_SeedSurvivesRepeatedMigrate(t *testing.T) {
	db := newTestDB(t)
	store := categoriessqlitestore.NewStore(testLogger(), db)

	first := listAll(t, store)
	if len(first) != 4 {
		t.Fatalf("expected 4 seeded categories, got %d", len(first))
	}

	if err := sqlitedb.Migrate(context.Background(), db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	second := listAll(t, store)
	if len(second) != len(first) {
		t.Errorf("seed not idempotent: %d then %d categories", len(first), len(second))
	}
}

func TestStore_SeededNamesAndColors(t *testing.T) {
	store := categoriessqlitestore.NewStore(testLogger(), newTestDB(t))

	want := map[string]string{
		"Work":     "#4ECDC4",
		"Personal": "#45B7D1",
		"Health":   "#96CEB4",
		"Learning": "#FFEAA7",
	}

	for _, category := range listAll(t, store) {
		color, ok := want[category.Name]
		if !ok {
			t.Errorf("unexpected seeded category %q", category.Name)
			continue
		}
		if category.Color != color {
			t.Errorf("category %q: expected color %s, got %s", category.Name, color, category.Color)
		}
		delete(want, category.Name)
	}
	for name := range want {
		t.Errorf("seeded category %q missing", name)
	}
}

func TestStore_CreateDuplicateName(t *testing.T) {
	store := categoriessqlitestore.NewStore(testLogger(), newTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, categoriesrepo.CreateCategory{Name: "Errands", Color: "#AA00FF"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Errorf("expected assigned id")
	}

	_, err = store.Create(ctx, categoriesrepo.CreateCategory{Name: "Errands", Color: "#00FF00"})
	if !errors.Is(err, sqlitedb.ErrDBDuplicatedEntry) {
		t.Errorf("expected ErrDBDuplicatedEntry, got %v", err)
	}

	// Seeds collide the same way user rows do.
	_, err = store.Create(ctx, categoriesrepo.CreateCategory{Name: "Work", Color: "#123456"})
	if !errors.Is(err, sqlitedb.ErrDBDuplicatedEntry) {
		t.Errorf("expected ErrDBDuplicatedEntry for seeded name, got %v", err)
	}
}

func TestStore_ListFilterByName(t *testing.T) {
	store := categoriessqlitestore.NewStore(testLogger(), newTestDB(t))

	name := "Health"
	categories, err := store.List(context.Background(), categoriesrepo.Filter{Name: &name},
		categoriesrepo.DefaultOrderBy, fop.PageInt64Cursor{Limit: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Health" {
		t.Errorf("expected exactly the Health category, got %+v", categories)
	}
}
