package invoicesrepo_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/repositories/invoicesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
	"github.com/shopspring/decimal"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

type stubStorer struct {
	created   []invoicesrepo.CreateInvoice
	listCalls int
}

func (s *stubStorer) Create(ctx context.Context, input invoicesrepo.CreateInvoice) (invoicesrepo.Invoice, error) {
	s.created = append(s.created, input)
	return invoicesrepo.Invoice{
		ID:           int64(len(s.created)),
		InvoiceNo:    input.InvoiceNo,
		CustomerName: input.CustomerName,
		Total:        input.Total,
		IsPaid:       input.IsPaid,
		IssuedOn:     input.IssuedOn,
		CreatedAt:    time.Now(),
	}, nil
}

func (s *stubStorer) Get(ctx context.Context, id int64) (invoicesrepo.Invoice, error) {
	return invoicesrepo.Invoice{ID: id}, nil
}

func (s *stubStorer) List(ctx context.Context, filter invoicesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]invoicesrepo.Invoice, error) {
	s.listCalls++
	return []invoicesrepo.Invoice{{ID: 1, InvoiceNo: "INV-TEST"}}, nil
}

func defaultPage() fop.PageInt64Cursor {
	return fop.PageInt64Cursor{Limit: repositories.DefaultPageLimit}
}

func TestRepository_CreateGeneratesInvoiceNo(t *testing.T) {
	storer := &stubStorer{}
	repo := invoicesrepo.NewRepository(testLogger(), storer, nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, invoicesrepo.CreateInvoice{
		CustomerName: "Acme Ltd",
		Total:        decimal.NewFromInt(120),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(created.InvoiceNo, "INV-") {
		t.Errorf("expected generated INV- number, got %q", created.InvoiceNo)
	}
	if len(created.InvoiceNo) != len("INV-")+8 {
		t.Errorf("expected 8 generated characters, got %q", created.InvoiceNo)
	}

	preserved, err := repo.Create(ctx, invoicesrepo.CreateInvoice{
		InvoiceNo:    "INV-CUSTOM01",
		CustomerName: "Acme Ltd",
		Total:        decimal.NewFromInt(60),
	})
	if err != nil {
		t.Fatalf("create with number: %v", err)
	}
	if preserved.InvoiceNo != "INV-CUSTOM01" {
		t.Errorf("expected caller number preserved, got %q", preserved.InvoiceNo)
	}
}

func TestRepository_CreateDefaultsIssuedOn(t *testing.T) {
	storer := &stubStorer{}
	repo := invoicesrepo.NewRepository(testLogger(), storer, nil)

	created, err := repo.Create(context.Background(), invoicesrepo.CreateInvoice{
		CustomerName: "Acme Ltd",
		Total:        decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IssuedOn.IsZero() {
		t.Errorf("expected issue date to default to today")
	}
}

func TestRepository_CreateValidates(t *testing.T) {
	repo := invoicesrepo.NewRepository(testLogger(), &stubStorer{}, nil)
	ctx := context.Background()

	if _, err := repo.Create(ctx, invoicesrepo.CreateInvoice{Total: decimal.NewFromInt(5)}); err == nil {
		t.Errorf("expected error for missing customer name")
	}

	if _, err := repo.Create(ctx, invoicesrepo.CreateInvoice{
		CustomerName: "Acme Ltd",
		Total:        decimal.NewFromInt(-5),
	}); err == nil {
		t.Errorf("expected error for negative total")
	}
}

func TestRepository_ListCachesDefaultPage(t *testing.T) {
	storer := &stubStorer{}
	repo := invoicesrepo.NewRepository(testLogger(), storer, cache.New())
	ctx := context.Background()

	if _, err := repo.List(ctx, invoicesrepo.Filter{}, invoicesrepo.DefaultOrderBy, defaultPage()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := repo.List(ctx, invoicesrepo.Filter{}, invoicesrepo.DefaultOrderBy, defaultPage()); err != nil {
		t.Fatalf("list again: %v", err)
	}
	if storer.listCalls != 1 {
		t.Errorf("expected second default listing served from cache, store hit %d times", storer.listCalls)
	}

	if _, err := repo.Create(ctx, invoicesrepo.CreateInvoice{
		CustomerName: "Acme Ltd",
		Total:        decimal.NewFromInt(42),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.List(ctx, invoicesrepo.Filter{}, invoicesrepo.DefaultOrderBy, defaultPage()); err != nil {
		t.Fatalf("list after write: %v", err)
	}
	if storer.listCalls != 2 {
		t.Errorf("expected write to invalidate the listing, store hit %d times", storer.listCalls)
	}
}

func TestRepository_ListFilteredSkipsCache(t *testing.T) {
	storer := &stubStorer{}
	repo := invoicesrepo.NewRepository(testLogger(), storer, cache.New())
	ctx := context.Background()

	paid := true
	for i := 0; i < 2; i++ {
		if _, err := repo.List(ctx, invoicesrepo.Filter{IsPaid: &paid}, invoicesrepo.DefaultOrderBy, defaultPage()); err != nil {
			t.Fatalf("list filtered: %v", err)
		}
	}
	if storer.listCalls != 2 {
		t.Errorf("filtered listings must bypass the cache, store hit %d times", storer.listCalls)
	}
}

func TestRepository_NilCacheDisablesCaching(t *testing.T) {
	storer := &stubStorer{}
	repo := invoicesrepo.NewRepository(testLogger(), storer, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.List(ctx, invoicesrepo.Filter{}, invoicesrepo.DefaultOrderBy, defaultPage()); err != nil {
			t.Fatalf("list: %v", err)
		}
	}
	if storer.listCalls != 2 {
		t.Errorf("nil cache must read through every time, store hit %d times", storer.listCalls)
	}
}

func TestRepository_CreateInvalidatesSummary(t *testing.T) {
	c := cache.New()
	c.Set(repositories.SummaryCacheKey, "stale")

	repo := invoicesrepo.NewRepository(testLogger(), &stubStorer{}, c)
	if _, err := repo.Create(context.Background(), invoicesrepo.CreateInvoice{
		CustomerName: "Acme Ltd",
		Total:        decimal.NewFromInt(7),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, ok := cache.Get[string](c, repositories.SummaryCacheKey); ok {
		t.Errorf("expected summary key dropped by the write")
	}
}
