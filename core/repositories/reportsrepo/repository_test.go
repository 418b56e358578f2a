package reportsrepo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jrazmi/shopkeep/core/repositories/expensesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/reportsrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
	"github.com/shopspring/decimal"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

type stubSummaryStorer struct {
	calls   int
	summary reportsrepo.FinancialSummary
	err     error
}

func (s *stubSummaryStorer) Summary(ctx context.Context) (reportsrepo.FinancialSummary, error) {
	s.calls++
	return s.summary, s.err
}

type stubExpenseStorer struct{}

func (stubExpenseStorer) Create(ctx context.Context, input expensesrepo.CreateExpense) (expensesrepo.Expense, error) {
	return expensesrepo.Expense{ID: 1, Label: input.Label, Amount: input.Amount, SpentOn: input.SpentOn}, nil
}

func (stubExpenseStorer) List(ctx context.Context, filter expensesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]expensesrepo.Expense, error) {
	return nil, nil
}

func TestFinancialSummary_NetBalance(t *testing.T) {
	summary := reportsrepo.FinancialSummary{
		InvoiceIncome:   decimal.RequireFromString("1000.50"),
		ExpenseTotal:    decimal.RequireFromString("200.25"),
		WithdrawalTotal: decimal.RequireFromString("100.00"),
		SalaryTotal:     decimal.RequireFromString("300.00"),
	}

	want := decimal.RequireFromString("400.25")
	if got := summary.NetBalance(); !got.Equal(want) {
		t.Errorf("expected net balance %s, got %s", want, got)
	}
}

func TestFinancialSummary_NetBalanceCanGoNegative(t *testing.T) {
	summary := reportsrepo.FinancialSummary{
		InvoiceIncome: decimal.NewFromInt(50),
		ExpenseTotal:  decimal.NewFromInt(80),
	}

	if got := summary.NetBalance(); !got.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("expected -30, got %s", got)
	}
}

func TestRepository_SummaryServedFromCache(t *testing.T) {
	storer := &stubSummaryStorer{
		summary: reportsrepo.FinancialSummary{InvoiceIncome: decimal.NewFromInt(900)},
	}
	repo := reportsrepo.NewRepository(testLogger(), storer, cache.New())
	ctx := context.Background()

	first, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	second, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary again: %v", err)
	}

	if storer.calls != 1 {
		t.Errorf("expected second summary served from cache, store hit %d times", storer.calls)
	}
	if !first.InvoiceIncome.Equal(second.InvoiceIncome) {
		t.Errorf("cached summary differs: %s vs %s", first.InvoiceIncome, second.InvoiceIncome)
	}
}

func TestRepository_SummaryRecomputedAfterLedgerWrite(t *testing.T) {
	c := cache.New()
	log := testLogger()

	storer := &stubSummaryStorer{}
	reports := reportsrepo.NewRepository(log, storer, c)
	expenses := expensesrepo.NewRepository(log, stubExpenseStorer{}, c)
	ctx := context.Background()

	if _, err := reports.Summary(ctx); err != nil {
		t.Fatalf("summary: %v", err)
	}

	if _, err := expenses.Create(ctx, expensesrepo.CreateExpense{
		Label:  "printer paper",
		Amount: decimal.NewFromInt(12),
	}); err != nil {
		t.Fatalf("create expense: %v", err)
	}

	if _, err := reports.Summary(ctx); err != nil {
		t.Fatalf("summary after write: %v", err)
	}
	if storer.calls != 2 {
		t.Errorf("expected ledger write to force a recompute, store hit %d times", storer.calls)
	}
}

func TestRepository_SummaryErrorPassesThrough(t *testing.T) {
	wantErr := errors.New("db down")
	repo := reportsrepo.NewRepository(testLogger(), &stubSummaryStorer{err: wantErr}, nil)

	if _, err := repo.Summary(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped storer error, got %v", err)
	}
}
