package salariesrepo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jrazmi/shopkeep/core/repositories/salariesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/logger"
	"github.com/shopspring/decimal"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

type stubStorer struct {
	lastCreate salariesrepo.CreateSalary
}

func (s *stubStorer) Create(ctx context.Context, input salariesrepo.CreateSalary) (salariesrepo.Salary, error) {
	s.lastCreate = input
	return salariesrepo.Salary{
		ID:         1,
		EmployeeID: input.EmployeeID,
		Period:     input.Period,
		Gross:      input.Gross,
		Deductions: input.Deductions,
		Net:        input.Net,
		IsPaid:     input.IsPaid,
		PaidOn:     input.PaidOn,
	}, nil
}

func (s *stubStorer) List(ctx context.Context, filter salariesrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]salariesrepo.Salary, error) {
	return nil, nil
}

func TestRepository_CreateDerivesNet(t *testing.T) {
	storer := &stubStorer{}
	repo := salariesrepo.NewRepository(testLogger(), storer, nil)

	created, err := repo.Create(context.Background(), salariesrepo.CreateSalary{
		EmployeeID: 3,
		Period:     "2026-08",
		Gross:      decimal.NewFromInt(3000),
		Deductions: decimal.NewFromInt(450),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	want := decimal.NewFromInt(2550)
	if !created.Net.Equal(want) {
		t.Errorf("expected derived net %s, got %s", want, created.Net)
	}
}

func TestRepository_CreateKeepsExplicitNet(t *testing.T) {
	storer := &stubStorer{}
	repo := salariesrepo.NewRepository(testLogger(), storer, nil)

	explicit := decimal.NewFromInt(2000)
	created, err := repo.Create(context.Background(), salariesrepo.CreateSalary{
		EmployeeID: 3,
		Period:     "2026-08",
		Gross:      decimal.NewFromInt(3000),
		Deductions: decimal.NewFromInt(450),
		Net:        explicit,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Net.Equal(explicit) {
		t.Errorf("expected explicit net preserved, got %s", created.Net)
	}
}

func TestRepository_CreateValidates(t *testing.T) {
	repo := salariesrepo.NewRepository(testLogger(), &stubStorer{}, nil)
	ctx := context.Background()

	if _, err := repo.Create(ctx, salariesrepo.CreateSalary{Period: "2026-08"}); err == nil {
		t.Errorf("expected error for missing employee id")
	}

	for _, period := range []string{"", "2026", "2026-13", "08-2026", "2026/08"} {
		_, err := repo.Create(ctx, salariesrepo.CreateSalary{EmployeeID: 1, Period: period})
		if err == nil {
			t.Errorf("expected error for period %q", period)
		}
	}

	if _, err := repo.Create(ctx, salariesrepo.CreateSalary{
		EmployeeID: 1,
		Period:     "2026-08",
		Gross:      decimal.NewFromInt(-1),
	}); err == nil {
		t.Errorf("expected error for negative gross")
	}

	// Deductions above gross leave a negative derived net.
	if _, err := repo.Create(ctx, salariesrepo.CreateSalary{
		EmployeeID: 1,
		Period:     "2026-08",
		Gross:      decimal.NewFromInt(100),
		Deductions: decimal.NewFromInt(200),
	}); err == nil {
		t.Errorf("expected error for negative derived net")
	}
}

func TestRepository_CreatePaidDefaultsPaidOn(t *testing.T) {
	storer := &stubStorer{}
	repo := salariesrepo.NewRepository(testLogger(), storer, nil)

	created, err := repo.Create(context.Background(), salariesrepo.CreateSalary{
		EmployeeID: 3,
		Period:     "2026-08",
		Gross:      decimal.NewFromInt(3000),
		IsPaid:     true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.PaidOn == nil {
		t.Errorf("expected pay date to default when marked paid")
	}

	unpaid, err := repo.Create(context.Background(), salariesrepo.CreateSalary{
		EmployeeID: 3,
		Period:     "2026-09",
		Gross:      decimal.NewFromInt(3000),
	})
	if err != nil {
		t.Fatalf("create unpaid: %v", err)
	}
	if unpaid.PaidOn != nil {
		t.Errorf("unpaid salary must not get a pay date, got %v", unpaid.PaidOn)
	}
}
