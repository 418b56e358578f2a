package closingsrepo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/closingsrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/sdk/logger"
	"github.com/shopspring/decimal"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

type stubStorer struct {
	createErr  error
	lastCreate closingsrepo.CreateClosing
}

func (s *stubStorer) Create(ctx context.Context, input closingsrepo.CreateClosing) (closingsrepo.Closing, error) {
	s.lastCreate = input
	if s.createErr != nil {
		return closingsrepo.Closing{}, s.createErr
	}
	return closingsrepo.Closing{ID: 1, ClosingDate: input.ClosingDate}, nil
}

func (s *stubStorer) List(ctx context.Context, filter closingsrepo.Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]closingsrepo.Closing, error) {
	return nil, nil
}

func TestRepository_CreateDefaultsDateToToday(t *testing.T) {
	storer := &stubStorer{}
	repo := closingsrepo.NewRepository(testLogger(), storer, nil)

	created, err := repo.Create(context.Background(), closingsrepo.CreateClosing{
		CashTotal: decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ClosingDate.IsZero() {
		t.Errorf("expected closing date to default to today")
	}
}

func TestRepository_CreateSecondClosingSameDay(t *testing.T) {
	storer := &stubStorer{createErr: postgresdb.ErrDBDuplicatedEntry}
	repo := closingsrepo.NewRepository(testLogger(), storer, nil)

	_, err := repo.Create(context.Background(), closingsrepo.CreateClosing{
		ClosingDate: time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, closingsrepo.ErrClosingExists) {
		t.Errorf("expected ErrClosingExists, got %v", err)
	}
}

func TestRepository_CreateRejectsNegativeTotals(t *testing.T) {
	repo := closingsrepo.NewRepository(testLogger(), &stubStorer{}, nil)

	_, err := repo.Create(context.Background(), closingsrepo.CreateClosing{
		BankTotal: decimal.NewFromInt(-10),
	})
	if err == nil {
		t.Errorf("expected error for negative total")
	}
}
