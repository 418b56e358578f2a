// Package closingsrepo records end-of-day cash reconciliations. The
// totals are entered by hand at closing time and are not derived from
// the other ledgers.
package closingsrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var listCacheKey = repositories.ListCacheKey("closings")

// Storer defines the data storage interface for Closing.
type Storer interface {
	repositories.Creator[Closing, CreateClosing]
	repositories.Lister[Closing, Filter]
}

// Repository provides access to daily closing storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new Closing repository. A nil cache disables
// caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// Create records a daily closing. An empty date falls back to today;
// a second closing for the same date returns ErrClosingExists.
func (r *Repository) Create(ctx context.Context, input CreateClosing) (Closing, error) {
	if input.CashTotal.IsNegative() || input.BankTotal.IsNegative() || input.SalesTotal.IsNegative() {
		return Closing{}, fmt.Errorf("create closing: totals cannot be negative")
	}
	if input.ClosingDate.IsZero() {
		input.ClosingDate = time.Now()
	}

	closing, err := r.storer.Create(ctx, input)
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) {
			return Closing{}, fmt.Errorf("create closing: %w", ErrClosingExists)
		}
		return Closing{}, fmt.Errorf("create closing: %w", err)
	}

	r.cache.Delete(listCacheKey)

	r.log.InfoContext(ctx, "created daily closing", "closing_id", closing.ID, "closing_date", closing.ClosingDate.Format(time.DateOnly))
	return closing, nil
}

// List returns closings matching the filter. Only the default
// unfiltered first page is cached.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Closing, error) {
	cacheable := filter == (Filter{}) && orderBy == DefaultOrderBy && repositories.DefaultPage(page)

	closings, err := repositories.CachedList(r.cache, listCacheKey, cacheable, func() ([]Closing, error) {
		return r.storer.List(ctx, filter, orderBy, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list closings: %w", err)
	}
	return closings, nil
}
