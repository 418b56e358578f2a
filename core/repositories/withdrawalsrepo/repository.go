// Package withdrawalsrepo records owner withdrawals.
package withdrawalsrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var listCacheKey = repositories.ListCacheKey("withdrawals")

// Storer defines the data storage interface for Withdrawal.
type Storer interface {
	repositories.Creator[Withdrawal, CreateWithdrawal]
	repositories.Lister[Withdrawal, Filter]
}

// Repository provides access to withdrawal storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new Withdrawal repository. A nil cache
// disables caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// Create records a withdrawal. An empty date falls back to today.
func (r *Repository) Create(ctx context.Context, input CreateWithdrawal) (Withdrawal, error) {
	if input.Purpose == "" {
		return Withdrawal{}, fmt.Errorf("create withdrawal: purpose is required")
	}
	if input.Amount.IsNegative() {
		return Withdrawal{}, fmt.Errorf("create withdrawal: amount cannot be negative")
	}
	if input.WithdrawnOn.IsZero() {
		input.WithdrawnOn = time.Now()
	}

	withdrawal, err := r.storer.Create(ctx, input)
	if err != nil {
		return Withdrawal{}, fmt.Errorf("create withdrawal: %w", err)
	}

	r.cache.Delete(listCacheKey)
	r.cache.Delete(repositories.SummaryCacheKey)

	r.log.InfoContext(ctx, "created withdrawal", "withdrawal_id", withdrawal.ID)
	return withdrawal, nil
}

// List returns withdrawals matching the filter. Only the default
// unfiltered first page is cached.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Withdrawal, error) {
	cacheable := filter == (Filter{}) && orderBy == DefaultOrderBy && repositories.DefaultPage(page)

	withdrawals, err := repositories.CachedList(r.cache, listCacheKey, cacheable, func() ([]Withdrawal, error) {
		return r.storer.List(ctx, filter, orderBy, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	return withdrawals, nil
}
