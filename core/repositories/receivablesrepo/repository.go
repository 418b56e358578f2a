// Package receivablesrepo tracks outstanding customer debts.
package receivablesrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var listCacheKey = repositories.ListCacheKey("receivables")

// Storer defines the data storage interface for Receivable.
type Storer interface {
	repositories.Creator[Receivable, CreateReceivable]
	repositories.Lister[Receivable, Filter]
}

// Repository provides access to receivable storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new Receivable repository. A nil cache
// disables caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// Create records a receivable.
func (r *Repository) Create(ctx context.Context, input CreateReceivable) (Receivable, error) {
	if input.DebtorName == "" {
		return Receivable{}, fmt.Errorf("create receivable: debtor name is required")
	}
	if input.Amount.IsNegative() {
		return Receivable{}, fmt.Errorf("create receivable: amount cannot be negative")
	}

	receivable, err := r.storer.Create(ctx, input)
	if err != nil {
		return Receivable{}, fmt.Errorf("create receivable: %w", err)
	}

	r.cache.Delete(listCacheKey)

	r.log.InfoContext(ctx, "created receivable", "receivable_id", receivable.ID)
	return receivable, nil
}

// List returns receivables matching the filter. Only the default
// unfiltered first page is cached.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Receivable, error) {
	cacheable := filter == (Filter{}) && orderBy == DefaultOrderBy && repositories.DefaultPage(page)

	receivables, err := repositories.CachedList(r.cache, listCacheKey, cacheable, func() ([]Receivable, error) {
		return r.storer.List(ctx, filter, orderBy, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	return receivables, nil
}
