// Package depositsrepo records cash and bank deposits.
package depositsrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var listCacheKey = repositories.ListCacheKey("deposits")

// Storer defines the data storage interface for Deposit.
type Storer interface {
	repositories.Creator[Deposit, CreateDeposit]
	repositories.Lister[Deposit, Filter]
}

// Repository provides access to deposit storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new Deposit repository. A nil cache disables
// caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// Create records a deposit. An empty date falls back to today.
func (r *Repository) Create(ctx context.Context, input CreateDeposit) (Deposit, error) {
	if !ValidMethod(input.Method) {
		return Deposit{}, fmt.Errorf("create deposit: invalid method %q", input.Method)
	}
	if input.Amount.IsNegative() {
		return Deposit{}, fmt.Errorf("create deposit: amount cannot be negative")
	}
	if input.DepositedOn.IsZero() {
		input.DepositedOn = time.Now()
	}

	deposit, err := r.storer.Create(ctx, input)
	if err != nil {
		return Deposit{}, fmt.Errorf("create deposit: %w", err)
	}

	r.cache.Delete(listCacheKey)

	r.log.InfoContext(ctx, "created deposit", "deposit_id", deposit.ID, "method", deposit.Method)
	return deposit, nil
}

// List returns deposits matching the filter. Only the default
// unfiltered first page is cached.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Deposit, error) {
	cacheable := filter == (Filter{}) && orderBy == DefaultOrderBy && repositories.DefaultPage(page)

	deposits, err := repositories.CachedList(r.cache, listCacheKey, cacheable, func() ([]Deposit, error) {
		return r.storer.List(ctx, filter, orderBy, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	return deposits, nil
}
