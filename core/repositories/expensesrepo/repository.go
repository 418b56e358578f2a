// Package expensesrepo records operating costs.
package expensesrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var listCacheKey = repositories.ListCacheKey("expenses")

// Storer defines the data storage interface for Expense.
type Storer interface {
	repositories.Creator[Expense, CreateExpense]
	repositories.Lister[Expense, Filter]
}

// Repository provides access to expense storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new Expense repository. A nil cache disables
// caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// Create records an expense. An empty spend date falls back to today.
func (r *Repository) Create(ctx context.Context, input CreateExpense) (Expense, error) {
	if input.Label == "" {
		return Expense{}, fmt.Errorf("create expense: label is required")
	}
	if input.Amount.IsNegative() {
		return Expense{}, fmt.Errorf("create expense: amount cannot be negative")
	}
	if input.SpentOn.IsZero() {
		input.SpentOn = time.Now()
	}

	expense, err := r.storer.Create(ctx, input)
	if err != nil {
		return Expense{}, fmt.Errorf("create expense: %w", err)
	}

	r.cache.Delete(listCacheKey)
	r.cache.Delete(repositories.SummaryCacheKey)

	r.log.InfoContext(ctx, "created expense", "expense_id", expense.ID)
	return expense, nil
}

// List returns expenses matching the filter. Only the default
// unfiltered first page is cached.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Expense, error) {
	cacheable := filter == (Filter{}) && orderBy == DefaultOrderBy && repositories.DefaultPage(page)

	expenses, err := repositories.CachedList(r.cache, listCacheKey, cacheable, func() ([]Expense, error) {
		return r.storer.List(ctx, filter, orderBy, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}
