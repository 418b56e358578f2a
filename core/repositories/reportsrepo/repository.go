// Package reportsrepo computes ledger-wide aggregates. The summary is
// read far more often than the ledger changes, so it is served
// read-through from the cache; the writing repositories drop the
// cached value whenever they record an entry that moves money.
package reportsrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Storer defines the data storage interface for reports.
type Storer interface {
	Summary(ctx context.Context) (FinancialSummary, error)
}

// Repository provides access to ledger aggregates.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new reports repository. A nil cache disables
// caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// Summary returns the financial summary, preferring the cached value.
func (r *Repository) Summary(ctx context.Context) (FinancialSummary, error) {
	if summary, ok := cache.Get[FinancialSummary](r.cache, repositories.SummaryCacheKey); ok {
		return summary, nil
	}

	summary, err := r.storer.Summary(ctx)
	if err != nil {
		return FinancialSummary{}, fmt.Errorf("financial summary: %w", err)
	}

	r.cache.Set(repositories.SummaryCacheKey, summary)

	return summary, nil
}
