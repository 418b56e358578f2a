// Package statementsrepo records free-form account statement lines,
// the catch-all for movements the other ledgers do not model.
package statementsrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var listCacheKey = repositories.ListCacheKey("statements")

// Storer defines the data storage interface for StatementEntry.
type Storer interface {
	repositories.Creator[StatementEntry, CreateStatementEntry]
	repositories.Lister[StatementEntry, Filter]
}

// Repository provides access to statement storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new StatementEntry repository. A nil cache
// disables caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// Create records a statement line. An empty entry date falls back to
// today. A line must move money exactly one way.
func (r *Repository) Create(ctx context.Context, input CreateStatementEntry) (StatementEntry, error) {
	if input.Description == "" {
		return StatementEntry{}, fmt.Errorf("create statement entry: description is required")
	}
	if input.Debit.IsNegative() || input.Credit.IsNegative() {
		return StatementEntry{}, fmt.Errorf("create statement entry: amounts cannot be negative")
	}
	if input.Debit.IsZero() == input.Credit.IsZero() {
		return StatementEntry{}, fmt.Errorf("create statement entry: exactly one of debit and credit must be set")
	}
	if input.EntryDate.IsZero() {
		input.EntryDate = time.Now()
	}

	entry, err := r.storer.Create(ctx, input)
	if err != nil {
		return StatementEntry{}, fmt.Errorf("create statement entry: %w", err)
	}

	r.cache.Delete(listCacheKey)

	r.log.InfoContext(ctx, "created statement entry", "entry_id", entry.ID)
	return entry, nil
}

// List returns statement lines matching the filter. Only the default
// unfiltered first page is cached.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]StatementEntry, error) {
	cacheable := filter == (Filter{}) && orderBy == DefaultOrderBy && repositories.DefaultPage(page)

	entries, err := repositories.CachedList(r.cache, listCacheKey, cacheable, func() ([]StatementEntry, error) {
		return r.storer.List(ctx, filter, orderBy, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list statement entries: %w", err)
	}
	return entries, nil
}
