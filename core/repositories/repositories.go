// Package repositories holds the shared pieces of the repository layer:
// capability interfaces the entity stores implement, page defaults, and the
// cache keys the ledger repositories invalidate on write.
package repositories

import (
	"context"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
)

// DefaultPageLimit is the page size a listing gets when the caller does not
// ask for one. Only default, unfiltered first pages are cached.
const DefaultPageLimit = 20

// Capability interfaces for entity stores. Each repository package declares
// a Storer interface embedding the capabilities its entity supports.

type Creator[T any, C any] interface {
	Create(ctx context.Context, payload C) (T, error)
}

type Getter[T any, ID comparable] interface {
	Get(ctx context.Context, id ID) (T, error)
}

type Lister[T any, F any] interface {
	List(ctx context.Context, filter F, orderBy fop.By, page fop.PageInt64Cursor) ([]T, error)
}

type Updater[ID comparable, U any] interface {
	Update(ctx context.Context, id ID, updates U) error
}

type Deleter[ID comparable] interface {
	Delete(ctx context.Context, id ID) error
}

// SummaryCacheKey holds the ledger financial summary. Repositories whose
// tables feed the summary delete it inside their write methods.
const SummaryCacheKey = "ledger:summary"

// ListCacheKey returns the key under which an entity's default listing is
// cached.
func ListCacheKey(entity string) string {
	return "ledger:" + entity + ":list"
}

// CachedList serves a listing from the cache when the caller asked for the
// default page, loading and priming the key on a miss. Non-default pages
// and filtered reads always go to the store.
func CachedList[T any](c *cache.Cache, key string, cacheable bool, load func() ([]T, error)) ([]T, error) {
	if cacheable {
		if cached, ok := cache.Get[[]T](c, key); ok {
			return cached, nil
		}
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	if cacheable {
		c.Set(key, items)
	}

	return items, nil
}

// DefaultPage reports whether a listing request is the default unfiltered
// first page, the only shape that gets cached.
func DefaultPage(page fop.PageInt64Cursor) bool {
	return page.Cursor == 0 && page.Limit == DefaultPageLimit
}
