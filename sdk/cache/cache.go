// Package cache provides a TTL keyed store for read-through query caching.
// Entries expire on their own; writers delete the keys they invalidate.
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jrazmi/shopkeep/sdk/environment"
)

// Entry lifetimes are kept inside this band regardless of configuration.
const (
	MinTTL = 60 * time.Second
	MaxTTL = 300 * time.Second
)

// Options is the exportable configuration struct
type Options struct {
	TTL     time.Duration `yaml:"ttl" json:"ttl" env:"CACHE_TTL" default:"120s"`
	Cleanup time.Duration `yaml:"cleanup" json:"cleanup" env:"CACHE_CLEANUP" default:"5m"`
}

type Option func(*Options)

func WithTTL(ttl time.Duration) Option {
	return func(o *Options) {
		o.TTL = ttl
	}
}

func WithCleanup(interval time.Duration) Option {
	return func(o *Options) {
		o.Cleanup = interval
	}
}

// Cache wraps an expiring in-memory store.
type Cache struct {
	store *gocache.Cache
	ttl   time.Duration
}

func New(opts ...Option) *Cache {
	options := Options{
		TTL:     120 * time.Second,
		Cleanup: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return newCache(options)
}

func NewFromEnv(prefix string, opts ...Option) (*Cache, error) {
	var options Options
	if err := environment.ParseEnvTags(prefix, &options); err != nil {
		return nil, fmt.Errorf("parsing cache config: %w", err)
	}
	for _, opt := range opts {
		opt(&options)
	}
	return newCache(options), nil
}

func newCache(cfg Options) *Cache {
	ttl := cfg.TTL
	if ttl < MinTTL {
		ttl = MinTTL
	}
	if ttl > MaxTTL {
		ttl = MaxTTL
	}
	cleanup := cfg.Cleanup
	if cleanup <= 0 {
		cleanup = 5 * time.Minute
	}
	return &Cache{
		store: gocache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

// A nil *Cache is a valid disabled cache: reads miss and writes are no-ops.

// TTL reports the effective entry lifetime.
func (c *Cache) TTL() time.Duration {
	if c == nil {
		return 0
	}
	return c.ttl
}

func (c *Cache) Set(key string, value any) {
	if c == nil {
		return
	}
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Delete removes the given keys. Missing keys are ignored.
func (c *Cache) Delete(keys ...string) {
	if c == nil {
		return
	}
	for _, key := range keys {
		c.store.Delete(key)
	}
}

func (c *Cache) Flush() {
	if c == nil {
		return
	}
	c.store.Flush()
}

// Get returns the value stored under key when present and of type T.
// A type mismatch reads as a miss so callers fall through to the source.
func Get[T any](c *Cache, key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	v, ok := c.store.Get(key)
	if !ok {
		return zero, false
	}
	value, ok := v.(T)
	if !ok {
		return zero, false
	}
	return value, true
}
