package cache_test

import (
	"testing"
	"time"

	"github.com/jrazmi/shopkeep/sdk/cache"
)

func TestCache_SetGetDelete(t *testing.T) {
	c := cache.New()

	c.Set("k", []string{"a", "b"})

	got, ok := cache.Get[[]string](c, "k")
	if !ok {
		t.Fatalf("expected hit for k")
	}
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("expected [a b], got %v", got)
	}

	c.Delete("k")
	if _, ok := cache.Get[[]string](c, "k"); ok {
		t.Errorf("expected miss after delete")
	}
}

func TestCache_TypeMismatchReadsAsMiss(t *testing.T) {
	c := cache.New()
	c.Set("k", "a string")

	if _, ok := cache.Get[int](c, "k"); ok {
		t.Errorf("expected miss on type mismatch")
	}
}

func TestCache_TTLClamped(t *testing.T) {
	low := cache.New(cache.WithTTL(time.Second))
	if low.TTL() != cache.MinTTL {
		t.Errorf("expected %v, got %v", cache.MinTTL, low.TTL())
	}

	high := cache.New(cache.WithTTL(time.Hour))
	if high.TTL() != cache.MaxTTL {
		t.Errorf("expected %v, got %v", cache.MaxTTL, high.TTL())
	}

	mid := cache.New(cache.WithTTL(90 * time.Second))
	if mid.TTL() != 90*time.Second {
		t.Errorf("expected 90s, got %v", mid.TTL())
	}
}

func TestCache_NewFromEnv(t *testing.T) {
	t.Setenv("LEDGER_CACHE_TTL", "200s")

	c, err := cache.NewFromEnv("LEDGER")
	if err != nil {
		t.Fatalf("new from env: %v", err)
	}
	if c.TTL() != 200*time.Second {
		t.Errorf("expected 200s, got %v", c.TTL())
	}
}

func TestCache_NilIsDisabled(t *testing.T) {
	var c *cache.Cache

	c.Set("k", 1)
	c.Delete("k")
	c.Flush()

	if _, ok := cache.Get[int](c, "k"); ok {
		t.Errorf("expected miss on nil cache")
	}
	if c.TTL() != 0 {
		t.Errorf("expected zero ttl on nil cache")
	}
}
