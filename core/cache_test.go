package core

import (
	"fmt"
	"testing"
	"time"
)

func testSession(id string) *Session {
	return &Session{
		ID:        id,
		UserID:    "user-" + id,
		TokenHash: "hash-" + id,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestInMemoryCache_SetGet(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{TTL: time.Minute, MaxSize: 10})
	session := testSession("s1")

	if err := cache.Set(session.TokenHash, session); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(session.TokenHash)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != session.ID {
		t.Errorf("Get() returned session %q, want %q", got.ID, session.ID)
	}
}

func TestInMemoryCache_Miss(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{TTL: time.Minute, MaxSize: 10})

	if _, err := cache.Get("absent"); err != ErrCacheNotFound {
		t.Fatalf("Get() error = %v, want ErrCacheNotFound", err)
	}

	stats := cache.Stats()
	if stats.Misses != 1 {
		t.Errorf("misses = %d, want 1", stats.Misses)
	}
}

func TestInMemoryCache_TTLExpiry(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{TTL: time.Millisecond, MaxSize: 10})
	session := testSession("s1")

	if err := cache.Set(session.TokenHash, session); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := cache.Get(session.TokenHash); err != ErrCacheNotFound {
		t.Fatalf("Get() after TTL error = %v, want ErrCacheNotFound", err)
	}
	if cache.Len() != 0 {
		t.Errorf("expired entry not removed, len = %d", cache.Len())
	}
}

func TestInMemoryCache_EvictsAtMaxSize(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{TTL: time.Minute, MaxSize: 3})

	for i := 0; i < 5; i++ {
		s := testSession(fmt.Sprintf("s%d", i))
		if err := cache.Set(s.TokenHash, s); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	if cache.Len() > 3 {
		t.Errorf("len = %d, want at most 3", cache.Len())
	}
	if stats := cache.Stats(); stats.Evictions == 0 {
		t.Error("expected evictions once full")
	}
}

func TestInMemoryCache_DeleteAndClear(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{TTL: time.Minute, MaxSize: 10})
	s1, s2 := testSession("s1"), testSession("s2")
	_ = cache.Set(s1.TokenHash, s1)
	_ = cache.Set(s2.TokenHash, s2)

	if err := cache.Delete(s1.TokenHash); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := cache.Get(s1.TokenHash); err != ErrCacheNotFound {
		t.Error("deleted entry still resolvable")
	}

	// Deleting an absent key is not an error
	if err := cache.Delete("absent"); err != nil {
		t.Fatalf("Delete(absent) error = %v", err)
	}

	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("len after Clear() = %d, want 0", cache.Len())
	}
}

func TestInMemoryCache_Defaults(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{})

	if cache.ttl != 5*time.Minute {
		t.Errorf("default TTL = %v, want 5m", cache.ttl)
	}
	if cache.maxSize != 500 {
		t.Errorf("default max size = %d, want 500", cache.maxSize)
	}
}
