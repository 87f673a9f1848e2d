package cache

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[string], clock *fakeClock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "1")
				if v, ok := c.Get("a"); !ok || v != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				c.Set("a", "1")
				clock.advance(60 * time.Millisecond)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
				if c.Size() != 0 {
					t.Errorf("expected expired key to be removed, size=%d", c.Size())
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "1")
				c.Set("b", "2")
				c.Set("c", "3")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get("b"); !ok || v != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || v != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				c.Set("a", "1")
				clock.advance(30 * time.Millisecond)
				c.Set("a", "2")
				clock.advance(30 * time.Millisecond)
				if v, ok := c.Get("a"); !ok || v != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "1")
				c.Delete("a")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be deleted")
				}
			},
		},
		{
			name:     "zero ttl disables cache",
			capacity: 2,
			ttl:      0,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "1")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected nothing to be cached")
				}
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				if err := c.Start(ctx); err != nil {
					t.Fatalf("start: %v", err)
				}

				c.Set("a", "1")
				c.Set("b", "2")
				clock.advance(60 * time.Millisecond)

				c.cleanup()

				if c.Size() != 0 {
					t.Errorf("expected janitor cleanup to remove expired keys, size=%d", c.Size())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache[string](tt.capacity, tt.ttl)
			c.now = clock.now
			tt.actions(c, clock, t)
		})
	}
}
