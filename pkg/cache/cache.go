package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache потокобезопасный LRU кеш с TTL на каждую запись.
type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	cache    map[string]*list.Element
	ttl      time.Duration
	now      func() time.Time
}

func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCache[V]{
		capacity: capacity,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	ele, ok := c.cache[key]
	if !ok {
		return zero, false
	}

	ent := ele.Value.(*entry[V])
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		return zero, false
	}
	c.ll.MoveToFront(ele)
	return ent.value, true
}

func (c *LRUCache[V]) Set(key string, value V) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiration = c.now().Add(c.ttl)
		return
	}

	ent := &entry[V]{key: key, value: value, expiration: c.now().Add(c.ttl)}
	ele := c.ll.PushFront(ent)
	c.cache[key] = ele

	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
}

func (c *LRUCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache[V]) removeOldest() {
	ele := c.ll.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache[V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	ent := e.Value.(*entry[V])
	delete(c.cache, ent.key)
}

func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start запускает фоновую очистку просроченных записей до отмены ctx.
func (c *LRUCache[V]) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache[V]) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		ent := e.Value.(*entry[V])
		if now.After(ent.expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
