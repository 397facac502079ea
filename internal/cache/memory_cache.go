package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const DefaultTTL = 300 * time.Second

// Observer receives cache events, e.g. to export them as metrics.
type Observer interface {
	Hit()
	Miss()
	Expired(n int)
	Size(n int)
}

type noopObserver struct{}

func (noopObserver) Hit()        {}
func (noopObserver) Miss()       {}
func (noopObserver) Expired(int) {}
func (noopObserver) Size(int)    {}

type entry struct {
	value     any
	expiresAt time.Time
}

// TTLCache is an in-memory Store. Expired entries are removed lazily by
// Get/Has, or eagerly by Cleanup; nothing runs in the background unless
// StartJanitor is called.
type TTLCache struct {
	mu         sync.Mutex
	items      map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
	observer   Observer
}

type Option func(*TTLCache)

func WithClock(now func() time.Time) Option {
	return func(c *TTLCache) {
		c.now = now
	}
}

func WithObserver(o Observer) Option {
	return func(c *TTLCache) {
		if o != nil {
			c.observer = o
		}
	}
}

func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *TTLCache) {
		if ttl > 0 {
			c.defaultTTL = ttl
		}
	}
}

func NewTTLCache(opts ...Option) *TTLCache {
	c := &TTLCache{
		items:      make(map[string]entry),
		defaultTTL: DefaultTTL,
		now:        time.Now,
		observer:   noopObserver{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Set stores value until now+ttl, replacing any previous entry.
// A non-positive ttl selects the default TTL.
func (c *TTLCache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	c.items[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	size := len(c.items)
	c.mu.Unlock()

	c.observer.Size(size)
}

func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.Lock()
	value, ok := c.lookup(key)
	c.mu.Unlock()

	if ok {
		c.observer.Hit()
	} else {
		c.observer.Miss()
	}

	return value, ok
}

func (c *TTLCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.lookup(key)

	return ok
}

// lookup must be called with mu held.
func (c *TTLCache) lookup(key string) (any, bool) {
	e, ok := c.items[key]
	if !ok {
		return nil, false
	}

	if c.now().After(e.expiresAt) {
		delete(c.items, key)
		c.observer.Expired(1)
		c.observer.Size(len(c.items))

		return nil, false
	}

	return e.value, true
}

func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	size := len(c.items)
	c.mu.Unlock()

	c.observer.Size(size)
}

func (c *TTLCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]entry)
	c.mu.Unlock()

	c.observer.Size(0)
}

// Size counts every stored entry, including expired ones that have not
// been touched or swept yet.
func (c *TTLCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Cleanup removes all entries whose expiry has passed and returns how
// many were removed.
func (c *TTLCache) Cleanup() int {
	c.mu.Lock()

	now := c.now()
	removed := 0

	for key, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, key)
			removed++
		}
	}

	size := len(c.items)
	c.mu.Unlock()

	if removed > 0 {
		c.observer.Expired(removed)
	}
	c.observer.Size(size)

	return removed
}

// StartJanitor runs Cleanup every interval until ctx is cancelled.
func (c *TTLCache) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := c.Cleanup(); removed > 0 {
					slog.Debug("cache cleanup", slog.Int("removed", removed), slog.Int("size", c.Size()))
				}
			}
		}
	}()
}
