package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// InMemory provides an in-memory TTL cache with automatic cleanup.
type InMemory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// InMemoryOption configures the InMemory cache.
type InMemoryOption func(*InMemory)

// WithClock overrides the time source, for deterministic expiry tests.
func WithClock(now func() time.Time) InMemoryOption {
	return func(c *InMemory) {
		c.now = now
	}
}

// NewInMemory creates an in-memory cache with the given TTL.
func NewInMemory(ttl time.Duration, opts ...InMemoryOption) *InMemory {
	c := &InMemory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.cleanupLoop()
	return c
}

// Get retrieves a value. Absent or expired keys return ErrNotFound.
func (c *InMemory) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	if c.now().After(e.expiresAt) {
		return "", ErrNotFound
	}
	return e.value, nil
}

// Put stores a value with the configured TTL.
func (c *InMemory) Put(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
	return nil
}

// cleanupLoop periodically removes expired entries.
func (c *InMemory) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *InMemory) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
