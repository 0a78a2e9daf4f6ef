package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Entry expiry is the one property the correlation caches depend on: a stale
// requestId binding must read as a miss, not as a live entry.
func TestInMemoryExpiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := NewInMemory(time.Minute, WithClock(clock))
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "req-1", "data-req-1"))

	got, err := c.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "data-req-1", got)

	now = now.Add(2 * time.Minute)

	_, err = c.Get(ctx, "req-1")
	assert.True(t, errors.Is(err, ErrNotFound), "expired entry must read as a miss")
}

func TestInMemoryMiss(t *testing.T) {
	c := NewInMemory(time.Minute)

	_, err := c.Get(context.Background(), "absent")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInMemoryConcurrentReaders(t *testing.T) {
	c := NewInMemory(time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Put(ctx, "k", "v"))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_, _ = c.Get(ctx, "k")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
