// Package cache provides the TTL key-value adapter used for correlating
// asynchronous gateway callbacks back to originating requests. Entries are
// written once and read at most once; the TTL bounds memory held for callbacks
// that never arrive.
package cache

import (
	"context"

	"hiu/internal/sentinel"
)

// Adapter is a TTL-bounded key-value store. Get returns sentinel.ErrNotFound
// (optionally wrapped) when the key is absent or expired.
type Adapter interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// ErrNotFound re-exports the sentinel miss error for call sites that only
// import this package.
var ErrNotFound = sentinel.ErrNotFound
