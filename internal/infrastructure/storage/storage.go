package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has no value.
var ErrKeyNotFound = errors.New("key not found")

// Store is an opaque, string-keyed persisted store. Values are whole
// strings; all structured data is serialized to and from text by the
// caller. Clear removes every key and is the sole bulk-deletion path
// (used by logout).
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
