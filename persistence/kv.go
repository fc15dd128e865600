// Package persistence provides the durable key-value capability the catalog store
// mirrors its collections into. Values are whole-collection JSON snapshots.
package persistence

import (
	"context"
	"errors"
)

// KeyValueStore is a durable map of snapshot blobs.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
}

var ErrEmptyKey = errors.New("persistence: empty key")
