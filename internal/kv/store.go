// Package kv provides the key-value backends the catalog blob is persisted in.
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: key not found")

// Store is a get/set-by-key byte store. Implementations are safe for
// concurrent use.
type Store interface {
	// Get returns ErrNotFound when key has never been set.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces any previous value of key.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
