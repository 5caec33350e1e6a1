// Package store provides the persistent key-value layer. Every collection in
// the application lives under a single namespaced key, so the contract is a
// small byte-oriented KV surface rather than anything relational.
package store

import (
	"context"
	"errors"
	"fmt"

	"soulshub/internal/config"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is the persistent key-value contract. Implementations must be safe
// for concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists every stored key beginning with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	// WipePrefix removes every key beginning with prefix.
	WipePrefix(ctx context.Context, prefix string) error
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// Open constructs the store backend selected by configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		return OpenSQLite(cfg.StorePath)
	case "redis":
		return OpenRedis(cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
