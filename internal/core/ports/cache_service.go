package ports

import (
	"context"

	"go.trai.ch/depcache/internal/core/domain"
)

// CacheService stores cache archives by key.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache_service.go -destination=mocks/mock_cache_service.go -package=mocks
type CacheService interface {
	// Restore looks up the primary key, then each restore key as a prefix, and extracts
	// the first match. A miss returns a zero MatchedKey and a nil error.
	Restore(ctx context.Context, d domain.Descriptor) (domain.RestoreResult, error)

	// Save stores files under the descriptor's primary key.
	// It returns domain.ErrEntryExists when the key is already stored.
	Save(ctx context.Context, d domain.Descriptor, files []string) error

	// Has reports whether an entry with exactly this key exists.
	Has(ctx context.Context, key string) (bool, error)
}

// StateStore hands descriptors from the restore phase to the save phase.
type StateStore interface {
	// Load returns the stored descriptors keyed by cache name, or an empty map.
	Load() (map[string]domain.Descriptor, error)
	// Store replaces the stored descriptors.
	Store(descriptors map[string]domain.Descriptor) error
}

// CacheServiceFactory opens the cache service rooted at a store directory.
type CacheServiceFactory interface {
	Open(dir string) (CacheService, error)
}

// StateStoreFactory opens the state store persisted at path.
type StateStoreFactory interface {
	Open(path string) StateStore
}
