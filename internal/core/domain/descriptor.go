package domain

import (
	"strings"
	"time"
)

// KeySeparator joins the components of a cache key.
const KeySeparator = "-"

// Descriptor identifies one logical cache for the cache service.
type Descriptor struct {
	// Name is the logical cache name, e.g. "dependencies-gradle".
	Name string `json:"name" yaml:"name"`
	// Baseline is the stable prefix shared by every key of this cache.
	Baseline string `json:"baseline" yaml:"baseline"`
	// PrimaryKey is the exact lookup key for the current declaration state.
	PrimaryKey string `json:"primary_key" yaml:"primaryKey"`
	// RestoreKeys are prefixes tried in order when the primary key misses.
	RestoreKeys []string `json:"restore_keys" yaml:"restoreKeys"`
	// Paths are the patterns of the persisted content.
	Paths []Pattern `json:"paths" yaml:"paths"`
}

// JoinKey joins key components with KeySeparator.
func JoinKey(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

// RestoreResult describes the outcome of a restore attempt.
type RestoreResult struct {
	// Descriptor is the cache that was looked up.
	Descriptor Descriptor `json:"descriptor"`
	// MatchedKey is the key of the restored entry, empty on a miss.
	MatchedKey string `json:"matched_key,omitzero"`
	// Exact is true when MatchedKey equals the primary key.
	Exact bool `json:"exact,omitzero"`
}

// Hit reports whether any entry was restored.
func (r RestoreResult) Hit() bool {
	return r.MatchedKey != ""
}

// CacheEntry is the metadata persisted for a saved cache archive.
type CacheEntry struct {
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	Archive   string    `json:"archive"`
	Files     []string  `json:"files,omitempty"`
	Size      int64     `json:"size,omitzero"`
}
