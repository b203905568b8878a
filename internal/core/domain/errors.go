package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no configuration file exists in the working directory or its parents.
	ErrConfigNotFound = zerr.New("could not find depcache.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownCacheKind is returned when a cache declares an unsupported kind.
	ErrUnknownCacheKind = zerr.New("unknown cache kind, expected 'gradle', 'maven' or 'custom'")

	// ErrMissingCacheName is returned when a custom cache has no name.
	ErrMissingCacheName = zerr.New("custom cache requires a name")

	// ErrInvalidCacheName is returned when a cache name cannot be used inside a key.
	ErrInvalidCacheName = zerr.New("cache name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrDuplicateCacheName is returned when two caches resolve to the same name.
	ErrDuplicateCacheName = zerr.New("duplicate cache name")

	// ErrMissingCachePaths is returned when a custom cache declares no paths or no dependencies.
	ErrMissingCachePaths = zerr.New("custom cache requires paths and dependencies")

	// ErrNoCachesConfigured is returned when the configuration declares no caches.
	ErrNoCachesConfigured = zerr.New("no caches configured")

	// ErrHashFailed is returned when the declaration files cannot be hashed.
	ErrHashFailed = zerr.New("failed to hash dependency declarations")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrInvalidPattern is returned when a glob pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid path pattern")

	// ErrHomeDirUnavailable is returned when a "~" pattern cannot be expanded.
	ErrHomeDirUnavailable = zerr.New("failed to resolve home directory")

	// ErrEventReadFailed is returned when the CI event payload cannot be read.
	ErrEventReadFailed = zerr.New("failed to read CI event payload")

	// ErrEventParseFailed is returned when the CI event payload cannot be parsed.
	ErrEventParseFailed = zerr.New("failed to parse CI event payload")

	// ErrStoreCreateFailed is returned when the cache store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache store directory")

	// ErrStoreReadFailed is returned when a cache entry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrStoreUnmarshalFailed is returned when a cache entry cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrEntryExists is returned when saving a key that is already stored.
	ErrEntryExists = zerr.New("cache entry already exists")

	// ErrArchiveFailed is returned when a cache archive cannot be written.
	ErrArchiveFailed = zerr.New("failed to archive cache paths")

	// ErrExtractFailed is returned when a cache archive cannot be extracted.
	ErrExtractFailed = zerr.New("failed to extract cache archive")

	// ErrUnsafeArchivePath is returned when an archive entry would escape its destination.
	ErrUnsafeArchivePath = zerr.New("archive entry has unsafe path")

	// ErrStateReadFailed is returned when the restore state cannot be read.
	ErrStateReadFailed = zerr.New("failed to read restore state")

	// ErrStateWriteFailed is returned when the restore state cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write restore state")

	// ErrRestoreFailed is returned when restoring a cache fails.
	ErrRestoreFailed = zerr.New("cache restore failed")

	// ErrSaveFailed is returned when saving a cache fails.
	ErrSaveFailed = zerr.New("cache save failed")
)
