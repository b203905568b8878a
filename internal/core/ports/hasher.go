// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/depcache/internal/core/domain"
)

// FileHasher computes a content digest over the files matched by a set of patterns.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type FileHasher interface {
	// HashFiles returns a stable digest of every file matched by the positive patterns
	// and not matched by a negated one. No matches is not an error.
	HashFiles(ctx context.Context, patterns []domain.Pattern) (string, error)
}

// PathResolver expands patterns to the concrete files they match.
type PathResolver interface {
	// ResolvePaths returns the sorted absolute paths of every matched file.
	ResolvePaths(ctx context.Context, patterns []domain.Pattern) ([]string, error)
}
