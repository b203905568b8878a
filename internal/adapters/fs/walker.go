// Package fs provides file system adapters for resolving, walking and hashing cache paths.
package fs

import (
	"context"
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct {
	// skipDirs holds directory names that are never descended into.
	skipDirs map[string]struct{}
}

// NewWalker creates a new Walker that skips version control metadata directories.
func NewWalker() *Walker {
	return &Walker{
		skipDirs: map[string]struct{}{
			".git": {},
			".jj":  {},
		},
	}
}

// WalkFiles yields every regular file below root together with walk errors.
// A missing root yields nothing. Iteration stops when the context is canceled,
// yielding the context error last.
func (w *Walker) WalkFiles(ctx context.Context, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root && isNotExist(err) {
					return filepath.SkipAll
				}
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if d.IsDir() {
				if _, skip := w.skipDirs[d.Name()]; skip && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}
