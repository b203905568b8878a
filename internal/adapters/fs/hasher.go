package fs

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileHasher = (*Hasher)(nil)

// Hasher computes content digests over the files selected by a Resolver.
type Hasher struct {
	resolver *Resolver
}

// NewHasher creates a new Hasher.
func NewHasher(resolver *Resolver) *Hasher {
	return &Hasher{resolver: resolver}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashFiles computes one digest over the names and contents of every selected file.
// Names are recorded relative to the resolver root (or the home directory) so the
// digest does not depend on where the workspace is checked out.
func (h *Hasher) HashFiles(ctx context.Context, patterns []domain.Pattern) (string, error) {
	files, err := h.resolver.ResolvePaths(ctx, patterns)
	if err != nil {
		return "", err
	}

	home, _ := h.resolver.home()
	digest := xxhash.New()
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := h.hashFile(file, portablePath(file, h.resolver.Root(), home), digest); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) hashFile(path, name string, digest io.Writer) error {
	_, _ = io.WriteString(digest, name)
	_, _ = digest.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(digest, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

// portablePath renders file relative to root, or as "~/..." below home, falling
// back to the absolute slash path.
func portablePath(file, root, home string) string {
	if rel, ok := relativeTo(file, root); ok {
		return rel
	}
	if home != "" {
		if rel, ok := relativeTo(file, home); ok {
			return "~/" + rel
		}
	}
	return filepath.ToSlash(file)
}

func relativeTo(file, dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	rel, err := filepath.Rel(dir, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
