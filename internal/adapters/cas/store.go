// Package cas implements the local content-addressed cache store.
package cas

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	entriesDir    = "entries"
	archivesDir   = "archives"
	archiveSuffix = ".tar.zst"
)

var _ ports.CacheService = (*Store)(nil)

// Store implements ports.CacheService on a local directory.
//
// Every saved key gets a JSON entry under entries/ and a zstd-compressed tar
// under archives/, both named by the SHA-256 of the key.
type Store struct {
	dir string
	// target is the directory archived paths are relative to.
	target string
	now    func() time.Time
	mu     sync.Mutex
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) (*Store, error) {
	return newStore(dir, filesystemRoot())
}

func newStore(dir, target string) (*Store, error) {
	s := &Store{
		dir:    filepath.Clean(dir),
		target: target,
		now:    time.Now,
	}
	for _, sub := range []string{entriesDir, archivesDir} {
		if err := os.MkdirAll(filepath.Join(s.dir, sub), 0o750); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.dir)
		}
	}
	return s, nil
}

// Dir returns the store root.
func (s *Store) Dir() string {
	return s.dir
}

// Has reports whether an entry for key exists.
func (s *Store) Has(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(s.entryPath(key))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
}

// Restore extracts the best entry for d. The primary key is tried as an exact
// match first, then each restore key selects the newest entry it prefixes.
func (s *Store) Restore(ctx context.Context, d domain.Descriptor) (domain.RestoreResult, error) {
	result := domain.RestoreResult{Descriptor: d}

	entry, err := s.lookup(d)
	if err != nil || entry == nil {
		return result, err
	}

	if err := s.extract(ctx, filepath.Join(s.dir, archivesDir, entry.Archive)); err != nil {
		return result, zerr.With(err, "key", entry.Key)
	}

	result.MatchedKey = entry.Key
	result.Exact = entry.Key == d.PrimaryKey
	return result, nil
}

func (s *Store) lookup(d domain.Descriptor) (*domain.CacheEntry, error) {
	entry, err := s.readEntry(s.entryPath(d.PrimaryKey))
	if err != nil || entry != nil {
		return entry, err
	}
	if len(d.RestoreKeys) == 0 {
		return nil, nil
	}

	entries, err := s.entries()
	if err != nil {
		return nil, err
	}
	for _, prefix := range d.RestoreKeys {
		var newest *domain.CacheEntry
		for i := range entries {
			e := &entries[i]
			if !strings.HasPrefix(e.Key, prefix) {
				continue
			}
			if newest == nil || e.CreatedAt.After(newest.CreatedAt) {
				newest = e
			}
		}
		if newest != nil {
			return newest, nil
		}
	}
	return nil, nil
}

// Save archives files under the primary key of d.
// It returns domain.ErrEntryExists when the key is already stored.
func (s *Store) Save(ctx context.Context, d domain.Descriptor, files []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.Has(ctx, d.PrimaryKey)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEntryExists
	}

	name := keyDigest(d.PrimaryKey) + archiveSuffix
	archived, size, err := s.archive(ctx, filepath.Join(s.dir, archivesDir, name), files)
	if err != nil {
		return zerr.With(err, "key", d.PrimaryKey)
	}

	return s.writeEntry(domain.CacheEntry{
		Key:       d.PrimaryKey,
		CreatedAt: s.now().UTC(),
		Archive:   name,
		Files:     archived,
		Size:      size,
	})
}

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.dir, entriesDir, keyDigest(key)+".json")
}

func (s *Store) readEntry(path string) (*domain.CacheEntry, error) {
	//nolint:gosec // Path is derived from the store root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	return &entry, nil
}

func (s *Store) entries() ([]domain.CacheEntry, error) {
	dir := filepath.Join(s.dir, entriesDir)
	items, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", dir)
	}

	entries := make([]domain.CacheEntry, 0, len(items))
	for _, item := range items {
		if item.IsDir() || filepath.Ext(item.Name()) != ".json" {
			continue
		}
		entry, err := s.readEntry(filepath.Join(dir, item.Name()))
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func (s *Store) writeEntry(entry domain.CacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	path := s.entryPath(entry.Key)
	if err := writeFileAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func keyDigest(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// filesystemRoot returns the root of the volume holding the working directory.
func filesystemRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return string(filepath.Separator)
	}
	return filepath.VolumeName(wd) + string(filepath.Separator)
}
