// Package state persists cache descriptors between the restore and save phases.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*File)(nil)

// File implements ports.StateStore using a flat JSON file.
type File struct {
	path string
}

// NewFile creates a File backed by path.
func NewFile(path string) *File {
	return &File{path: filepath.Clean(path)}
}

// Load returns the stored descriptors. A missing or empty file yields an empty map.
func (f *File) Load() (map[string]domain.Descriptor, error) {
	descriptors := make(map[string]domain.Descriptor)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return descriptors, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", f.path)
	}

	if len(data) == 0 {
		return descriptors, nil
	}

	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", f.path)
	}
	return descriptors, nil
}

// Store replaces the stored descriptors.
func (f *File) Store(descriptors map[string]domain.Descriptor) error {
	data, err := json.MarshalIndent(descriptors, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", f.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", f.path)
	}
	return nil
}
