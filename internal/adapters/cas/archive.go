package cas

import (
	"archive/tar"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// archive writes the regular files among files to a zstd-compressed tar at dst.
// It returns the archived entry names and the archive size.
func (s *Store) archive(ctx context.Context, dst string, files []string) ([]string, int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".tmp-*"+archiveSuffix)
	if err != nil {
		return nil, 0, zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	enc, err := zstd.NewWriter(tmp)
	if err != nil {
		return nil, 0, zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	tw := tar.NewWriter(enc)

	var names []string
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			_ = enc.Close()
			return nil, 0, err
		}
		name, ok, err := s.addFile(tw, file)
		if err != nil {
			_ = enc.Close()
			return nil, 0, zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "file", file)
		}
		if ok {
			names = append(names, name)
		}
	}

	if err := tw.Close(); err != nil {
		_ = enc.Close()
		return nil, 0, zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, 0, zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}

	info, err := tmp.Stat()
	if err != nil {
		return nil, 0, zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return nil, 0, zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return nil, 0, zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}
	return names, info.Size(), nil
}

// addFile appends file to tw. Files that vanished or are not regular files are skipped.
func (s *Store) addFile(tw *tar.Writer, file string) (string, bool, error) {
	info, err := os.Lstat(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	if !info.Mode().IsRegular() {
		return "", false, nil
	}

	name, err := s.entryName(file)
	if err != nil {
		return "", false, err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return "", false, err
	}
	hdr.Name = name

	//nolint:gosec // Files are resolved from configured cache paths
	f, err := os.Open(file)
	if err != nil {
		return "", false, err
	}
	defer func() { _ = f.Close() }()

	if err := tw.WriteHeader(hdr); err != nil {
		return "", false, err
	}
	if _, err := io.Copy(tw, f); err != nil {
		return "", false, err
	}
	return name, true, nil
}

// entryName returns the slash-separated name of file relative to the store target.
func (s *Store) entryName(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(s.target, abs)
	if err != nil {
		return "", err
	}
	name := filepath.ToSlash(rel)
	if !safeName(name) {
		return "", zerr.With(domain.ErrUnsafeArchivePath, "path", file)
	}
	return name, nil
}

// extract unpacks the archive at src below the store target.
func (s *Store) extract(ctx context.Context, src string) error {
	//nolint:gosec // Path is derived from the store root
	f, err := os.Open(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", src)
	}
	defer func() { _ = f.Close() }()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	defer dec.Close()

	tr := tar.NewReader(dec)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, domain.ErrExtractFailed.Error())
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		if !safeName(hdr.Name) {
			return zerr.With(domain.ErrUnsafeArchivePath, "path", hdr.Name)
		}

		if err := writeEntryFile(filepath.Join(s.target, filepath.FromSlash(hdr.Name)), hdr, tr); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", hdr.Name)
		}
	}
}

func writeEntryFile(dst string, hdr *tar.Header, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	//nolint:gosec // Destination is checked by safeName
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, hdr.FileInfo().Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, hdr.ModTime, hdr.ModTime)
}

// safeName reports whether name is a clean relative path that stays below its root.
func safeName(name string) bool {
	if name == "" || path.IsAbs(name) || path.Clean(name) != name {
		return false
	}
	return name != ".." && !strings.HasPrefix(name, "../")
}
