package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/fs"
	"go.trai.ch/depcache/internal/core/domain"
)

// writeFiles creates every file under root with its content, creating parent directories.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func newHasher(root string) *fs.Hasher {
	resolver := fs.NewResolver(fs.NewWalker(), root)
	resolver.SetHome(func() (string, error) { return filepath.Join(root, "home"), nil })
	return fs.NewHasher(resolver)
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   src/main.go
	//   README.md
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		".git/config": "git config",
		"src/main.go": "package main",
		"README.md":   "# Readme",
	})

	walker := fs.NewWalker()

	files := make(map[string]bool)
	for path, err := range walker.WalkFiles(context.Background(), tmpDir) {
		require.NoError(t, err)
		rel, relErr := filepath.Rel(tmpDir, path)
		require.NoError(t, relErr)
		files[filepath.ToSlash(rel)] = true
	}

	assert.False(t, files[".git/config"], "expected .git/config to be skipped")
	assert.True(t, files["src/main.go"], "expected src/main.go to be found")
	assert.True(t, files["README.md"], "expected README.md to be found")
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	walker := fs.NewWalker()

	count := 0
	for _, err := range walker.WalkFiles(context.Background(), filepath.Join(t.TempDir(), "missing")) {
		require.NoError(t, err)
		count++
	}
	assert.Zero(t, count)
}

func TestWalker_WalkFiles_Canceled(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"a": "a", "b": "b"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var lastErr error
	for _, err := range fs.NewWalker().WalkFiles(ctx, tmpDir) {
		lastErr = err
	}
	require.ErrorIs(t, lastErr, context.Canceled)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"file": "hello world"})
	hasher := newHasher(tmpDir)

	hash1, err := hasher.ComputeFileHash(filepath.Join(tmpDir, "file"))
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(filepath.Join(tmpDir, "file"))
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")

	_, err = hasher.ComputeFileHash(filepath.Join(tmpDir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrFileOpenFailed.Error())
}

func TestHasher_HashFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"proj/pom.xml":         "<project/>",
		"proj/module/pom.xml":  "<project><module/></project>",
		"proj/module/src/A.kt": "class A",
	})
	hasher := newHasher(tmpDir)
	patterns := []domain.Pattern{domain.Include("proj/**/pom.xml")}
	ctx := context.Background()

	hash1, err := hasher.HashFiles(ctx, patterns)
	require.NoError(t, err)
	assert.Len(t, hash1, 16)

	// Unrelated files do not affect the digest.
	writeFiles(t, tmpDir, map[string]string{"proj/module/src/A.kt": "class A2"})
	hash2, err := hasher.HashFiles(ctx, patterns)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)

	// Declaration content does.
	writeFiles(t, tmpDir, map[string]string{"proj/module/pom.xml": "<project><changed/></project>"})
	hash3, err := hasher.HashFiles(ctx, patterns)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3)

	// So does removing a declaration file.
	require.NoError(t, os.Remove(filepath.Join(tmpDir, "proj", "pom.xml")))
	hash4, err := hasher.HashFiles(ctx, patterns)
	require.NoError(t, err)
	assert.NotEqual(t, hash3, hash4)
}

func TestHasher_HashFiles_NoMatches(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := newHasher(tmpDir)

	hash1, err := hasher.HashFiles(context.Background(), []domain.Pattern{domain.Include("nothing/**/pom.xml")})
	require.NoError(t, err)

	hash2, err := hasher.HashFiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "empty selections share one stable digest")
}

func TestHasher_HashFiles_IndependentOfCheckoutLocation(t *testing.T) {
	files := map[string]string{
		"proj/build.gradle.kts":     "plugins {}",
		"proj/gradle.properties":    "org.gradle.caching=true",
		"proj/app/build.gradle.kts": "dependencies {}",
	}
	patterns := []domain.Pattern{
		domain.Include("proj/**/*.gradle.kts"),
		domain.Include("proj/**/*.properties"),
	}

	first := t.TempDir()
	second := t.TempDir()
	writeFiles(t, first, files)
	writeFiles(t, second, files)

	hash1, err := newHasher(first).HashFiles(context.Background(), patterns)
	require.NoError(t, err)
	hash2, err := newHasher(second).HashFiles(context.Background(), patterns)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)
}
