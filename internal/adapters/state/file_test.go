package state_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/state"
	"go.trai.ch/depcache/internal/core/domain"
)

func TestFile_StoreAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	descriptors := map[string]domain.Descriptor{
		"maven": {
			Name:        "dependencies-maven",
			Baseline:    "dependencies-maven-Linux",
			PrimaryKey:  "dependencies-maven-Linux-main-0123456789abcdef",
			RestoreKeys: []string{"dependencies-maven-Linux-main", "dependencies-maven-Linux-main"},
			Paths:       []domain.Pattern{domain.Include("~/.m2/repository")},
		},
	}

	require.NoError(t, state.NewFile(path).Store(descriptors))

	// A fresh instance reads what the first one wrote.
	got, err := state.Opener{}.Open(path).Load()
	require.NoError(t, err)
	assert.Equal(t, descriptors, got)
}

func TestFile_PatternsAreStoredAsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	require.NoError(t, state.NewFile(path).Store(map[string]domain.Descriptor{
		"gradle": {Paths: []domain.Pattern{domain.Exclude("~/.gradle/caches/modules-2/gc.properties")}},
	}))

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), `"!~/.gradle/caches/modules-2/gc.properties"`))
}

func TestFile_LoadMissing(t *testing.T) {
	got, err := state.NewFile(filepath.Join(t.TempDir(), "missing.json")).Load()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFile_LoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	got, err := state.NewFile(path).Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFile_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := state.NewFile(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrStateReadFailed.Error())
}
