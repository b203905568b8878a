// Package config provides the configuration loader for depcache.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultStateFile is the restore state file, relative to the configuration root.
	DefaultStateFile = ".depcache-state.json"
	// defaultStoreDir is the cache store, relative to the home directory.
	defaultStoreDir = ".cache/depcache"
)

var validCacheNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	home   func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, home: os.UserHomeDir}
}

// Load reads the configuration. A file location is read directly; a directory
// location is searched for depcache.yaml, walking up to the filesystem root.
func (l *Loader) Load(location string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(location)
	if err != nil {
		return nil, err
	}

	var file Configfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	l.Logger.Debug(fmt.Sprintf("loaded configuration from %s", configPath))

	root := filepath.Dir(configPath)
	storeDir, err := l.resolveStoreDir(root, file.Store)
	if err != nil {
		return nil, err
	}

	caches, err := buildCaches(file.Caches)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return &domain.Config{
		Root:      root,
		StoreDir:  storeDir,
		StateFile: resolvePath(root, orDefault(file.State, DefaultStateFile)),
		Caches:    caches,
	}, nil
}

func (l *Loader) findConfiguration(location string) (string, error) {
	info, err := os.Stat(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(domain.ErrConfigNotFound, "path", location)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", location)
	}
	if !info.IsDir() {
		return filepath.Abs(location)
	}

	currentDir, err := filepath.Abs(location)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", location)
}

func (l *Loader) resolveStoreDir(root, configured string) (string, error) {
	if configured != "" && configured != "~" && !strings.HasPrefix(configured, "~/") {
		return resolvePath(root, configured), nil
	}

	home, err := l.home()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrHomeDirUnavailable.Error())
	}
	if configured == "" {
		return filepath.Join(home, filepath.FromSlash(defaultStoreDir)), nil
	}
	return filepath.Join(home, filepath.FromSlash(strings.TrimPrefix(configured, "~"))), nil
}

func buildCaches(dtos []*CacheDTO) ([]domain.CacheSpec, error) {
	if len(dtos) == 0 {
		return nil, domain.ErrNoCachesConfigured
	}

	seen := make(map[string]bool, len(dtos))
	caches := make([]domain.CacheSpec, 0, len(dtos))
	for i, dto := range dtos {
		if dto == nil {
			return nil, zerr.With(domain.ErrUnknownCacheKind, "index", i)
		}
		spec, err := buildCache(dto)
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		if seen[spec.Name] {
			return nil, zerr.With(domain.ErrDuplicateCacheName, "cache", spec.Name)
		}
		seen[spec.Name] = true
		caches = append(caches, spec)
	}
	return caches, nil
}

func buildCache(dto *CacheDTO) (domain.CacheSpec, error) {
	spec := domain.CacheSpec{
		Kind:      domain.CacheKind(dto.Kind),
		Name:      dto.Name,
		Path:      filepath.ToSlash(filepath.Clean(orDefault(dto.Path, "."))),
		ExtraKeys: dto.ExtraKeys,
	}

	switch spec.Kind {
	case domain.KindGradle, domain.KindMaven:
		spec.Name = orDefault(spec.Name, dto.Kind)
	case domain.KindCustom:
		if spec.Name == "" {
			return spec, domain.ErrMissingCacheName
		}
		if len(dto.Paths) == 0 || len(dto.Dependencies) == 0 {
			return spec, zerr.With(domain.ErrMissingCachePaths, "cache", spec.Name)
		}
		spec.Paths = dto.Paths
		spec.Dependencies = dto.Dependencies
	default:
		return spec, zerr.With(domain.ErrUnknownCacheKind, "kind", dto.Kind)
	}

	if !validCacheNameRegex.MatchString(spec.Name) {
		return spec, zerr.With(domain.ErrInvalidCacheName, "cache", spec.Name)
	}
	return spec, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func resolvePath(root, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
