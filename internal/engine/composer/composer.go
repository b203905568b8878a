// Package composer derives cache keys and restore-key chains for dependency caches.
package composer

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// CacheNamePrefix prefixes the logical name of every dependency cache.
const CacheNamePrefix = "dependencies"

// Composer builds cache descriptors for dependency caches.
// A Composer is meant to live for one process run: declaration hashes are
// computed at most once per cache name and reused for every later request.
type Composer struct {
	hasher ports.FileHasher
	logger ports.Logger
	memo   *hashMemo
}

// NewComposer creates a new Composer.
func NewComposer(hasher ports.FileHasher, logger ports.Logger) *Composer {
	return &Composer{
		hasher: hasher,
		logger: logger,
		memo:   newHashMemo(),
	}
}

// ComposeDependencies builds the descriptor of the dependency cache called name.
//
// The primary key is "<baseline>-<event key>-<declaration hash>" where the baseline is
// "dependencies-<name>-<os>". The restore keys fall back from the event-scoped prefix to
// the default-branch prefix. Populating the cache is left to the caller, which should
// only save from default-branch runs and treat other runs as read-only.
func (c *Composer) ComposeDependencies(
	ctx context.Context,
	name string,
	trigger domain.Trigger,
	cacheLocation []domain.Pattern,
	pathDependencies []domain.Pattern,
) (domain.Descriptor, error) {
	cacheName := domain.JoinKey(CacheNamePrefix, name)

	hash, err := c.memo.get(cacheName, func() (string, error) {
		return c.hasher.HashFiles(ctx, pathDependencies)
	})
	if err != nil {
		return domain.Descriptor{}, errors.Join(domain.ErrHashFailed, zerr.Wrap(err, cacheName))
	}
	c.logger.Debug(fmt.Sprintf("%s: dependencyDeclarationHash=%s", cacheName, hash))

	prefix := domain.JoinKey(cacheName, trigger.OS)
	eventPrefix := domain.JoinKey(prefix, trigger.CacheKey)

	return domain.Descriptor{
		Name:       cacheName,
		Baseline:   prefix,
		PrimaryKey: domain.JoinKey(eventPrefix, hash),
		RestoreKeys: []string{
			eventPrefix,
			domain.JoinKey(prefix, trigger.DefaultBranch),
		},
		Paths: cacheLocation,
	}, nil
}

// ComposeSpec builds the descriptor for a configured cache. Gradle and Maven
// caches with a name of their own keep the ecosystem's paths but get a
// separate cache name, so several projects can be cached side by side.
func (c *Composer) ComposeSpec(ctx context.Context, trigger domain.Trigger, spec domain.CacheSpec) (domain.Descriptor, error) {
	path := projectPath(spec.Path)
	named := spec.Name != "" && spec.Name != string(spec.Kind)

	switch spec.Kind {
	case domain.KindGradle:
		if named {
			return c.ComposeDependencies(ctx, spec.Name, trigger, GradleCacheLocation(), GradleDependencies(path, spec.ExtraKeys))
		}
		return c.ComposeGradle(ctx, trigger, path, spec.ExtraKeys)
	case domain.KindMaven:
		if named {
			return c.ComposeDependencies(ctx, spec.Name, trigger, MavenCacheLocation(), MavenDependencies(path))
		}
		return c.ComposeMaven(ctx, trigger, path)
	case domain.KindCustom:
		return c.ComposeDependencies(ctx, spec.Name, trigger, spec.Paths, spec.Dependencies)
	default:
		return domain.Descriptor{}, zerr.With(domain.ErrUnknownCacheKind, "kind", string(spec.Kind))
	}
}

func projectPath(path string) string {
	if path == "" {
		return "."
	}
	return path
}
