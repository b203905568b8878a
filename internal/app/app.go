// Package app implements the application layer for depcache.
package app

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/engine/composer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	triggers     ports.TriggerSource
	composer     *composer.Composer
	resolver     ports.PathResolver
	caches       ports.CacheServiceFactory
	states       ports.StateStoreFactory
	telemetry    ports.Telemetry
	logger       ports.Logger
	parallelism  int

	retryAttempts uint
	retryDelay    time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	triggers ports.TriggerSource,
	comp *composer.Composer,
	resolver ports.PathResolver,
	caches ports.CacheServiceFactory,
	states ports.StateStoreFactory,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		triggers:     triggers,
		composer:     comp,
		resolver:     resolver,
		caches:       caches,
		states:       states,
		telemetry:    telemetry,
		logger:       logger,
		parallelism:  runtime.NumCPU(),

		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
	}
}

// WithParallelism limits how many caches are processed concurrently.
func (a *App) WithParallelism(n int) *App {
	a.parallelism = max(n, 1)
	return a
}

// Options configures a run.
type Options struct {
	// Config is the configuration file or the directory to search from. Defaults to the working directory.
	Config string
	// Force saves caches even when the run does not build the default branch.
	Force bool
}

// SaveResult describes the outcome of saving one cache.
type SaveResult struct {
	Descriptor domain.Descriptor
	Status     domain.VertexStatus
}

// run is the resolved context shared by every command.
type run struct {
	config  *domain.Config
	trigger domain.Trigger
	specs   []domain.CacheSpec
}

func (a *App) prepare(ctx context.Context, cwd string, opts Options) (*run, error) {
	location := opts.Config
	if location == "" {
		location = cwd
	}

	cfg, err := a.configLoader.Load(location)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	trigger, err := a.triggers.Detect(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to detect trigger")
	}
	a.logger.Debug(fmt.Sprintf("trigger: event=%s ref=%s cacheKey=%s defaultBranch=%s os=%s",
		trigger.EventName, trigger.Ref, trigger.CacheKey, trigger.DefaultBranch, trigger.OS))

	rel, err := filepath.Rel(cwd, cfg.Root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to relate configuration root"), "root", cfg.Root)
	}

	specs := make([]domain.CacheSpec, len(cfg.Caches))
	for i, spec := range cfg.Caches {
		specs[i] = rebaseSpec(spec, filepath.ToSlash(rel))
	}
	return &run{config: cfg, trigger: trigger, specs: specs}, nil
}

// Keys returns the descriptors of every configured cache.
func (a *App) Keys(ctx context.Context, cwd string, opts Options) ([]domain.Descriptor, error) {
	r, err := a.prepare(ctx, cwd, opts)
	if err != nil {
		return nil, err
	}
	return a.compose(ctx, r)
}

func (a *App) compose(ctx context.Context, r *run) ([]domain.Descriptor, error) {
	descriptors := make([]domain.Descriptor, len(r.specs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism)
	for i, spec := range r.specs {
		g.Go(func() error {
			d, err := a.composer.ComposeSpec(ctx, r.trigger, spec)
			if err != nil {
				return zerr.With(err, "cache", spec.Name)
			}
			descriptors[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return descriptors, nil
}

// Restore restores every configured cache and records the descriptors for a later Save.
// A failing restore is reported and treated as a miss.
func (a *App) Restore(ctx context.Context, cwd string, opts Options) ([]domain.RestoreResult, error) {
	r, err := a.prepare(ctx, cwd, opts)
	if err != nil {
		return nil, err
	}

	descriptors, err := a.compose(ctx, r)
	if err != nil {
		return nil, err
	}

	cache, err := a.caches.Open(r.config.StoreDir)
	if err != nil {
		return nil, err
	}

	results := make([]domain.RestoreResult, len(descriptors))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism)
	for i, d := range descriptors {
		g.Go(func() error {
			results[i] = a.restoreOne(gctx, cache, d)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state := make(map[string]domain.Descriptor, len(descriptors))
	for _, d := range descriptors {
		state[d.Name] = d
	}
	if err := a.states.Open(r.config.StateFile).Store(state); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *App) restoreOne(ctx context.Context, cache ports.CacheService, d domain.Descriptor) domain.RestoreResult {
	_, vertex := a.telemetry.Record(ctx, "restore "+d.Name)

	var res domain.RestoreResult
	err := a.withRetry(ctx, "restore "+d.Name, func() error {
		var err error
		res, err = cache.Restore(ctx, d)
		return err
	})
	if err != nil {
		vertex.Complete(err)
		a.logger.Warn(fmt.Sprintf("%s: %s: %v", d.Name, domain.ErrRestoreFailed.Error(), err))
		return domain.RestoreResult{Descriptor: d}
	}

	switch domain.RestoreStatus(res) {
	case domain.VertexStatusCached:
		vertex.Cached()
		a.logger.Info(fmt.Sprintf("%s: restored from %s", d.Name, res.MatchedKey))
	case domain.VertexStatusCompleted:
		a.logger.Info(fmt.Sprintf("%s: restored from %s (partial match for %s)", d.Name, res.MatchedKey, d.PrimaryKey))
	default:
		vertex.Log(domain.LogLevelInfo, "cache miss")
		a.logger.Info(fmt.Sprintf("%s: cache miss for %s", d.Name, d.PrimaryKey))
	}
	vertex.Complete(nil)
	return res
}

// Save stores every configured cache whose primary key is not stored yet.
// Only runs that build the default branch populate caches unless opts.Force is set.
func (a *App) Save(ctx context.Context, cwd string, opts Options) ([]SaveResult, error) {
	r, err := a.prepare(ctx, cwd, opts)
	if err != nil {
		return nil, err
	}

	descriptors, err := a.compose(ctx, r)
	if err != nil {
		return nil, err
	}

	results := make([]SaveResult, len(descriptors))
	if !r.trigger.IsDefaultBranch() && !opts.Force {
		a.logger.Info(fmt.Sprintf("skipping save: %s does not build the default branch %q",
			r.trigger.CacheKey, r.trigger.DefaultBranch))
		for i, d := range descriptors {
			results[i] = SaveResult{Descriptor: d, Status: domain.VertexStatusSkipped}
		}
		return results, nil
	}

	restored, err := a.states.Open(r.config.StateFile).Load()
	if err != nil {
		return nil, err
	}
	for i, d := range descriptors {
		if prev, ok := restored[d.Name]; ok {
			descriptors[i] = prev
		}
	}

	cache, err := a.caches.Open(r.config.StoreDir)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism)
	for i, d := range descriptors {
		g.Go(func() error {
			status, err := a.saveOne(gctx, cache, d)
			results[i] = SaveResult{Descriptor: d, Status: status}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Join(domain.ErrSaveFailed, err)
	}
	return results, nil
}

func (a *App) saveOne(ctx context.Context, cache ports.CacheService, d domain.Descriptor) (domain.VertexStatus, error) {
	_, vertex := a.telemetry.Record(ctx, "save "+d.Name)

	exists, err := cache.Has(ctx, d.PrimaryKey)
	if err != nil {
		vertex.Complete(err)
		return domain.VertexStatusFailed, zerr.With(err, "cache", d.Name)
	}
	if exists {
		a.logger.Info(fmt.Sprintf("%s: %s already stored", d.Name, d.PrimaryKey))
		vertex.Cached()
		vertex.Complete(nil)
		return domain.VertexStatusCached, nil
	}

	files, err := a.resolver.ResolvePaths(ctx, d.Paths)
	if err != nil {
		vertex.Complete(err)
		return domain.VertexStatusFailed, zerr.With(err, "cache", d.Name)
	}
	if len(files) == 0 {
		a.logger.Warn(fmt.Sprintf("%s: no files match %s, nothing to save",
			d.Name, strings.Join(domain.PatternStrings(d.Paths), ", ")))
		vertex.Complete(nil)
		return domain.VertexStatusSkipped, nil
	}

	err = a.withRetry(ctx, "save "+d.Name, func() error {
		return cache.Save(ctx, d, files)
	})
	switch {
	case errors.Is(err, domain.ErrEntryExists):
		a.logger.Info(fmt.Sprintf("%s: %s already stored", d.Name, d.PrimaryKey))
		vertex.Complete(nil)
		return domain.VertexStatusSkipped, nil
	case err != nil:
		vertex.Complete(err)
		return domain.VertexStatusFailed, zerr.With(err, "cache", d.Name)
	}

	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("saved %d files", len(files)))
	a.logger.Info(fmt.Sprintf("%s: saved %d files as %s", d.Name, len(files), d.PrimaryKey))
	vertex.Complete(nil)
	return domain.VertexStatusCompleted, nil
}

// rebaseSpec makes the relative locations of spec, which are rooted at the
// configuration file, relative to the working directory instead.
func rebaseSpec(spec domain.CacheSpec, rel string) domain.CacheSpec {
	if rel == "." || rel == "" {
		return spec
	}
	if !anchored(spec.Path) {
		spec.Path = path.Join(rel, spec.Path)
	}
	spec.Paths = rebasePatterns(spec.Paths, rel)
	spec.Dependencies = rebasePatterns(spec.Dependencies, rel)
	return spec
}

// anchored reports whether p is absolute or home-relative and so does not
// depend on the directory it is resolved from.
func anchored(p string) bool {
	return p == "~" || strings.HasPrefix(p, "~/") || path.IsAbs(p) || filepath.IsAbs(p)
}

func rebasePatterns(patterns []domain.Pattern, rel string) []domain.Pattern {
	if patterns == nil {
		return nil
	}
	out := make([]domain.Pattern, len(patterns))
	for i, p := range patterns {
		out[i] = p
		if anchored(p.Glob) {
			continue
		}
		glob := path.Join(rel, p.Glob)
		if strings.HasSuffix(p.Glob, "/") {
			glob += "/"
		}
		out[i].Glob = glob
	}
	return out
}
