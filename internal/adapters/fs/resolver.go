package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver expands include and exclude patterns to concrete files.
//
// Relative patterns are rooted at the resolver's root and "~" expands to the
// home directory. A file is selected when an include pattern matches it or one
// of its parent directories, and no exclude pattern does. An exclude pattern
// with a trailing slash only matches directories.
type Resolver struct {
	walker *Walker
	root   string
	home   func() (string, error)
}

// NewResolver creates a new Resolver rooted at root.
func NewResolver(walker *Walker, root string) *Resolver {
	return &Resolver{
		walker: walker,
		root:   root,
		home:   os.UserHomeDir,
	}
}

// Root returns the directory relative patterns are resolved against.
func (r *Resolver) Root() string {
	return r.root
}

// compiledPattern is a pattern expanded to an absolute, slash-separated glob.
type compiledPattern struct {
	glob    string
	dirOnly bool
}

// ResolvePaths returns the sorted absolute paths of every selected file.
func (r *Resolver) ResolvePaths(ctx context.Context, patterns []domain.Pattern) ([]string, error) {
	var includes, excludes []compiledPattern
	for _, p := range patterns {
		cp, err := r.compile(p)
		if err != nil {
			return nil, err
		}
		if p.Negated {
			excludes = append(excludes, cp)
		} else {
			includes = append(includes, cp)
		}
	}

	selected := make(map[string]struct{})
	for _, inc := range includes {
		base, _ := doublestar.SplitPattern(inc.glob)
		if !hasMeta(inc.glob) {
			// A literal path selects itself or everything below it.
			base = inc.glob
		}

		for file, err := range r.walker.WalkFiles(ctx, filepath.FromSlash(base)) {
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to walk path"), "path", base)
			}
			slashed := filepath.ToSlash(file)
			if _, ok := selected[slashed]; ok {
				continue
			}
			if !matchesSelfOrParent(inc, slashed, base) || excluded(excludes, slashed) {
				continue
			}
			selected[slashed] = struct{}{}
		}
	}

	result := make([]string, 0, len(selected))
	for p := range selected {
		result = append(result, filepath.FromSlash(p))
	}
	slices.Sort(result)
	return result, nil
}

func (r *Resolver) compile(p domain.Pattern) (compiledPattern, error) {
	glob := filepath.ToSlash(p.Glob)
	dirOnly := strings.HasSuffix(glob, "/")

	switch {
	case glob == "~" || strings.HasPrefix(glob, "~/"):
		home, err := r.home()
		if err != nil {
			return compiledPattern{}, zerr.Wrap(err, domain.ErrHomeDirUnavailable.Error())
		}
		glob = path.Join(filepath.ToSlash(home), strings.TrimPrefix(glob, "~"))
	case !path.IsAbs(glob) && !filepath.IsAbs(p.Glob):
		glob = path.Join(filepath.ToSlash(r.root), glob)
	default:
		glob = path.Clean(glob)
	}

	if !doublestar.ValidatePattern(glob) {
		return compiledPattern{}, zerr.With(domain.ErrInvalidPattern, "pattern", p.String())
	}
	return compiledPattern{glob: glob, dirOnly: dirOnly}, nil
}

// matchesSelfOrParent reports whether cp matches file or one of its parent
// directories below stop.
func matchesSelfOrParent(cp compiledPattern, file, stop string) bool {
	if !cp.dirOnly && match(cp.glob, file) {
		return true
	}
	for dir := path.Dir(file); len(dir) >= len(stop) && dir != "/" && dir != "."; dir = path.Dir(dir) {
		if match(cp.glob, dir) {
			return true
		}
		if dir == stop {
			break
		}
	}
	return false
}

func excluded(excludes []compiledPattern, file string) bool {
	for _, ex := range excludes {
		if matchesSelfOrParent(ex, file, "/") {
			return true
		}
	}
	return false
}

func match(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

func hasMeta(glob string) bool {
	return strings.ContainsAny(glob, `*?[{\`)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
