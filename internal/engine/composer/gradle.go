package composer

import (
	"context"
	"strings"

	"go.trai.ch/depcache/internal/core/domain"
)

// GradleCacheDir is the Gradle module cache persisted by the gradle cache.
const GradleCacheDir = "~/.gradle/caches/modules-2"

// GradleCacheLocation lists the persisted Gradle paths. Lock and GC bookkeeping
// files change on every build and are left out.
func GradleCacheLocation() []domain.Pattern {
	return []domain.Pattern{
		domain.Include(GradleCacheDir),
		domain.Exclude(GradleCacheDir + "/gc.properties"),
		domain.Exclude(GradleCacheDir + "/modules-2.lock"),
	}
}

// GradleDependencies lists the declaration patterns of the Gradle project at path,
// followed by the extra patterns parsed from extra.
func GradleDependencies(path, extra string) []domain.Pattern {
	deps := []domain.Pattern{
		domain.Exclude(path + "/**/.gradle/"),
		domain.Include(path + "/**/*.gradle.kts"),
		domain.Include(path + "/**/gradle/dependency-locking/**"),
		// At least one character before ".gradle" keeps the .gradle directory out.
		domain.Include(path + "/**/?*.gradle"),
		domain.Include(path + "/**/*.properties"),
	}
	return append(deps, ParseExtraPatterns(path, extra)...)
}

// ParseExtraPatterns parses newline-separated patterns and roots each one at
// "<path>/**/". Lines are trimmed and blank lines dropped; a leading "!" keeps
// the pattern an exclusion.
func ParseExtraPatterns(path, extra string) []domain.Pattern {
	lines := strings.FieldsFunc(extra, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	prefix := path + "/**/"
	patterns := make([]domain.Pattern, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p := domain.ParsePattern(line)
		p.Glob = strings.TrimLeft(p.Glob, domain.ExclusionMarker)
		patterns = append(patterns, p.Under(prefix))
	}
	return patterns
}

// ComposeGradle builds the descriptor of the Gradle dependency cache for the project at path.
func (c *Composer) ComposeGradle(ctx context.Context, trigger domain.Trigger, path, extra string) (domain.Descriptor, error) {
	return c.ComposeDependencies(ctx, string(domain.KindGradle), trigger, GradleCacheLocation(), GradleDependencies(path, extra))
}
