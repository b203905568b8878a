package composer

import (
	"context"

	"go.trai.ch/depcache/internal/core/domain"
)

// MavenRepositoryDir is the local Maven repository persisted by the maven cache.
const MavenRepositoryDir = "~/.m2/repository"

// ComposeMaven builds the descriptor of the Maven dependency cache for the project at path.
// Every pom.xml below path is a declaration file.
func (c *Composer) ComposeMaven(ctx context.Context, trigger domain.Trigger, path string) (domain.Descriptor, error) {
	return c.ComposeDependencies(
		ctx,
		string(domain.KindMaven),
		trigger,
		MavenCacheLocation(),
		MavenDependencies(path),
	)
}

// MavenCacheLocation lists the persisted Maven paths.
func MavenCacheLocation() []domain.Pattern {
	return []domain.Pattern{domain.Include(MavenRepositoryDir)}
}

// MavenDependencies lists the declaration patterns of the Maven project at path.
func MavenDependencies(path string) []domain.Pattern {
	return []domain.Pattern{domain.Include(path + "/**/pom.xml")}
}
