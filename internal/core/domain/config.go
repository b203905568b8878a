package domain

// ConfigFileName is the name of the workspace configuration file.
const ConfigFileName = "depcache.yaml"

// CacheKind selects how a cache's paths and dependency declarations are derived.
type CacheKind string

const (
	// KindGradle caches the Gradle module cache.
	KindGradle CacheKind = "gradle"
	// KindMaven caches the local Maven repository.
	KindMaven CacheKind = "maven"
	// KindCustom caches arbitrary paths keyed by arbitrary declaration files.
	KindCustom CacheKind = "custom"
)

// CacheSpec is one cache declared in the configuration.
type CacheSpec struct {
	Kind CacheKind
	// Name is the ecosystem identifier. Gradle and Maven caches default to their kind.
	Name string
	// Path is the project directory scanned for declaration files.
	Path string
	// ExtraKeys holds additional newline-separated declaration patterns (Gradle only).
	ExtraKeys string
	// Paths are the persisted patterns (custom only).
	Paths []Pattern
	// Dependencies are the declaration patterns (custom only).
	Dependencies []Pattern
}

// Config is the resolved workspace configuration.
type Config struct {
	// Root is the directory containing the configuration file.
	Root string
	// StoreDir is the root directory of the local cache store.
	StoreDir string
	// StateFile carries descriptors from the restore phase to the save phase.
	StateFile string
	Caches    []CacheSpec
}
