package domain

import "strings"

// Trigger describes the CI event that started the current run.
// It is resolved once per run and treated as read-only afterwards.
type Trigger struct {
	// EventName is the CI event type, e.g. "push" or "pull_request".
	EventName string
	// Ref is the fully qualified git ref of the run, e.g. "refs/heads/main".
	Ref string
	// DefaultBranch is the repository's default branch name.
	DefaultBranch string
	// CacheKey is unique to the triggering event (branch, pull request or tag).
	CacheKey string
	// OS is the runner operating system identifier ("Linux", "macOS", "Windows").
	OS string
}

// Branch returns the short branch name when Ref points to a branch.
func (t Trigger) Branch() (string, bool) {
	return cutRef(t.Ref, BranchRefPrefix)
}

// IsDefaultBranch reports whether the run builds the repository's default branch.
// Caches are only populated from such runs.
func (t Trigger) IsDefaultBranch() bool {
	branch, ok := t.Branch()
	return ok && t.DefaultBranch != "" && branch == t.DefaultBranch
}

const (
	// BranchRefPrefix prefixes git refs that point to branches.
	BranchRefPrefix = "refs/heads/"
	// TagRefPrefix prefixes git refs that point to tags.
	TagRefPrefix = "refs/tags/"
)

func cutRef(ref, prefix string) (string, bool) {
	name, ok := strings.CutPrefix(ref, prefix)
	return name, ok && name != ""
}

// ShortRef strips the branch or tag prefix from a git ref.
func ShortRef(ref string) string {
	if name, ok := cutRef(ref, BranchRefPrefix); ok {
		return name
	}
	if name, ok := cutRef(ref, TagRefPrefix); ok {
		return name
	}
	return ref
}
