package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depcache/internal/core/domain"
)

func TestTrigger_IsDefaultBranch(t *testing.T) {
	tests := []struct {
		name     string
		trigger  domain.Trigger
		expected bool
	}{
		{"DefaultBranchPush", domain.Trigger{Ref: "refs/heads/main", DefaultBranch: "main"}, true},
		{"OtherBranch", domain.Trigger{Ref: "refs/heads/feature", DefaultBranch: "main"}, false},
		{"Tag", domain.Trigger{Ref: "refs/tags/main", DefaultBranch: "main"}, false},
		{"PullRequest", domain.Trigger{Ref: "refs/pull/42/merge", DefaultBranch: "main"}, false},
		{"UnknownDefault", domain.Trigger{Ref: "refs/heads/main"}, false},
		{"EmptyBranch", domain.Trigger{Ref: "refs/heads/", DefaultBranch: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.trigger.IsDefaultBranch())
		})
	}
}

func TestShortRef(t *testing.T) {
	assert.Equal(t, "main", domain.ShortRef("refs/heads/main"))
	assert.Equal(t, "feature/x", domain.ShortRef("refs/heads/feature/x"))
	assert.Equal(t, "v1.0.0", domain.ShortRef("refs/tags/v1.0.0"))
	assert.Equal(t, "refs/pull/1/merge", domain.ShortRef("refs/pull/1/merge"))
}

func TestRestoreResult_Hit(t *testing.T) {
	assert.False(t, domain.RestoreResult{}.Hit())
	assert.True(t, domain.RestoreResult{MatchedKey: "k"}.Hit())
}

func TestJoinKey(t *testing.T) {
	assert.Equal(t, "dependencies-maven-Linux", domain.JoinKey("dependencies", "maven", "Linux"))
}
