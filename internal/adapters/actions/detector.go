// Package actions resolves the CI trigger from the GitHub Actions environment.
package actions

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables read by the Detector.
const (
	EnvEventName     = "GITHUB_EVENT_NAME"
	EnvEventPath     = "GITHUB_EVENT_PATH"
	EnvRef           = "GITHUB_REF"
	EnvRunnerOS      = "RUNNER_OS"
	EnvDefaultBranch = "DEPCACHE_DEFAULT_BRANCH"
)

const (
	// LocalEvent is the event name used outside of CI.
	LocalEvent = "local"
	// FallbackDefaultBranch is used when neither the event nor the environment names a default branch.
	FallbackDefaultBranch = "main"
)

var _ ports.TriggerSource = (*Detector)(nil)

// Detector implements ports.TriggerSource for GitHub Actions.
type Detector struct {
	getenv   func(string) string
	readFile func(string) ([]byte, error)
	goos     string
}

// NewDetector creates a Detector reading the process environment.
func NewDetector() *Detector {
	return NewDetectorWithEnv(os.Getenv, os.ReadFile, runtime.GOOS)
}

// NewDetectorWithEnv creates a Detector with explicit environment accessors.
func NewDetectorWithEnv(getenv func(string) string, readFile func(string) ([]byte, error), goos string) *Detector {
	return &Detector{getenv: getenv, readFile: readFile, goos: goos}
}

// event is the subset of the webhook payload the detector needs.
type event struct {
	Repository struct {
		DefaultBranch string `json:"default_branch"`
	} `json:"repository"`
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Number int `json:"number"`
}

// Detect builds the trigger of the current run.
func (d *Detector) Detect(_ context.Context) (domain.Trigger, error) {
	ev, err := d.readEvent()
	if err != nil {
		return domain.Trigger{}, err
	}

	eventName := d.getenv(EnvEventName)
	if eventName == "" {
		eventName = LocalEvent
	}

	defaultBranch := ev.Repository.DefaultBranch
	if defaultBranch == "" {
		defaultBranch = d.getenv(EnvDefaultBranch)
	}
	if defaultBranch == "" {
		defaultBranch = FallbackDefaultBranch
	}

	t := domain.Trigger{
		EventName:     eventName,
		Ref:           d.getenv(EnvRef),
		DefaultBranch: defaultBranch,
		OS:            d.runnerOS(),
	}
	t.CacheKey = EventCacheKey(t.EventName, t.Ref, pullRequestNumber(ev))
	return t, nil
}

func (d *Detector) readEvent() (event, error) {
	var ev event
	path := d.getenv(EnvEventPath)
	if path == "" {
		return ev, nil
	}

	data, err := d.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ev, nil
		}
		return ev, zerr.With(zerr.Wrap(err, domain.ErrEventReadFailed.Error()), "path", path)
	}
	if err := json.Unmarshal(data, &ev); err != nil {
		return ev, zerr.With(zerr.Wrap(err, domain.ErrEventParseFailed.Error()), "path", path)
	}
	return ev, nil
}

func pullRequestNumber(ev event) int {
	if ev.PullRequest != nil && ev.PullRequest.Number != 0 {
		return ev.PullRequest.Number
	}
	return ev.Number
}

// runnerOS returns RUNNER_OS, falling back to the runner naming of the host OS.
func (d *Detector) runnerOS() string {
	if os := d.getenv(EnvRunnerOS); os != "" {
		return os
	}
	switch d.goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	default:
		return d.goos
	}
}

// EventCacheKey derives the event-scoped part of a cache key.
//
//	pull_request, pull_request_target -> PR<number>
//	push to refs/heads/<b>            -> <b>
//	push to refs/tags/<t>             -> tag-<t>
//	schedule                          -> schedule
//	anything else                     -> <event>-<short ref>, or <event> without a ref
func EventCacheKey(eventName, ref string, prNumber int) string {
	switch eventName {
	case "pull_request", "pull_request_target":
		if prNumber > 0 {
			return "PR" + strconv.Itoa(prNumber)
		}
	case "push":
		if branch, ok := (domain.Trigger{Ref: ref}).Branch(); ok {
			return branch
		}
		if tag := domain.ShortRef(ref); tag != ref {
			return "tag-" + tag
		}
	case "schedule":
		return "schedule"
	}

	if ref == "" {
		return eventName
	}
	return domain.JoinKey(eventName, domain.ShortRef(ref))
}
