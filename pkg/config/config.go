// Package config carries the externally supplied settings for a check run.
package config

import (
	"os"
	"strconv"

	"github.com/refdocs/refcheck/pkg/logger"
)

var log = logger.New("config:config")

// Environment variable names read by FromEnvironment. The GITHUB_* values
// are the ones GitHub Actions populates on pull request runs.
const (
	EnvRepository   = "GITHUB_REPOSITORY"
	EnvCommitHash   = "GITHUB_SHA"
	EnvPullRequest  = "REFCHECK_PULL_REQUEST"
	EnvPostComments = "REFCHECK_POST_PR_COMMENTS"
	EnvRepoRoot     = "REFCHECK_REPO_ROOT"
)

// Config holds the settings a check run needs from its environment.
type Config struct {
	// PostPullRequestComments enables filing review comments for failures.
	PostPullRequestComments bool
	// CommitHash is the head commit the comments are attached to.
	CommitHash string
	// PullRequestNumber identifies the pull request for review comments.
	PullRequestNumber int
	// Repository is the owner/name slug of the repository under review.
	Repository string
	// RepoRoot is the filesystem root of the checked-out repository; schema
	// locations are resolved and rendered relative to it.
	RepoRoot string
}

// FromEnvironment builds a Config from the process environment. Missing
// variables leave zero values; the caller layers flag overrides on top.
func FromEnvironment() Config {
	cfg := Config{
		Repository: os.Getenv(EnvRepository),
		CommitHash: os.Getenv(EnvCommitHash),
		RepoRoot:   os.Getenv(EnvRepoRoot),
	}

	if raw := os.Getenv(EnvPullRequest); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("Ignoring non-numeric %s=%q", EnvPullRequest, raw)
		} else {
			cfg.PullRequestNumber = n
		}
	}

	switch os.Getenv(EnvPostComments) {
	case "1", "true", "yes":
		cfg.PostPullRequestComments = true
	}

	return cfg
}

// CanPostComments reports whether the configuration is complete enough to
// file review comments.
func (c Config) CanPostComments() bool {
	return c.PostPullRequestComments && c.Repository != "" && c.CommitHash != "" && c.PullRequestNumber > 0
}
