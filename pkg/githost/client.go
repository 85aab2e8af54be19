// Package githost defines the repo-host collaborator used by the
// engine for repository context, branches, diffs, pull requests, and
// CI checks. The engine depends only on the interface; the in-memory
// implementation backs tests and local development.
package githost

import (
	"context"
	"errors"
)

// Collaborator errors.
var (
	ErrRepoNotFound   = errors.New("githost: repository not found")
	ErrBranchNotFound = errors.New("githost: branch not found")
	ErrFileNotFound   = errors.New("githost: file not found")
	ErrPRNotFound     = errors.New("githost: pull request not found")
	ErrApplyFailed    = errors.New("githost: diff does not apply")
	ErrChecksTimeout  = errors.New("githost: checks did not complete in time")
)

// RepoContext is the lightweight repository description handed to the
// planner.
type RepoContext struct {
	Repo          string
	DefaultBranch string
	// RepoMap is a textual tree of the repository's files.
	RepoMap string
}

// PullRequest describes an opened pull request.
type PullRequest struct {
	Number int
	URL    string
	Branch string
	Title  string
}

// CheckResult is the outcome of a CI check run on a branch.
type CheckResult struct {
	Success      bool
	ErrorSummary string
}

// Client is the repo-host collaborator interface.
type Client interface {
	// GetRepoContext returns the planner-facing repository description.
	GetRepoContext(ctx context.Context, repo string) (*RepoContext, error)

	// GetFilesContent returns the contents of the named files on a
	// branch. Missing files are omitted, not errors: agents routinely
	// plan files that do not exist yet.
	GetFilesContent(ctx context.Context, repo, branch string, paths []string) (map[string]string, error)

	// CreateBranch creates a branch from the repo's default branch.
	CreateBranch(ctx context.Context, repo, branch string) error

	// ApplyDiff applies a unified diff on a branch as one commit and
	// returns the commit SHA.
	ApplyDiff(ctx context.Context, repo, branch, diff, message string) (string, error)

	// CreatePR opens a pull request from branch to the default branch.
	CreatePR(ctx context.Context, repo, branch, title, body string) (*PullRequest, error)

	// AddLabels adds labels to a pull request.
	AddLabels(ctx context.Context, repo string, prNumber int, labels []string) error

	// AddComment adds a comment to a pull request.
	AddComment(ctx context.Context, repo string, prNumber int, body string) error

	// WaitForChecks blocks until the branch's checks complete or the
	// context expires.
	WaitForChecks(ctx context.Context, repo, branch string) (*CheckResult, error)
}
