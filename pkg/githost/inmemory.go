package githost

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/coderelay-ai/coderelay/pkg/diff"
	"github.com/google/uuid"
)

// InMemory is a repo host held entirely in process. Tests and local
// development use it; production wires a real host client.
type InMemory struct {
	mu    sync.Mutex
	repos map[string]*memRepo
}

type memRepo struct {
	defaultBranch string
	branches      map[string]map[string]string // branch -> path -> content
	prs           map[int]*PullRequest
	nextPR        int
	labels        map[int][]string
	comments      map[int][]string
	checks        map[string]*CheckResult
}

// NewInMemory creates an empty in-memory host.
func NewInMemory() *InMemory {
	return &InMemory{repos: make(map[string]*memRepo)}
}

// AddRepo seeds a repository with its default branch contents.
func (h *InMemory) AddRepo(repo, defaultBranch string, files map[string]string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	contents := make(map[string]string, len(files))
	for path, content := range files {
		contents[path] = content
	}
	h.repos[repo] = &memRepo{
		defaultBranch: defaultBranch,
		branches:      map[string]map[string]string{defaultBranch: contents},
		prs:           make(map[int]*PullRequest),
		nextPR:        1,
		labels:        make(map[int][]string),
		comments:      make(map[int][]string),
		checks:        make(map[string]*CheckResult),
	}
}

// SetCheckResult records the CI outcome for a branch; a blocked
// WaitForChecks observes it on its next poll.
func (h *InMemory) SetCheckResult(repo, branch string, result CheckResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.repos[repo]; ok {
		r.checks[branch] = &result
	}
}

// GetRepoContext returns the repo description with a file-tree map.
func (h *InMemory) GetRepoContext(ctx context.Context, repo string) (*RepoContext, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.repos[repo]
	if !ok {
		return nil, ErrRepoNotFound
	}
	paths := make([]string, 0, len(r.branches[r.defaultBranch]))
	for path := range r.branches[r.defaultBranch] {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return &RepoContext{
		Repo:          repo,
		DefaultBranch: r.defaultBranch,
		RepoMap:       strings.Join(paths, "\n"),
	}, nil
}

// GetFilesContent returns the requested files that exist on the branch.
func (h *InMemory) GetFilesContent(ctx context.Context, repo, branch string, paths []string) (map[string]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	files, err := h.branchFiles(repo, branch)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string)
	for _, path := range paths {
		if content, ok := files[path]; ok {
			result[path] = content
		}
	}
	return result, nil
}

// CreateBranch forks the default branch. Recreating an existing branch
// resets it, which is what a retry wants.
func (h *InMemory) CreateBranch(ctx context.Context, repo, branch string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.repos[repo]
	if !ok {
		return ErrRepoNotFound
	}
	base := r.branches[r.defaultBranch]
	fork := make(map[string]string, len(base))
	for path, content := range base {
		fork[path] = content
	}
	r.branches[branch] = fork
	return nil
}

// ApplyDiff applies a unified diff to the branch contents as one
// commit and returns a synthetic commit SHA.
func (h *InMemory) ApplyDiff(ctx context.Context, repo, branch, diffText, message string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	files, err := h.branchFiles(repo, branch)
	if err != nil {
		return "", err
	}
	parsed, err := diff.Parse(diffText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrApplyFailed, err)
	}

	// Stage everything before mutating so a mid-diff failure leaves the
	// branch untouched.
	staged := make(map[string]*string, len(parsed))
	for _, fd := range parsed {
		switch {
		case fd.IsDelete:
			if _, ok := files[fd.Path]; !ok {
				return "", fmt.Errorf("%w: delete of missing file %s", ErrApplyFailed, fd.Path)
			}
			staged[fd.Path] = nil
		case fd.IsNew:
			if _, ok := files[fd.Path]; ok {
				return "", fmt.Errorf("%w: create of existing file %s", ErrApplyFailed, fd.Path)
			}
			content, err := applyHunks("", fd.Hunks)
			if err != nil {
				return "", fmt.Errorf("file %s: %w", fd.Path, err)
			}
			staged[fd.Path] = &content
		default:
			current, ok := files[fd.Path]
			if !ok {
				return "", fmt.Errorf("%w: modify of missing file %s", ErrApplyFailed, fd.Path)
			}
			content, err := applyHunks(current, fd.Hunks)
			if err != nil {
				return "", fmt.Errorf("file %s: %w", fd.Path, err)
			}
			staged[fd.Path] = &content
		}
	}

	for path, content := range staged {
		if content == nil {
			delete(files, path)
		} else {
			files[path] = *content
		}
	}
	return strings.ReplaceAll(uuid.New().String(), "-", ""), nil
}

// CreatePR opens a pull request from branch to the default branch.
func (h *InMemory) CreatePR(ctx context.Context, repo, branch, title, body string) (*PullRequest, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.repos[repo]
	if !ok {
		return nil, ErrRepoNotFound
	}
	if _, ok := r.branches[branch]; !ok {
		return nil, ErrBranchNotFound
	}
	pr := &PullRequest{
		Number: r.nextPR,
		URL:    fmt.Sprintf("https://example.test/%s/pull/%d", repo, r.nextPR),
		Branch: branch,
		Title:  title,
	}
	r.prs[pr.Number] = pr
	r.nextPR++
	return pr, nil
}

// AddLabels adds labels to a pull request.
func (h *InMemory) AddLabels(ctx context.Context, repo string, prNumber int, labels []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.repos[repo]
	if !ok {
		return ErrRepoNotFound
	}
	if _, ok := r.prs[prNumber]; !ok {
		return ErrPRNotFound
	}
	r.labels[prNumber] = append(r.labels[prNumber], labels...)
	return nil
}

// AddComment adds a comment to a pull request.
func (h *InMemory) AddComment(ctx context.Context, repo string, prNumber int, body string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.repos[repo]
	if !ok {
		return ErrRepoNotFound
	}
	if _, ok := r.prs[prNumber]; !ok {
		return ErrPRNotFound
	}
	r.comments[prNumber] = append(r.comments[prNumber], body)
	return nil
}

// WaitForChecks polls for a recorded check result until the context
// expires.
func (h *InMemory) WaitForChecks(ctx context.Context, repo, branch string) (*CheckResult, error) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		h.mu.Lock()
		r, ok := h.repos[repo]
		if !ok {
			h.mu.Unlock()
			return nil, ErrRepoNotFound
		}
		if result, ok := r.checks[branch]; ok {
			delete(r.checks, branch)
			h.mu.Unlock()
			return result, nil
		}
		h.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrChecksTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
}

// branchFiles returns the live file map of a branch; callers hold h.mu.
func (h *InMemory) branchFiles(repo, branch string) (map[string]string, error) {
	r, ok := h.repos[repo]
	if !ok {
		return nil, ErrRepoNotFound
	}
	files, ok := r.branches[branch]
	if !ok {
		return nil, ErrBranchNotFound
	}
	return files, nil
}

// applyHunks applies parsed hunks to file content. Context and removed
// lines must match the current content exactly.
func applyHunks(content string, hunks []*diff.Hunk) (string, error) {
	var src []string
	trailingNewline := strings.HasSuffix(content, "\n")
	if content != "" {
		src = strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	}

	sorted := make([]*diff.Hunk, len(hunks))
	copy(sorted, hunks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].OldStart < sorted[j].OldStart })

	var out []string
	pos := 0
	for _, h := range sorted {
		anchor := h.OldStart - 1
		if h.OldLines == 0 {
			// Insertion after line OldStart.
			anchor = h.OldStart
		}
		if anchor < pos || anchor > len(src) {
			return "", fmt.Errorf("%w: hunk at -%d out of range", ErrApplyFailed, h.OldStart)
		}
		out = append(out, src[pos:anchor]...)
		pos = anchor

		for _, line := range h.Lines {
			if line == "" {
				line = " "
			}
			body := line[1:]
			switch line[0] {
			case ' ':
				if pos >= len(src) || src[pos] != body {
					return "", fmt.Errorf("%w: context mismatch at line %d", ErrApplyFailed, pos+1)
				}
				out = append(out, src[pos])
				pos++
			case '-':
				if pos >= len(src) || src[pos] != body {
					return "", fmt.Errorf("%w: removed line mismatch at line %d", ErrApplyFailed, pos+1)
				}
				pos++
			case '+':
				out = append(out, body)
			default:
				return "", fmt.Errorf("%w: unexpected hunk line %q", ErrApplyFailed, line)
			}
		}
	}
	out = append(out, src[pos:]...)

	result := strings.Join(out, "\n")
	if trailingNewline || content == "" {
		result += "\n"
	}
	return result, nil
}
