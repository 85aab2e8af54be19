package engine

import (
	"fmt"
	"strings"

	"github.com/coderelay-ai/coderelay/pkg/diff"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// CheckDiffPolicy enforces the repo's path and size constraints on a
// produced diff. Violations are terminal policy failures, never retried:
// an agent that wandered outside its sandbox once will do it again.
func CheckDiffPolicy(diffText string, constraints models.RepoConstraints) *StepError {
	files, err := diff.Parse(diffText)
	if err != nil {
		return &StepError{Kind: FailureApply, Detail: "diff does not parse", Err: err}
	}

	if constraints.MaxFilesPerTask > 0 && len(files) > constraints.MaxFilesPerTask {
		return &StepError{
			Kind:   FailurePolicy,
			Detail: fmt.Sprintf("diff touches %d files, limit is %d", len(files), constraints.MaxFilesPerTask),
		}
	}

	changedLines := 0
	for _, fd := range files {
		if violation := checkPath(fd.Path, constraints); violation != nil {
			return violation
		}
		for _, h := range fd.Hunks {
			for _, line := range h.Lines {
				if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
					changedLines++
				}
			}
		}
	}
	if constraints.MaxDiffLines > 0 && changedLines > constraints.MaxDiffLines {
		return &StepError{
			Kind:   FailurePolicy,
			Detail: fmt.Sprintf("diff changes %d lines, limit is %d", changedLines, constraints.MaxDiffLines),
		}
	}
	return nil
}

// checkPath verifies one file path against the allow and block lists.
// Blocked paths win over allowed ones.
func checkPath(path string, constraints models.RepoConstraints) *StepError {
	for _, blocked := range constraints.BlockedPaths {
		if pathMatches(path, blocked) {
			return &StepError{
				Kind:   FailurePolicy,
				Detail: fmt.Sprintf("path %s is blocked by %s", path, blocked),
			}
		}
	}
	if len(constraints.AllowedPaths) == 0 {
		return nil
	}
	for _, allowed := range constraints.AllowedPaths {
		if pathMatches(path, allowed) {
			return nil
		}
	}
	return &StepError{
		Kind:   FailurePolicy,
		Detail: fmt.Sprintf("path %s is outside the allowed paths", path),
	}
}

// pathMatches reports whether path falls under pattern. A pattern is a
// path prefix; "src/" matches "src/a.go" but not "srcx/a.go".
func pathMatches(path, pattern string) bool {
	pattern = strings.TrimSuffix(pattern, "/")
	if path == pattern {
		return true
	}
	return strings.HasPrefix(path, pattern+"/")
}
