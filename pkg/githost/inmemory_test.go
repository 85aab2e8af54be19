package githost

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHost(t *testing.T) *InMemory {
	t.Helper()
	h := NewInMemory()
	h.AddRepo("acme/widgets", "main", map[string]string{
		"pkg/login.go": "package login\n\nfunc Check() bool {\n\treturn false\n}\n",
		"README.md":    "# widgets\n",
	})
	return h
}

func TestGetRepoContext(t *testing.T) {
	h := seedHost(t)
	ctx := context.Background()

	rc, err := h.GetRepoContext(ctx, "acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, "main", rc.DefaultBranch)
	assert.Equal(t, "README.md\npkg/login.go", rc.RepoMap)

	_, err = h.GetRepoContext(ctx, "unknown/repo")
	assert.ErrorIs(t, err, ErrRepoNotFound)
}

func TestGetFilesContent_OmitsMissing(t *testing.T) {
	h := seedHost(t)

	files, err := h.GetFilesContent(context.Background(), "acme/widgets", "main",
		[]string{"README.md", "does/not/exist.go"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files, "README.md")
}

func TestCreateBranch_ForksDefault(t *testing.T) {
	h := seedHost(t)
	ctx := context.Background()

	require.NoError(t, h.CreateBranch(ctx, "acme/widgets", "coderelay/issue-1"))

	files, err := h.GetFilesContent(ctx, "acme/widgets", "coderelay/issue-1", []string{"README.md"})
	require.NoError(t, err)
	assert.Equal(t, "# widgets\n", files["README.md"])

	assert.ErrorIs(t, h.CreateBranch(ctx, "unknown/repo", "b"), ErrRepoNotFound)
}

func TestApplyDiff_Modify(t *testing.T) {
	h := seedHost(t)
	ctx := context.Background()
	require.NoError(t, h.CreateBranch(ctx, "acme/widgets", "work"))

	diffText := `--- a/pkg/login.go
+++ b/pkg/login.go
@@ -3,3 +3,3 @@
 func Check() bool {
-	return false
+	return true
 }
`
	sha, err := h.ApplyDiff(ctx, "acme/widgets", "work", diffText, "fix login check")
	require.NoError(t, err)
	assert.NotEmpty(t, sha)

	files, err := h.GetFilesContent(ctx, "acme/widgets", "work", []string{"pkg/login.go"})
	require.NoError(t, err)
	assert.Contains(t, files["pkg/login.go"], "return true")
	assert.NotContains(t, files["pkg/login.go"], "return false")

	// The default branch is untouched.
	base, err := h.GetFilesContent(ctx, "acme/widgets", "main", []string{"pkg/login.go"})
	require.NoError(t, err)
	assert.Contains(t, base["pkg/login.go"], "return false")
}

func TestApplyDiff_CreateAndDelete(t *testing.T) {
	h := seedHost(t)
	ctx := context.Background()
	require.NoError(t, h.CreateBranch(ctx, "acme/widgets", "work"))

	diffText := `--- /dev/null
+++ b/pkg/logout.go
@@ -0,0 +1,1 @@
+package logout
--- a/README.md
+++ /dev/null
@@ -1,1 +0,0 @@
-# widgets
`
	_, err := h.ApplyDiff(ctx, "acme/widgets", "work", diffText, "add logout, drop readme")
	require.NoError(t, err)

	files, err := h.GetFilesContent(ctx, "acme/widgets", "work",
		[]string{"pkg/logout.go", "README.md"})
	require.NoError(t, err)
	assert.Equal(t, "package logout\n", files["pkg/logout.go"])
	assert.NotContains(t, files, "README.md")
}

func TestApplyDiff_ContextMismatchLeavesBranchUntouched(t *testing.T) {
	h := seedHost(t)
	ctx := context.Background()
	require.NoError(t, h.CreateBranch(ctx, "acme/widgets", "work"))

	// Removed line does not match the branch content.
	bad := `--- a/README.md
+++ b/README.md
@@ -1,1 +1,1 @@
-# gadgets
+# widgets v2
`
	_, err := h.ApplyDiff(ctx, "acme/widgets", "work", bad, "won't land")
	assert.ErrorIs(t, err, ErrApplyFailed)

	files, err := h.GetFilesContent(ctx, "acme/widgets", "work", []string{"README.md"})
	require.NoError(t, err)
	assert.Equal(t, "# widgets\n", files["README.md"])
}

func TestApplyDiff_StructuralErrors(t *testing.T) {
	h := seedHost(t)
	ctx := context.Background()
	require.NoError(t, h.CreateBranch(ctx, "acme/widgets", "work"))

	tests := []struct {
		name string
		diff string
	}{
		{"create existing file", "--- /dev/null\n+++ b/README.md\n@@ -0,0 +1,1 @@\n+dup\n"},
		{"modify missing file", "--- a/nope.go\n+++ b/nope.go\n@@ -1,1 +1,1 @@\n-a\n+b\n"},
		{"delete missing file", "--- a/nope.go\n+++ /dev/null\n@@ -1,1 +0,0 @@\n-a\n"},
		{"unparsable", "garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.ApplyDiff(ctx, "acme/widgets", "work", tt.diff, "msg")
			assert.ErrorIs(t, err, ErrApplyFailed)
		})
	}
}

func TestCreatePRAndAnnotations(t *testing.T) {
	h := seedHost(t)
	ctx := context.Background()
	require.NoError(t, h.CreateBranch(ctx, "acme/widgets", "work"))

	pr, err := h.CreatePR(ctx, "acme/widgets", "work", "Fix login", "body")
	require.NoError(t, err)
	assert.Equal(t, 1, pr.Number)
	assert.Contains(t, pr.URL, "/pull/1")

	require.NoError(t, h.AddLabels(ctx, "acme/widgets", pr.Number, []string{"automated"}))
	require.NoError(t, h.AddComment(ctx, "acme/widgets", pr.Number, "opened by pipeline"))

	assert.ErrorIs(t, h.AddLabels(ctx, "acme/widgets", 99, nil), ErrPRNotFound)
	_, err = h.CreatePR(ctx, "acme/widgets", "missing-branch", "t", "b")
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestWaitForChecks(t *testing.T) {
	h := seedHost(t)
	ctx := context.Background()
	require.NoError(t, h.CreateBranch(ctx, "acme/widgets", "work"))

	go func() {
		time.Sleep(30 * time.Millisecond)
		h.SetCheckResult("acme/widgets", "work", CheckResult{Success: false, ErrorSummary: "2 tests failed"})
	}()

	result, err := h.WaitForChecks(ctx, "acme/widgets", "work")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "2 tests failed", result.ErrorSummary)
}

func TestWaitForChecks_Timeout(t *testing.T) {
	h := seedHost(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := h.WaitForChecks(ctx, "acme/widgets", "work")
	assert.ErrorIs(t, err, ErrChecksTimeout)
}
