package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/pkg/models"
)

func policyDiff(paths ...string) string {
	var b strings.Builder
	for _, p := range paths {
		b.WriteString("--- a/" + p + "\n")
		b.WriteString("+++ b/" + p + "\n")
		b.WriteString("@@ -1,1 +1,1 @@\n-old\n+new\n")
	}
	return b.String()
}

func TestCheckDiffPolicy_CleanDiffPasses(t *testing.T) {
	err := CheckDiffPolicy(policyDiff("src/a.go"), models.RepoConstraints{
		MaxDiffLines:    100,
		MaxFilesPerTask: 5,
	})
	assert.Nil(t, err)
}

func TestCheckDiffPolicy_UnparsableDiff(t *testing.T) {
	err := CheckDiffPolicy("garbage", models.RepoConstraints{})
	require.NotNil(t, err)
	assert.Equal(t, FailureApply, err.Kind)
	assert.False(t, err.Retryable(), "malformed diff is terminal")
}

func TestCheckDiffPolicy_FileCountLimit(t *testing.T) {
	err := CheckDiffPolicy(policyDiff("a.go", "b.go", "c.go"), models.RepoConstraints{
		MaxFilesPerTask: 2,
	})
	require.NotNil(t, err)
	assert.Equal(t, FailurePolicy, err.Kind)
	assert.Contains(t, err.Detail, "3 files")
}

func TestCheckDiffPolicy_ChangedLineLimit(t *testing.T) {
	// Each file contributes 2 changed lines.
	err := CheckDiffPolicy(policyDiff("a.go", "b.go"), models.RepoConstraints{
		MaxDiffLines: 3,
	})
	require.NotNil(t, err)
	assert.Equal(t, FailurePolicy, err.Kind)
	assert.Contains(t, err.Detail, "4 lines")
}

func TestCheckDiffPolicy_BlockedPath(t *testing.T) {
	err := CheckDiffPolicy(policyDiff("deploy/secrets.yaml"), models.RepoConstraints{
		BlockedPaths: []string{"deploy/"},
	})
	require.NotNil(t, err)
	assert.Equal(t, FailurePolicy, err.Kind)
	assert.Contains(t, err.Detail, "blocked")
}

func TestCheckDiffPolicy_BlockedWinsOverAllowed(t *testing.T) {
	err := CheckDiffPolicy(policyDiff("src/vendor/x.go"), models.RepoConstraints{
		AllowedPaths: []string{"src/"},
		BlockedPaths: []string{"src/vendor/"},
	})
	require.NotNil(t, err)
	assert.Equal(t, FailurePolicy, err.Kind)
}

func TestCheckDiffPolicy_OutsideAllowedPaths(t *testing.T) {
	err := CheckDiffPolicy(policyDiff("docs/readme.md"), models.RepoConstraints{
		AllowedPaths: []string{"src/", "pkg/"},
	})
	require.NotNil(t, err)
	assert.Equal(t, FailurePolicy, err.Kind)
	assert.Contains(t, err.Detail, "outside the allowed paths")
}

func TestCheckDiffPolicy_EmptyAllowListPermitsAll(t *testing.T) {
	err := CheckDiffPolicy(policyDiff("anywhere/file.go"), models.RepoConstraints{})
	assert.Nil(t, err)
}

func TestPathMatches(t *testing.T) {
	assert.True(t, pathMatches("src/a.go", "src"))
	assert.True(t, pathMatches("src/a.go", "src/"))
	assert.True(t, pathMatches("src", "src"))
	assert.False(t, pathMatches("srcx/a.go", "src"))
	assert.False(t, pathMatches("other/src/a.go", "src"))
}
