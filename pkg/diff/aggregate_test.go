package diff

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modifyDiff(path, oldLine, newLine string, start int) string {
	var b strings.Builder
	b.WriteString("--- a/" + path + "\n")
	b.WriteString("+++ b/" + path + "\n")
	b.WriteString("@@ -" + itoa(start) + ",1 +" + itoa(start) + ",1 @@\n")
	b.WriteString("-" + oldLine + "\n")
	b.WriteString("+" + newLine + "\n")
	return b.String()
}

func insertDiff(path string, anchor int, lines ...string) string {
	var b strings.Builder
	b.WriteString("--- a/" + path + "\n")
	b.WriteString("+++ b/" + path + "\n")
	b.WriteString("@@ -" + itoa(anchor) + ",0 +" + itoa(anchor+1) + "," + itoa(len(lines)) + " @@\n")
	for _, l := range lines {
		b.WriteString("+" + l + "\n")
	}
	return b.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func TestNewAggregator_RejectsUnknownPolicy(t *testing.T) {
	_, err := NewAggregator(Policy("coin_flip"), 50)
	assert.Error(t, err)
}

func TestAggregate_DisjointFiles(t *testing.T) {
	agg, err := NewAggregator(PolicyManual, 50)
	require.NoError(t, err)

	result, err := agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-b", Diff: modifyDiff("zeta.go", "old", "new", 1)},
		{SubtaskID: "st-a", Diff: modifyDiff("alpha.go", "x", "y", 1)},
	})
	require.NoError(t, err)
	require.False(t, result.ManualRequired())

	// Files emit in lexicographic order regardless of input order.
	alphaIdx := strings.Index(result.Diff, "alpha.go")
	zetaIdx := strings.Index(result.Diff, "zeta.go")
	require.GreaterOrEqual(t, alphaIdx, 0)
	require.GreaterOrEqual(t, zetaIdx, 0)
	assert.Less(t, alphaIdx, zetaIdx)

	require.Len(t, result.Summary, 2)
	assert.Equal(t, "alpha.go", result.Summary[0].Path)
	assert.Equal(t, 1, result.Summary[0].Insertions)
	assert.Equal(t, 1, result.Summary[0].Deletions)
	assert.Equal(t, []string{"st-a"}, result.Summary[0].Subtasks)
}

func TestAggregate_SameFileDisjointHunks(t *testing.T) {
	agg, err := NewAggregator(PolicyManual, 50)
	require.NoError(t, err)

	result, err := agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-1", Diff: modifyDiff("main.go", "ten", "TEN", 10)},
		{SubtaskID: "st-2", Diff: modifyDiff("main.go", "two", "TWO", 2)},
	})
	require.NoError(t, err)
	require.False(t, result.ManualRequired())

	// Hunks ordered ascending by old start.
	assert.Less(t, strings.Index(result.Diff, "+TWO"), strings.Index(result.Diff, "+TEN"))

	require.Len(t, result.Summary, 1)
	assert.Equal(t, []string{"st-1", "st-2"}, result.Summary[0].Subtasks)
}

func TestAggregate_LastWinsKeepsLaterSubtask(t *testing.T) {
	agg, err := NewAggregator(PolicyLastWins, 50)
	require.NoError(t, err)

	result, err := agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-early", Diff: modifyDiff("f.go", "base", "early", 5)},
		{SubtaskID: "st-late", Diff: modifyDiff("f.go", "base", "late", 5)},
	})
	require.NoError(t, err)
	require.False(t, result.ManualRequired())
	assert.Contains(t, result.Diff, "+late")
	assert.NotContains(t, result.Diff, "+early")
}

func TestAggregate_FirstWinsKeepsEarlierSubtask(t *testing.T) {
	agg, err := NewAggregator(PolicyFirstWins, 50)
	require.NoError(t, err)

	result, err := agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-early", Diff: modifyDiff("f.go", "base", "early", 5)},
		{SubtaskID: "st-late", Diff: modifyDiff("f.go", "base", "late", 5)},
	})
	require.NoError(t, err)
	require.False(t, result.ManualRequired())
	assert.Contains(t, result.Diff, "+early")
	assert.NotContains(t, result.Diff, "+late")
}

func TestAggregate_MergeAdditiveCombinesInsertions(t *testing.T) {
	agg, err := NewAggregator(PolicyMergeAdditive, 50)
	require.NoError(t, err)

	result, err := agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-1", Diff: insertDiff("imports.go", 3, "first-a", "first-b")},
		{SubtaskID: "st-2", Diff: insertDiff("imports.go", 3, "second-a")},
	})
	require.NoError(t, err)
	require.False(t, result.ManualRequired())

	// Earlier subtask's lines come first in the merged hunk.
	assert.Less(t, strings.Index(result.Diff, "+first-a"), strings.Index(result.Diff, "+second-a"))
	assert.Contains(t, result.Diff, "@@ -3,0 +4,3 @@")
}

func TestAggregate_MergeAdditiveRefusesModifications(t *testing.T) {
	agg, err := NewAggregator(PolicyMergeAdditive, 50)
	require.NoError(t, err)

	result, err := agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-1", Diff: modifyDiff("f.go", "base", "one", 5)},
		{SubtaskID: "st-2", Diff: modifyDiff("f.go", "base", "two", 5)},
	})
	require.NoError(t, err)
	require.True(t, result.ManualRequired())
	require.Len(t, result.Conflicts.Conflicts, 1)

	c := result.Conflicts.Conflicts[0]
	assert.Equal(t, "f.go", c.Path)
	assert.Equal(t, "st-1", c.SubtaskA)
	assert.Equal(t, "st-2", c.SubtaskB)
	assert.NotEmpty(t, c.HunkDiff)
}

func TestAggregate_MergeAdditiveRespectsThreshold(t *testing.T) {
	agg, err := NewAggregator(PolicyMergeAdditive, 3)
	require.NoError(t, err)

	result, err := agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-1", Diff: insertDiff("f.go", 3, "a", "b")},
		{SubtaskID: "st-2", Diff: insertDiff("f.go", 3, "c", "d")},
	})
	require.NoError(t, err)
	assert.True(t, result.ManualRequired())
}

func TestAggregate_ManualPolicyNeverAutoResolves(t *testing.T) {
	agg, err := NewAggregator(PolicyManual, 50)
	require.NoError(t, err)

	result, err := agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-1", Diff: insertDiff("f.go", 3, "a")},
		{SubtaskID: "st-2", Diff: insertDiff("f.go", 3, "b")},
	})
	require.NoError(t, err)
	require.True(t, result.ManualRequired())
	assert.Equal(t, PolicyManual, result.Conflicts.Policy)
}

func TestAggregate_CreateVersusModifyIsInconsistent(t *testing.T) {
	agg, err := NewAggregator(PolicyLastWins, 50)
	require.NoError(t, err)

	createDiff := "--- /dev/null\n+++ b/f.go\n@@ -0,0 +1,1 @@\n+package f\n"
	_, err = agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-create", Diff: createDiff},
		{SubtaskID: "st-modify", Diff: modifyDiff("f.go", "package f", "package g", 1)},
	})
	assert.ErrorIs(t, err, ErrInconsistentInput)
}

func TestAggregate_DoubleCreateIsInconsistent(t *testing.T) {
	agg, err := NewAggregator(PolicyLastWins, 50)
	require.NoError(t, err)

	createDiff := "--- /dev/null\n+++ b/f.go\n@@ -0,0 +1,1 @@\n+package f\n"
	_, err = agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-1", Diff: createDiff},
		{SubtaskID: "st-2", Diff: createDiff},
	})
	assert.ErrorIs(t, err, ErrInconsistentInput)
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg, err := NewAggregator(PolicyLastWins, 50)
	require.NoError(t, err)

	_, err = agg.Aggregate(nil)
	assert.ErrorIs(t, err, ErrInconsistentInput)
}

func TestAggregate_MalformedSubtaskDiff(t *testing.T) {
	agg, err := NewAggregator(PolicyLastWins, 50)
	require.NoError(t, err)

	_, err = agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-bad", Diff: "not a diff"},
	})
	assert.ErrorIs(t, err, ErrMalformedDiff)
	assert.Contains(t, err.Error(), "st-bad")
}

func TestAggregate_OutputReparses(t *testing.T) {
	agg, err := NewAggregator(PolicyMergeAdditive, 50)
	require.NoError(t, err)

	result, err := agg.Aggregate([]SubtaskDiff{
		{SubtaskID: "st-1", Diff: modifyDiff("a.go", "x", "y", 1) + insertDiff("b.go", 4, "added")},
		{SubtaskID: "st-2", Diff: modifyDiff("a.go", "p", "q", 20)},
	})
	require.NoError(t, err)
	require.False(t, result.ManualRequired())

	files, err := Parse(result.Diff)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
