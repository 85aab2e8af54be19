package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

func TestCanTransition_HappyPathEdges(t *testing.T) {
	edges := []struct {
		from, to task.Status
	}{
		{task.StatusNew, task.StatusPlanning},
		{task.StatusPlanning, task.StatusPlanningDone},
		{task.StatusPlanningDone, task.StatusCoding},
		{task.StatusCoding, task.StatusCodingDone},
		{task.StatusCodingDone, task.StatusTesting},
		{task.StatusTesting, task.StatusTestsPassed},
		{task.StatusTestsPassed, task.StatusReviewing},
		{task.StatusReviewing, task.StatusReviewApproved},
		{task.StatusReviewApproved, task.StatusPrCreated},
		{task.StatusPrCreated, task.StatusWaitingHuman},
		{task.StatusWaitingHuman, task.StatusCompleted},
	}
	for _, e := range edges {
		assert.True(t, CanTransition(e.from, e.to), "%s -> %s", e.from, e.to)
	}
}

func TestCanTransition_FixCycle(t *testing.T) {
	assert.True(t, CanTransition(task.StatusTesting, task.StatusTestsFailed))
	assert.True(t, CanTransition(task.StatusTestsFailed, task.StatusFixing))
	assert.True(t, CanTransition(task.StatusFixing, task.StatusCodingDone))
	assert.True(t, CanTransition(task.StatusReviewing, task.StatusReviewRejected))
	assert.True(t, CanTransition(task.StatusReviewRejected, task.StatusFixing))
}

func TestCanTransition_FailedReachableFromNonTerminal(t *testing.T) {
	for from := range allowedTransitions {
		assert.True(t, CanTransition(from, task.StatusFailed), "%s -> failed", from)
	}
	assert.False(t, CanTransition(task.StatusCompleted, task.StatusFailed))
	assert.False(t, CanTransition(task.StatusFailed, task.StatusFailed))
}

func TestCanTransition_IllegalEdges(t *testing.T) {
	illegal := []struct {
		from, to task.Status
	}{
		{task.StatusNew, task.StatusCoding},
		{task.StatusPlanning, task.StatusTesting},
		{task.StatusCompleted, task.StatusPlanning},
		{task.StatusFailed, task.StatusNew},
		{task.StatusTestsPassed, task.StatusCompleted},
		{task.StatusCoding, task.StatusReviewing},
	}
	for _, e := range illegal {
		assert.False(t, CanTransition(e.from, e.to), "%s -> %s", e.from, e.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(task.StatusCompleted))
	assert.True(t, Terminal(task.StatusFailed))
	assert.False(t, Terminal(task.StatusNew))
	assert.False(t, Terminal(task.StatusWaitingHuman))
}

func TestEffectiveReviewVerdict(t *testing.T) {
	critical := models.ReviewComment{File: "a.go", Line: 1, Severity: models.SeverityCritical, Comment: "boom"}
	minor := models.ReviewComment{File: "a.go", Line: 2, Severity: models.SeverityMinor, Comment: "nit"}

	tests := []struct {
		name        string
		out         models.ReviewerOutput
		testsPassed bool
		want        models.ReviewVerdict
		downgraded  bool
	}{
		{
			name:        "request changes downgraded when tests pass and comments non-critical",
			out:         models.ReviewerOutput{Verdict: models.ReviewRequestChanges, Comments: []models.ReviewComment{minor}},
			testsPassed: true,
			want:        models.ReviewApprove,
			downgraded:  true,
		},
		{
			name:        "critical comment blocks downgrade",
			out:         models.ReviewerOutput{Verdict: models.ReviewRequestChanges, Comments: []models.ReviewComment{critical}},
			testsPassed: true,
			want:        models.ReviewRequestChanges,
		},
		{
			name: "failing tests block downgrade",
			out:  models.ReviewerOutput{Verdict: models.ReviewRequestChanges},
			want: models.ReviewRequestChanges,
		},
		{
			name:        "approve passes through",
			out:         models.ReviewerOutput{Verdict: models.ReviewApprove},
			testsPassed: true,
			want:        models.ReviewApprove,
		},
		{
			name:        "needs discussion passes through",
			out:         models.ReviewerOutput{Verdict: models.ReviewNeedsDiscussion},
			testsPassed: true,
			want:        models.ReviewNeedsDiscussion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, downgraded := EffectiveReviewVerdict(&tt.out, tt.testsPassed)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.downgraded, downgraded)
		})
	}
}
