package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

func twoIssues() []models.SubtaskIssue {
	return []models.SubtaskIssue{
		{Title: "Add validator", TargetFiles: []string{"pkg/validate.go"}, ChangeType: models.ChangeCreate, EstimatedLines: 20},
		{Title: "Wire validator", TargetFiles: []string{"pkg/login.go"}, ChangeType: models.ChangeModify, EstimatedLines: 10},
	}
}

func TestValidateBreakdown(t *testing.T) {
	cfg := config.DefaultOrchestrationConfig()

	tests := []struct {
		name    string
		out     models.BreakdownOutput
		wantErr error
	}{
		{
			"valid decomposition",
			models.BreakdownOutput{ShouldBreakdown: true, Issues: twoIssues()},
			nil,
		},
		{
			"declined",
			models.BreakdownOutput{ShouldBreakdown: false, Issues: twoIssues()},
			ErrNoDecomposition,
		},
		{
			"no issues",
			models.BreakdownOutput{ShouldBreakdown: true},
			ErrNoDecomposition,
		},
		{
			"single issue is monolithic",
			models.BreakdownOutput{ShouldBreakdown: true, Issues: twoIssues()[:1]},
			ErrNoDecomposition,
		},
		{
			"duplicate titles",
			models.BreakdownOutput{ShouldBreakdown: true, Issues: []models.SubtaskIssue{
				{Title: "Same", TargetFiles: []string{"a"}},
				{Title: "Same", TargetFiles: []string{"b"}},
			}},
			ErrDuplicateTitle,
		},
		{
			"too many files",
			models.BreakdownOutput{ShouldBreakdown: true, Issues: []models.SubtaskIssue{
				{Title: "Wide", TargetFiles: []string{"a", "b", "c"}},
				{Title: "Narrow", TargetFiles: []string{"d"}},
			}},
			ErrSubtaskTooLarge,
		},
		{
			"too many estimated lines",
			models.BreakdownOutput{ShouldBreakdown: true, Issues: []models.SubtaskIssue{
				{Title: "Big", TargetFiles: []string{"a"}, EstimatedLines: 51},
				{Title: "Small", TargetFiles: []string{"b"}},
			}},
			ErrSubtaskTooLarge,
		},
		{
			"too many acceptance criteria",
			models.BreakdownOutput{ShouldBreakdown: true, Issues: []models.SubtaskIssue{
				{Title: "Stepy", TargetFiles: []string{"a"}, AcceptanceCriteria: []string{"1", "2", "3", "4"}},
				{Title: "Plain", TargetFiles: []string{"b"}},
			}},
			ErrSubtaskTooLarge,
		},
		{
			"unknown dependency",
			models.BreakdownOutput{ShouldBreakdown: true, Issues: []models.SubtaskIssue{
				{Title: "A", TargetFiles: []string{"a"}, Dependencies: []string{"Ghost"}},
				{Title: "B", TargetFiles: []string{"b"}},
			}},
			ErrUnknownDependency,
		},
		{
			"self dependency",
			models.BreakdownOutput{ShouldBreakdown: true, Issues: []models.SubtaskIssue{
				{Title: "A", TargetFiles: []string{"a"}, Dependencies: []string{"A"}},
				{Title: "B", TargetFiles: []string{"b"}},
			}},
			ErrDependencyCycle,
		},
		{
			"unknown graph edge",
			models.BreakdownOutput{
				ShouldBreakdown: true,
				Issues:          twoIssues(),
				DependencyGraph: models.DependencyGraph{Edges: []models.DependencyEdge{{From: "Ghost", To: "Add validator"}}},
			},
			ErrUnknownDependency,
		},
		{
			"two node cycle",
			models.BreakdownOutput{ShouldBreakdown: true, Issues: []models.SubtaskIssue{
				{Title: "A", TargetFiles: []string{"a"}, Dependencies: []string{"B"}},
				{Title: "B", TargetFiles: []string{"b"}, Dependencies: []string{"A"}},
			}},
			ErrDependencyCycle,
		},
		{
			"cycle through graph edges",
			models.BreakdownOutput{
				ShouldBreakdown: true,
				Issues: []models.SubtaskIssue{
					{Title: "A", TargetFiles: []string{"a"}, Dependencies: []string{"B"}},
					{Title: "B", TargetFiles: []string{"b"}},
				},
				DependencyGraph: models.DependencyGraph{Edges: []models.DependencyEdge{{From: "A", To: "B"}}},
			},
			ErrDependencyCycle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBreakdown(&tt.out, cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMergedDependencies(t *testing.T) {
	issue := models.SubtaskIssue{
		Title:        "Wire validator",
		Dependencies: []string{"Add validator", "Add schema"},
	}
	graph := models.DependencyGraph{Edges: []models.DependencyEdge{
		{From: "Add validator", To: "Wire validator"}, // duplicate of the list
		{From: "Add config", To: "Wire validator"},
		{From: "Wire validator", To: "Wire validator"}, // self edge dropped
		{From: "Add docs", To: "Other"},                // different dependent
	}}

	merged := mergedDependencies(issue, graph)
	assert.Equal(t, []string{"Add validator", "Add schema", "Add config"}, merged)
}
