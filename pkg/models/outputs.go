// Package models contains shared domain structs used by services, the
// engine, and the API layer. Agent outputs are closed schemas: parsers
// reject unknown variants, and the engine never dispatches on
// stringly-typed payloads.
package models

// AgentType identifies one of the model-backed agents.
type AgentType string

// Recognized agents.
const (
	AgentPlanner   AgentType = "planner"
	AgentCoder     AgentType = "coder"
	AgentFixer     AgentType = "fixer"
	AgentValidator AgentType = "validator"
	AgentReviewer  AgentType = "reviewer"
	AgentBreakdown AgentType = "breakdown"
)

// Complexity is the planner's size estimate for a ticket.
type Complexity string

// Complexity values, smallest to largest.
const (
	ComplexityXS Complexity = "XS"
	ComplexityS  Complexity = "S"
	ComplexityM  Complexity = "M"
	ComplexityL  Complexity = "L"
	ComplexityXL Complexity = "XL"
)

// AtLeast reports whether c is at or above threshold in the XS..XL order.
func (c Complexity) AtLeast(threshold Complexity) bool {
	order := map[Complexity]int{
		ComplexityXS: 0, ComplexityS: 1, ComplexityM: 2, ComplexityL: 3, ComplexityXL: 4,
	}
	ci, ok := order[c]
	ti, ok2 := order[threshold]
	if !ok || !ok2 {
		return false
	}
	return ci >= ti
}

// PlannerOutput is the planner agent's validated output.
type PlannerOutput struct {
	DefinitionOfDone    []string   `json:"definitionOfDone"`
	Plan                []string   `json:"plan"`
	TargetFiles         []string   `json:"targetFiles"`
	EstimatedComplexity Complexity `json:"estimatedComplexity"`
	EstimatedEffort     string     `json:"estimatedEffort"`
	ShouldBreakdown     bool       `json:"shouldBreakdown"`
}

// CoderOutput is the coder and fixer agents' validated output.
type CoderOutput struct {
	Diff          string   `json:"diff"`
	CommitMessage string   `json:"commitMessage"`
	FilesModified []string `json:"filesModified"`
}

// ValidatorVerdict is the validator's closed verdict set.
type ValidatorVerdict string

// Validator verdicts.
const (
	VerdictValid   ValidatorVerdict = "VALID"
	VerdictInvalid ValidatorVerdict = "INVALID"
)

// CheckType enumerates the validator's check kinds.
type CheckType string

// Validator check kinds.
const (
	CheckSyntax    CheckType = "syntax"
	CheckLint      CheckType = "lint"
	CheckTypecheck CheckType = "type"
	CheckTest      CheckType = "test"
	CheckDiff      CheckType = "diff"
)

// ValidatorCheck is one check result inside a validator output.
type ValidatorCheck struct {
	Type    CheckType `json:"type"`
	Passed  bool      `json:"passed"`
	Details string    `json:"details,omitempty"`
}

// ValidatorOutput is the validator agent's validated output.
type ValidatorOutput struct {
	Verdict  ValidatorVerdict `json:"verdict"`
	Checks   []ValidatorCheck `json:"checks"`
	Feedback []string         `json:"feedback,omitempty"`
}

// ReviewVerdict is the reviewer's closed verdict set.
type ReviewVerdict string

// Reviewer verdicts.
const (
	ReviewApprove         ReviewVerdict = "APPROVE"
	ReviewRequestChanges  ReviewVerdict = "REQUEST_CHANGES"
	ReviewNeedsDiscussion ReviewVerdict = "NEEDS_DISCUSSION"
)

// Severity classifies a review comment.
type Severity string

// Review comment severities.
const (
	SeverityCritical   Severity = "critical"
	SeverityMajor      Severity = "major"
	SeverityMinor      Severity = "minor"
	SeveritySuggestion Severity = "suggestion"
)

// ReviewComment is a single line-level reviewer comment.
type ReviewComment struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	Comment  string   `json:"comment"`
}

// DoDCheck records whether one definition-of-done item is satisfied.
type DoDCheck struct {
	Item      string `json:"item"`
	Satisfied bool   `json:"satisfied"`
	Note      string `json:"note,omitempty"`
}

// ReviewerOutput is the reviewer agent's validated output.
type ReviewerOutput struct {
	Verdict          ReviewVerdict   `json:"verdict"`
	Summary          string          `json:"summary"`
	DodVerification  []DoDCheck      `json:"dodVerification"`
	Comments         []ReviewComment `json:"comments"`
	SuggestedChanges []string        `json:"suggestedChanges,omitempty"`
}

// HasCriticalComment reports whether any comment carries critical severity.
func (o *ReviewerOutput) HasCriticalComment() bool {
	for _, c := range o.Comments {
		if c.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// ChangeType enumerates the kinds of file change a subtask performs.
type ChangeType string

// Subtask change types.
const (
	ChangeCreate ChangeType = "create"
	ChangeModify ChangeType = "modify"
	ChangeDelete ChangeType = "delete"
)

// SubtaskIssue is one decomposed unit of work in a breakdown output.
type SubtaskIssue struct {
	Title              string     `json:"title"`
	Body               string     `json:"body"`
	TargetFiles        []string   `json:"targetFiles"`
	ChangeType         ChangeType `json:"changeType"`
	Dependencies       []string   `json:"dependencies"`
	EstimatedLines     int        `json:"estimatedLines"`
	AcceptanceCriteria []string   `json:"acceptanceCriteria"`
}

// DependencyEdge is a directed edge in a breakdown dependency graph.
type DependencyEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DependencyGraph is the breakdown agent's explicit dependency graph.
// Nodes are subtask titles; edges point from prerequisite to dependent.
type DependencyGraph struct {
	Nodes []string         `json:"nodes"`
	Edges []DependencyEdge `json:"edges"`
}

// BreakdownOutput is the breakdown agent's validated output.
type BreakdownOutput struct {
	ShouldBreakdown bool            `json:"shouldBreakdown"`
	Issues          []SubtaskIssue  `json:"issues"`
	DependencyGraph DependencyGraph `json:"dependencyGraph"`
	ExecutionPlan   []string        `json:"executionPlan"`
}
