package orchestrator

import (
	"errors"
	"fmt"

	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// Breakdown validation errors. All of them abort orchestration back to
// monolithic coding.
var (
	ErrNoDecomposition   = errors.New("orchestrator: no usable decomposition")
	ErrSubtaskTooLarge   = errors.New("orchestrator: subtask exceeds size limits")
	ErrUnknownDependency = errors.New("orchestrator: dependency references unknown subtask")
	ErrDependencyCycle   = errors.New("orchestrator: dependency graph has a cycle")
	ErrDuplicateTitle    = errors.New("orchestrator: duplicate subtask title")
)

// validateBreakdown checks a breakdown output against the per-subtask
// limits and verifies the dependency graph is well-formed and acyclic.
func validateBreakdown(out *models.BreakdownOutput, cfg *config.OrchestrationConfig) error {
	if !out.ShouldBreakdown || len(out.Issues) == 0 {
		return ErrNoDecomposition
	}
	if len(out.Issues) == 1 {
		// One subtask is just the monolithic task with extra overhead.
		return ErrNoDecomposition
	}

	titles := make(map[string]bool, len(out.Issues))
	for _, issue := range out.Issues {
		if titles[issue.Title] {
			return fmt.Errorf("%w: %q", ErrDuplicateTitle, issue.Title)
		}
		titles[issue.Title] = true

		if cfg.MaxSubtaskFiles > 0 && len(issue.TargetFiles) > cfg.MaxSubtaskFiles {
			return fmt.Errorf("%w: %q touches %d files (limit %d)",
				ErrSubtaskTooLarge, issue.Title, len(issue.TargetFiles), cfg.MaxSubtaskFiles)
		}
		if cfg.MaxSubtaskLines > 0 && issue.EstimatedLines > cfg.MaxSubtaskLines {
			return fmt.Errorf("%w: %q estimates %d lines (limit %d)",
				ErrSubtaskTooLarge, issue.Title, issue.EstimatedLines, cfg.MaxSubtaskLines)
		}
		if cfg.MaxSubtaskSteps > 0 && len(issue.AcceptanceCriteria) > cfg.MaxSubtaskSteps {
			return fmt.Errorf("%w: %q has %d steps (limit %d)",
				ErrSubtaskTooLarge, issue.Title, len(issue.AcceptanceCriteria), cfg.MaxSubtaskSteps)
		}
	}

	for _, issue := range out.Issues {
		for _, dep := range issue.Dependencies {
			if !titles[dep] {
				return fmt.Errorf("%w: %q depends on %q", ErrUnknownDependency, issue.Title, dep)
			}
			if dep == issue.Title {
				return fmt.Errorf("%w: %q depends on itself", ErrDependencyCycle, issue.Title)
			}
		}
	}
	for _, edge := range out.DependencyGraph.Edges {
		if !titles[edge.From] || !titles[edge.To] {
			return fmt.Errorf("%w: edge %s -> %s", ErrUnknownDependency, edge.From, edge.To)
		}
	}

	return detectCycle(out)
}

// detectCycle runs Kahn's algorithm over the union of the explicit
// graph edges and the per-issue dependency lists.
func detectCycle(out *models.BreakdownOutput) error {
	deps := make(map[string]map[string]bool, len(out.Issues))
	for _, issue := range out.Issues {
		deps[issue.Title] = make(map[string]bool)
		for _, dep := range issue.Dependencies {
			deps[issue.Title][dep] = true
		}
	}
	for _, edge := range out.DependencyGraph.Edges {
		// Edges point prerequisite -> dependent.
		deps[edge.To][edge.From] = true
	}

	indegree := make(map[string]int, len(deps))
	dependents := make(map[string][]string, len(deps))
	for title, prereqs := range deps {
		indegree[title] = len(prereqs)
		for prereq := range prereqs {
			dependents[prereq] = append(dependents[prereq], title)
		}
	}

	var queue []string
	for title, n := range indegree {
		if n == 0 {
			queue = append(queue, title)
		}
	}
	visited := 0
	for len(queue) > 0 {
		title := queue[0]
		queue = queue[1:]
		visited++
		for _, dependent := range dependents[title] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}
	if visited != len(deps) {
		return ErrDependencyCycle
	}
	return nil
}

// mergedDependencies returns an issue's prerequisites from both the
// issue list and the explicit graph, deduplicated.
func mergedDependencies(issue models.SubtaskIssue, graph models.DependencyGraph) []string {
	seen := make(map[string]bool)
	var merged []string
	add := func(dep string) {
		if dep != "" && dep != issue.Title && !seen[dep] {
			seen[dep] = true
			merged = append(merged, dep)
		}
	}
	for _, dep := range issue.Dependencies {
		add(dep)
	}
	for _, edge := range graph.Edges {
		if edge.To == issue.Title {
			add(edge.From)
		}
	}
	return merged
}
