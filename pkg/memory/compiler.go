// Package memory compiles agent invocation contexts from static memory
// (per repo) and session memory (per task). A compiled context splits
// into a stable prefix, cacheable across attempts of the same agent on
// the same repo, and a variable suffix carrying task state.
package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
)

// Include selects which context sections enter the variable suffix.
type Include struct {
	Issue           bool
	RepoMap         bool
	Plan            bool
	DoD             bool
	Diff            bool
	FileContents    bool
	LastError       bool
	FailurePatterns bool
	TestsPassed     bool
	ReviewComments  bool
}

// DefaultInclude returns the default inclusion set for an agent.
func DefaultInclude(agent models.AgentType) Include {
	switch agent {
	case models.AgentPlanner:
		return Include{Issue: true, RepoMap: true}
	case models.AgentCoder:
		return Include{Issue: true, Plan: true, FileContents: true}
	case models.AgentFixer:
		return Include{Issue: true, Plan: true, Diff: true, LastError: true, FailurePatterns: true}
	case models.AgentValidator:
		return Include{Diff: true, FileContents: true}
	case models.AgentReviewer:
		return Include{DoD: true, Plan: true, Diff: true, FileContents: true, TestsPassed: true}
	case models.AgentBreakdown:
		return Include{Issue: true, Plan: true, DoD: true}
	}
	return Include{Issue: true}
}

// CompileRequest describes one compilation. RepoMap and FileContents are
// supplied by the caller (fetched from the repo host); the compiler
// itself only reads static and session memory.
type CompileRequest struct {
	Task      *ent.Task
	AgentType models.AgentType

	// Include overrides the agent's default inclusion set when non-nil.
	Include *Include

	RepoMap      string
	FileContents map[string]string
}

// CompiledContext is the result of a compilation.
type CompiledContext struct {
	Agent         models.AgentType
	SystemPrompt  string
	UserPrompt    string
	TokenEstimate int
}

// Compiler assembles compiled contexts. It never blocks on I/O other
// than static and session memory fetches.
type Compiler struct {
	memories *services.MemoryService
	defaults *config.Defaults
	logger   *slog.Logger
}

// NewCompiler creates a context compiler.
func NewCompiler(memories *services.MemoryService, defaults *config.Defaults, logger *slog.Logger) *Compiler {
	return &Compiler{
		memories: memories,
		defaults: defaults,
		logger:   logger.With("component", "memory.compiler"),
	}
}

// Compile produces the context for one agent invocation on one task.
// Child tasks see static memory and their own session only: the compiler
// reads the session keyed by the task's own ID and never follows
// parent_session_id, so parent and sibling state cannot leak in.
func (c *Compiler) Compile(ctx context.Context, req CompileRequest) (*CompiledContext, error) {
	if req.Task == nil {
		return nil, fmt.Errorf("compile: task is required")
	}
	instructions, ok := agentInstructions[req.AgentType]
	if !ok {
		return nil, fmt.Errorf("compile: unrecognized agent type %q", req.AgentType)
	}

	session, err := c.memories.GetSession(ctx, req.Task.ID)
	if err != nil {
		return nil, fmt.Errorf("compile: session for task %s: %w", req.Task.ID, err)
	}

	constraints := c.defaults.Constraints
	static, err := c.memories.GetStaticMemory(ctx, req.Task.Repo)
	switch {
	case err == nil:
		constraints = static.Constraints
	case !errors.Is(err, services.ErrNotFound):
		return nil, fmt.Errorf("compile: static memory for %s: %w", req.Task.Repo, err)
	}

	include := DefaultInclude(req.AgentType)
	if req.Include != nil {
		include = *req.Include
	}

	system := c.stablePrefix(req.AgentType, instructions, static, constraints)
	user := c.variableSuffix(include, req, session)

	return &CompiledContext{
		Agent:         req.AgentType,
		SystemPrompt:  system,
		UserPrompt:    user,
		TokenEstimate: CountTokens(system) + CountTokens(user),
	}, nil
}

// stablePrefix builds the cacheable system prompt: identity, role
// instructions, repo constraints, and the output contract. Nothing in
// it varies across attempts of the same agent on the same repo.
func (c *Compiler) stablePrefix(agent models.AgentType, instructions string, static *ent.StaticMemory, constraints models.RepoConstraints) string {
	var b strings.Builder
	b.WriteString(systemIdentity)
	b.WriteString("\n\n")
	b.WriteString(instructions)

	if static != nil {
		b.WriteString("\n\n## Repository\n")
		fmt.Fprintf(&b, "Language: %s\n", static.Config.Language)
		if static.Config.Framework != "" {
			fmt.Fprintf(&b, "Framework: %s\n", static.Config.Framework)
		}
		fmt.Fprintf(&b, "Default branch: %s\n", static.Config.DefaultBranch)
		if static.AgentInstructions != "" {
			b.WriteString("\n## Repository instructions\n")
			b.WriteString(static.AgentInstructions)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n## Constraints\n")
	fmt.Fprintf(&b, "Max diff lines: %d\n", constraints.MaxDiffLines)
	fmt.Fprintf(&b, "Max files per task: %d\n", constraints.MaxFilesPerTask)
	if len(constraints.AllowedPaths) > 0 {
		fmt.Fprintf(&b, "Allowed paths: %s\n", strings.Join(constraints.AllowedPaths, ", "))
	}
	if len(constraints.BlockedPaths) > 0 {
		fmt.Fprintf(&b, "Blocked paths (never touch): %s\n", strings.Join(constraints.BlockedPaths, ", "))
	}

	b.WriteString("\n## Output format\n")
	b.WriteString(outputFormats[agent])
	return b.String()
}

// variableSuffix builds the per-attempt user prompt from the selected
// context sections.
func (c *Compiler) variableSuffix(include Include, req CompileRequest, session *ent.SessionMemory) string {
	sc := session.Context
	var b strings.Builder

	if include.Issue {
		fmt.Fprintf(&b, "## Issue #%d", sc.IssueNumber)
		if sc.IssueTitle != "" {
			fmt.Fprintf(&b, ": %s", sc.IssueTitle)
		}
		b.WriteString("\n")
		if sc.IssueBody != "" {
			b.WriteString(sc.IssueBody)
			b.WriteString("\n")
		}
	}
	if include.RepoMap && req.RepoMap != "" {
		b.WriteString("\n## Repository map\n")
		b.WriteString(req.RepoMap)
		b.WriteString("\n")
	}
	if include.DoD && len(sc.DefinitionOfDone) > 0 {
		b.WriteString("\n## Definition of done\n")
		writeList(&b, sc.DefinitionOfDone)
	}
	if include.Plan && len(sc.Plan) > 0 {
		b.WriteString("\n## Plan\n")
		writeList(&b, sc.Plan)
		if len(sc.TargetFiles) > 0 {
			b.WriteString("Target files: ")
			b.WriteString(strings.Join(sc.TargetFiles, ", "))
			b.WriteString("\n")
		}
	}
	if include.FileContents && len(req.FileContents) > 0 {
		b.WriteString("\n## File contents\n")
		paths := make([]string, 0, len(req.FileContents))
		for path := range req.FileContents {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Fprintf(&b, "\n### %s\n```\n%s\n```\n", path, req.FileContents[path])
		}
	}
	if include.Diff && sc.CurrentDiff != "" {
		b.WriteString("\n## Current diff\n```diff\n")
		b.WriteString(sc.CurrentDiff)
		b.WriteString("\n```\n")
	}
	if include.TestsPassed && sc.TestsPassed != nil {
		fmt.Fprintf(&b, "\nTests passed: %t\n", *sc.TestsPassed)
	}
	if include.LastError && sc.LastErrorSummary != "" {
		b.WriteString("\n## Last error\n")
		b.WriteString(sc.LastErrorSummary)
		b.WriteString("\n")
	}
	if include.FailurePatterns && len(session.Attempts.FailurePatterns) > 0 {
		b.WriteString("\n## Failure patterns seen so far\n")
		writeList(&b, session.Attempts.FailurePatterns)
	}
	if include.ReviewComments && len(sc.ReviewComments) > 0 {
		b.WriteString("\n## Review comments\n")
		for _, rc := range sc.ReviewComments {
			fmt.Fprintf(&b, "- %s:%d [%s] %s\n", rc.File, rc.Line, rc.Severity, rc.Comment)
		}
	}

	if b.Len() == 0 {
		b.WriteString("No additional context.\n")
	}
	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}
