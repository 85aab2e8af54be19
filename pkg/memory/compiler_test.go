package memory

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

type compilerHarness struct {
	client   *ent.Client
	tasks    *services.TaskService
	mems     *services.MemoryService
	compiler *Compiler
}

func newCompilerHarness(t *testing.T) *compilerHarness {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	tasks := services.NewTaskService(dbClient.Client)
	mems, err := services.NewMemoryService(dbClient.Client)
	require.NoError(t, err)
	return &compilerHarness{
		client:   dbClient.Client,
		tasks:    tasks,
		mems:     mems,
		compiler: NewCompiler(mems, config.DefaultDefaults(), slog.Default()),
	}
}

func (h *compilerHarness) createTask(t *testing.T, req models.CreateTaskRequest) *ent.Task {
	t.Helper()
	created, err := h.tasks.CreateTask(context.Background(), req)
	require.NoError(t, err)
	return created
}

func (h *compilerHarness) updateSession(t *testing.T, taskID string, sc models.SessionContext, sa *models.SessionAttempts) {
	t.Helper()
	upd := h.client.SessionMemory.Update().
		Where(sessionmemory.TaskIDEQ(taskID)).
		SetContext(sc)
	if sa != nil {
		upd.SetAttempts(*sa)
	}
	_, err := upd.Save(context.Background())
	require.NoError(t, err)
}

func TestCompile_PlannerContext(t *testing.T) {
	h := newCompilerHarness(t)
	created := h.createTask(t, models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 42,
		IssueTitle:  "Fix login",
		IssueBody:   "Login breaks on empty password",
		MaxAttempts: 3,
	})

	cc, err := h.compiler.Compile(context.Background(), CompileRequest{
		Task:      created,
		AgentType: models.AgentPlanner,
		RepoMap:   "pkg/login.go\npkg/session.go",
	})
	require.NoError(t, err)

	assert.Contains(t, cc.SystemPrompt, "autonomous software development agent")
	assert.Contains(t, cc.UserPrompt, "## Issue #42: Fix login")
	assert.Contains(t, cc.UserPrompt, "Login breaks on empty password")
	assert.Contains(t, cc.UserPrompt, "## Repository map")
	assert.Positive(t, cc.TokenEstimate)

	// The planner never sees diffs or file contents.
	assert.NotContains(t, cc.UserPrompt, "## Current diff")
	assert.NotContains(t, cc.UserPrompt, "## File contents")
}

func TestCompile_StablePrefixIsAttemptInvariant(t *testing.T) {
	h := newCompilerHarness(t)
	created := h.createTask(t, models.CreateTaskRequest{Repo: "acme/widgets", IssueNumber: 1, MaxAttempts: 3})

	first, err := h.compiler.Compile(context.Background(), CompileRequest{Task: created, AgentType: models.AgentFixer})
	require.NoError(t, err)

	h.updateSession(t, created.ID, models.SessionContext{
		IssueNumber:      1,
		CurrentDiff:      "--- a/x\n+++ b/x\n",
		LastErrorSummary: "2 assertions failed",
	}, &models.SessionAttempts{Current: 2, FailurePatterns: []string{"off-by-one in hunk header"}})

	second, err := h.compiler.Compile(context.Background(), CompileRequest{Task: created, AgentType: models.AgentFixer})
	require.NoError(t, err)

	assert.Equal(t, first.SystemPrompt, second.SystemPrompt)
	assert.NotEqual(t, first.UserPrompt, second.UserPrompt)
	assert.Contains(t, second.UserPrompt, "## Last error")
	assert.Contains(t, second.UserPrompt, "2 assertions failed")
	assert.Contains(t, second.UserPrompt, "off-by-one in hunk header")
}

func TestCompile_StaticMemoryShapesPrefix(t *testing.T) {
	h := newCompilerHarness(t)
	ctx := context.Background()

	_, err := h.mems.UpsertStaticMemory(ctx, models.UpsertStaticMemoryRequest{
		Repo:   "acme/widgets",
		Config: models.RepoConfig{Language: "go", Framework: "gin", DefaultBranch: "main"},
		Constraints: models.RepoConstraints{
			MaxDiffLines:    200,
			MaxFilesPerTask: 4,
			BlockedPaths:    []string{"deploy/", "vendor/"},
		},
		AgentInstructions: "Prefer table tests.",
	})
	require.NoError(t, err)

	created := h.createTask(t, models.CreateTaskRequest{Repo: "acme/widgets", IssueNumber: 1, MaxAttempts: 3})
	cc, err := h.compiler.Compile(ctx, CompileRequest{Task: created, AgentType: models.AgentCoder})
	require.NoError(t, err)

	assert.Contains(t, cc.SystemPrompt, "Language: go")
	assert.Contains(t, cc.SystemPrompt, "Framework: gin")
	assert.Contains(t, cc.SystemPrompt, "Max diff lines: 200")
	assert.Contains(t, cc.SystemPrompt, "Blocked paths (never touch): deploy/, vendor/")
	assert.Contains(t, cc.SystemPrompt, "Prefer table tests.")
}

func TestCompile_FallsBackToDefaultConstraints(t *testing.T) {
	h := newCompilerHarness(t)
	created := h.createTask(t, models.CreateTaskRequest{Repo: "unknown/repo", IssueNumber: 1, MaxAttempts: 3})

	cc, err := h.compiler.Compile(context.Background(), CompileRequest{Task: created, AgentType: models.AgentCoder})
	require.NoError(t, err)
	assert.Contains(t, cc.SystemPrompt, "Max diff lines: 500")
	assert.Contains(t, cc.SystemPrompt, "Max files per task: 10")
}

func TestCompile_FileContentsSortedByPath(t *testing.T) {
	h := newCompilerHarness(t)
	created := h.createTask(t, models.CreateTaskRequest{Repo: "acme/widgets", IssueNumber: 1, MaxAttempts: 3})

	cc, err := h.compiler.Compile(context.Background(), CompileRequest{
		Task:      created,
		AgentType: models.AgentCoder,
		FileContents: map[string]string{
			"pkg/z.go": "package z",
			"pkg/a.go": "package a",
		},
	})
	require.NoError(t, err)
	assert.Less(t, strings.Index(cc.UserPrompt, "### pkg/a.go"), strings.Index(cc.UserPrompt, "### pkg/z.go"))
}

func TestCompile_ChildSessionIsolation(t *testing.T) {
	h := newCompilerHarness(t)
	ctx := context.Background()

	parent := h.createTask(t, models.CreateTaskRequest{Repo: "acme/widgets", IssueNumber: 9, MaxAttempts: 3})
	h.updateSession(t, parent.ID, models.SessionContext{
		IssueNumber: 9,
		Plan:        []string{"parent-only step"},
		CurrentDiff: "--- parent-diff ---",
	}, nil)

	idx := 0
	child := h.createTask(t, models.CreateTaskRequest{
		Repo:         "acme/widgets",
		IssueNumber:  9,
		IssueTitle:   "Subtask: add validation",
		MaxAttempts:  3,
		ParentTaskID: parent.ID,
		SubtaskIndex: &idx,
		TargetFiles:  []string{"pkg/validate.go"},
	})

	cc, err := h.compiler.Compile(ctx, CompileRequest{Task: child, AgentType: models.AgentFixer})
	require.NoError(t, err)
	assert.NotContains(t, cc.UserPrompt, "parent-only step")
	assert.NotContains(t, cc.UserPrompt, "parent-diff")
}

func TestCompile_IncludeOverride(t *testing.T) {
	h := newCompilerHarness(t)
	created := h.createTask(t, models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 3,
		IssueTitle:  "Tidy",
		MaxAttempts: 3,
	})

	cc, err := h.compiler.Compile(context.Background(), CompileRequest{
		Task:      created,
		AgentType: models.AgentCoder,
		Include:   &Include{},
	})
	require.NoError(t, err)
	assert.Equal(t, "No additional context.\n", cc.UserPrompt)
}

func TestCompile_Errors(t *testing.T) {
	h := newCompilerHarness(t)

	_, err := h.compiler.Compile(context.Background(), CompileRequest{AgentType: models.AgentCoder})
	assert.ErrorContains(t, err, "task is required")

	created := h.createTask(t, models.CreateTaskRequest{Repo: "acme/widgets", IssueNumber: 1, MaxAttempts: 3})
	_, err = h.compiler.Compile(context.Background(), CompileRequest{
		Task:      created,
		AgentType: models.AgentType("summarizer"),
	})
	assert.ErrorContains(t, err, "unrecognized agent type")
}
