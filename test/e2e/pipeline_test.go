// Package e2e exercises the full task pipeline against a real Postgres
// instance: scripted model outputs, an in-memory repo host, and the
// engine stepping a task from NEW to COMPLETED.
package e2e

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/ent/taskevent"
	"github.com/coderelay-ai/coderelay/pkg/agent"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/engine"
	"github.com/coderelay-ai/coderelay/pkg/githost"
	"github.com/coderelay-ai/coderelay/pkg/llm"
	"github.com/coderelay-ai/coderelay/pkg/memory"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

const loginFile = "package login\n\nfunc Check() bool {\n\treturn false\n}\n"

const coderDiff = `--- a/pkg/login.go
+++ b/pkg/login.go
@@ -3,3 +3,3 @@
 func Check() bool {
-	return false
+	return true
 }
`

const fixerDiff = `--- a/pkg/login.go
+++ b/pkg/login.go
@@ -1,1 +1,1 @@
-package login
+package login // hardened
`

// scriptedLLM replays queued completions in pipeline order. The engine
// invokes exactly one agent per step, so ordering is deterministic.
type scriptedLLM struct {
	t  *testing.T
	mu sync.Mutex

	queue []string
}

func (s *scriptedLLM) push(texts ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, texts...)
}

func (s *scriptedLLM) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(s.t, s.queue, "model invoked with no scripted response left")
	text := s.queue[0]
	s.queue = s.queue[1:]
	return &llm.Response{Text: text, Model: req.Model, InputTokens: 200, OutputTokens: 100}, nil
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func plannerOutput(t *testing.T) string {
	return mustJSON(t, models.PlannerOutput{
		DefinitionOfDone:    []string{"Check returns true for valid input"},
		Plan:                []string{"Flip the result of Check"},
		TargetFiles:         []string{"pkg/login.go"},
		EstimatedComplexity: models.ComplexityS,
	})
}

func coderOutput(t *testing.T, diff string) string {
	return mustJSON(t, models.CoderOutput{
		Diff:          diff,
		CommitMessage: "Fix login check",
		FilesModified: []string{"pkg/login.go"},
	})
}

func validatorOutput(t *testing.T, verdict models.ValidatorVerdict, feedback ...string) string {
	return mustJSON(t, models.ValidatorOutput{
		Verdict:  verdict,
		Checks:   []models.ValidatorCheck{{Type: models.CheckDiff, Passed: verdict == models.VerdictValid}},
		Feedback: feedback,
	})
}

func reviewerOutput(t *testing.T, verdict models.ReviewVerdict) string {
	return mustJSON(t, models.ReviewerOutput{
		Verdict:         verdict,
		Summary:         "Change matches the plan.",
		DodVerification: []models.DoDCheck{{Item: "Check returns true for valid input", Satisfied: true}},
		Comments:        []models.ReviewComment{},
	})
}

type pipelineHarness struct {
	client *ent.Client
	tasks  *services.TaskService
	mems   *services.MemoryService
	host   *githost.InMemory
	model  *scriptedLLM
	engine *engine.Engine
}

func newPipelineHarness(t *testing.T) *pipelineHarness {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	tasks := services.NewTaskService(dbClient.Client)
	jobs := services.NewJobService(dbClient.Client, tasks)
	events := services.NewEventService(dbClient.Client)
	mems, err := services.NewMemoryService(dbClient.Client)
	require.NoError(t, err)

	cfg := &config.Config{
		Defaults:      config.DefaultDefaults(),
		Queue:         config.DefaultQueueConfig(),
		Orchestration: config.DefaultOrchestrationConfig(),
		LLM:           config.DefaultLLMConfig(),
		Retention:     config.DefaultRetentionConfig(),
	}

	model := &scriptedLLM{t: t}
	runtime, err := agent.NewRuntime(model, cfg.LLM, slog.Default())
	require.NoError(t, err)
	compiler := memory.NewCompiler(mems, cfg.Defaults, slog.Default())

	host := githost.NewInMemory()
	host.AddRepo("acme/widgets", "main", map[string]string{"pkg/login.go": loginFile})

	eng := engine.NewEngine(dbClient.Client, tasks, jobs, events, mems, compiler, runtime, host, cfg, slog.Default())
	return &pipelineHarness{
		client: dbClient.Client,
		tasks:  tasks,
		mems:   mems,
		host:   host,
		model:  model,
		engine: eng,
	}
}

func (h *pipelineHarness) createTask(t *testing.T) *ent.Task {
	t.Helper()
	created, err := h.tasks.CreateTask(context.Background(), models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 7,
		IssueTitle:  "Login check always fails",
		IssueBody:   "Check() returns false unconditionally.",
		MaxAttempts: 3,
	})
	require.NoError(t, err)
	return created
}

// run steps the task until it suspends or terminates.
func (h *pipelineHarness) run(t *testing.T, taskID string) *engine.StepResult {
	t.Helper()
	for i := 0; i < 20; i++ {
		result, err := h.engine.Step(context.Background(), taskID)
		require.NoError(t, err)
		if result.Suspended || result.Terminal {
			return result
		}
	}
	t.Fatal("pipeline did not suspend or terminate within 20 steps")
	return nil
}

func (h *pipelineHarness) eventTypes(t *testing.T, taskID string) []string {
	t.Helper()
	rows, err := h.client.TaskEvent.Query().
		Where(taskevent.TaskIDEQ(taskID)).
		Order(ent.Asc(taskevent.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	types := make([]string, 0, len(rows))
	for _, row := range rows {
		types = append(types, row.EventType)
	}
	return types
}

func TestPipeline_HappyPath(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	created := h.createTask(t)

	h.model.push(
		plannerOutput(t),
		coderOutput(t, coderDiff),
		validatorOutput(t, models.VerdictValid),
	)

	// NEW through diff application; the task then waits on CI.
	result := h.run(t, created.ID)
	assert.True(t, result.Suspended)
	assert.Equal(t, task.StatusTesting, result.Task.Status)
	assert.Equal(t, task.WaitingOnCi, result.Task.WaitingOn)
	require.NotNil(t, result.Task.BranchName)

	files, err := h.host.GetFilesContent(ctx, "acme/widgets", *result.Task.BranchName, []string{"pkg/login.go"})
	require.NoError(t, err)
	assert.Contains(t, files["pkg/login.go"], "return true")

	require.NoError(t, h.engine.OnCIResult(ctx, created.ID, true, ""))

	// TESTS_PASSED through review and PR; the task then waits on merge.
	h.model.push(reviewerOutput(t, models.ReviewApprove))
	result = h.run(t, created.ID)
	assert.True(t, result.Suspended)
	assert.Equal(t, task.StatusWaitingHuman, result.Task.Status)
	require.NotNil(t, result.Task.PrNumber)
	require.NotNil(t, result.Task.PrURL)
	assert.Contains(t, *result.Task.PrURL, "/pull/")

	require.NoError(t, h.engine.OnMergeSignal(ctx, created.ID))

	final, err := h.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, final.Status)
	assert.Equal(t, 0, final.AttemptCount)

	types := h.eventTypes(t, created.ID)
	assert.Equal(t, []string{
		models.EventTaskCreated,
		models.EventTaskStarted,
		models.EventPlanProduced,
		models.EventDiffProduced,
		models.EventValidationRun,
		models.EventDiffApplied,
		models.EventCIPassed,
		models.EventReviewApproved,
		models.EventPROpened,
		models.EventMerged,
		models.EventTaskCompleted,
	}, types)
}

func TestPipeline_CIFailureFixCycle(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	created := h.createTask(t)

	h.model.push(
		plannerOutput(t),
		coderOutput(t, coderDiff),
		validatorOutput(t, models.VerdictValid),
	)
	result := h.run(t, created.ID)
	require.Equal(t, task.StatusTesting, result.Task.Status)

	require.NoError(t, h.engine.OnCIResult(ctx, created.ID, false, "2 assertions failed in login_test"))

	// TESTS_FAILED consumes one attempt and runs the fixer.
	h.model.push(
		coderOutput(t, fixerDiff),
		validatorOutput(t, models.VerdictValid),
	)
	result = h.run(t, created.ID)
	assert.Equal(t, task.StatusTesting, result.Task.Status)
	assert.Equal(t, 1, result.Task.AttemptCount)

	files, err := h.host.GetFilesContent(ctx, "acme/widgets", *result.Task.BranchName, []string{"pkg/login.go"})
	require.NoError(t, err)
	assert.Contains(t, files["pkg/login.go"], "package login // hardened")
	assert.Contains(t, files["pkg/login.go"], "return true")

	session, err := h.mems.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, session.Attempts.FailurePatterns, "ci failed: 2 assertions failed in login_test")

	require.NoError(t, h.engine.OnCIResult(ctx, created.ID, true, ""))
	h.model.push(reviewerOutput(t, models.ReviewApprove))
	result = h.run(t, created.ID)
	assert.Equal(t, task.StatusWaitingHuman, result.Task.Status)

	types := h.eventTypes(t, created.ID)
	assert.Contains(t, types, models.EventCIFailed)
	assert.Contains(t, types, models.EventFixProduced)
}

func TestPipeline_ValidatorRejectionIsRetryAccounted(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	created := h.createTask(t)

	h.model.push(
		plannerOutput(t),
		coderOutput(t, coderDiff),
		validatorOutput(t, models.VerdictInvalid, "diff touches no test"),
		coderOutput(t, coderDiff),
		validatorOutput(t, models.VerdictValid),
	)

	result := h.run(t, created.ID)
	assert.Equal(t, task.StatusTesting, result.Task.Status)
	assert.Equal(t, 1, result.Task.AttemptCount)

	reloaded, err := h.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastError)
	assert.Contains(t, *reloaded.LastError, "validator rejected diff")
}

func TestPipeline_AttemptsExhausted(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	created, err := h.tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 8,
		MaxAttempts: 1,
	})
	require.NoError(t, err)

	h.model.push(
		plannerOutput(t),
		coderOutput(t, coderDiff),
		validatorOutput(t, models.VerdictValid),
	)
	result := h.run(t, created.ID)
	require.Equal(t, task.StatusTesting, result.Task.Status)

	require.NoError(t, h.engine.OnCIResult(ctx, created.ID, false, "build broken"))

	// One fix attempt is budgeted; its failure exhausts the task.
	h.model.push(
		coderOutput(t, fixerDiff),
		validatorOutput(t, models.VerdictValid),
	)
	result = h.run(t, created.ID)
	require.Equal(t, task.StatusTesting, result.Task.Status)
	require.NoError(t, h.engine.OnCIResult(ctx, created.ID, false, "build still broken"))

	result = h.run(t, created.ID)
	assert.True(t, result.Terminal)
	assert.Equal(t, task.StatusFailed, result.Task.Status)
	require.NotNil(t, result.Task.LastError)
	assert.Contains(t, *result.Task.LastError, "attempts exhausted")
	assert.Contains(t, h.eventTypes(t, created.ID), models.EventTaskFailed)
}

func TestPipeline_CancellationObservedMidFlight(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	created := h.createTask(t)

	h.model.push(plannerOutput(t))

	// Advance past planning, then request cancellation.
	_, err := h.engine.Step(ctx, created.ID)
	require.NoError(t, err)
	_, err = h.engine.Step(ctx, created.ID)
	require.NoError(t, err)
	require.NoError(t, h.tasks.RequestCancel(ctx, created.ID))

	result, err := h.engine.Step(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, result.Terminal)
	assert.Equal(t, task.StatusFailed, result.Task.Status)
	require.NotNil(t, result.Task.FailureKind)
	assert.Equal(t, "cancelled", *result.Task.FailureKind)
	assert.Contains(t, h.eventTypes(t, created.ID), models.EventTaskCancelled)
}
