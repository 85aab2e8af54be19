package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/agent"
	"github.com/coderelay-ai/coderelay/pkg/memory"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// stepStart admits a freshly claimed task into the pipeline.
func (e *Engine) stepStart(ctx context.Context, t *ent.Task) (*StepResult, error) {
	updated, err := e.applyTransition(ctx, t, transition{
		to: task.StatusPlanning,
		taskMutate: func(u *ent.TaskUpdate) {
			if t.StartedAt == nil {
				u.SetStartedAt(time.Now().UTC())
			}
		},
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetPhase("planning")
		},
		events: []models.AppendEventRequest{{EventType: models.EventTaskStarted}},
	})
	if err != nil {
		return nil, err
	}
	return e.result(t.Status, updated), nil
}

// stepPlan runs the planner and records its outputs on both the task
// row (read models) and the session (pipeline state).
func (e *Engine) stepPlan(ctx context.Context, t *ent.Task) (*StepResult, error) {
	repoCtx, err := e.host.GetRepoContext(ctx, t.Repo)
	if err != nil {
		return e.stepFailure(ctx, t, classifyStepError("fetch repo context", err))
	}

	cc, err := e.compiler.Compile(ctx, memory.CompileRequest{
		Task:      t,
		AgentType: models.AgentPlanner,
		RepoMap:   repoCtx.RepoMap,
	})
	if err != nil {
		return nil, err
	}

	agentCtx, cancel := e.agentContext(ctx)
	defer cancel()
	out, usage, err := agent.Run[models.PlannerOutput](agentCtx, e.runtime, models.AgentPlanner, cc)
	if err != nil {
		return e.stepFailure(ctx, t, classifyStepError("planner invocation", err))
	}

	session, err := e.memories.GetSession(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	sc := session.Context
	sc.DefinitionOfDone = out.DefinitionOfDone
	sc.Plan = out.Plan
	sc.TargetFiles = out.TargetFiles
	outputs := session.Outputs
	outputs.Planner = out

	updated, err := e.applyTransition(ctx, t, transition{
		to: task.StatusPlanningDone,
		taskMutate: func(u *ent.TaskUpdate) {
			u.SetDefinitionOfDone(out.DefinitionOfDone).
				SetPlan(out.Plan).
				SetTargetFiles(out.TargetFiles).
				SetEstimatedComplexity(task.EstimatedComplexity(out.EstimatedComplexity)).
				SetEstimatedEffort(out.EstimatedEffort)
		},
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetContext(sc).SetOutputs(outputs)
		},
		events: []models.AppendEventRequest{agentEvent(models.EventPlanProduced, models.AgentPlanner, usage, map[string]interface{}{
			"complexity":      string(out.EstimatedComplexity),
			"targetFiles":     len(out.TargetFiles),
			"shouldBreakdown": out.ShouldBreakdown,
		})},
	})
	if err != nil {
		return nil, err
	}
	return e.result(t.Status, updated), nil
}

// stepAfterPlanning decides between orchestration and monolithic
// coding. Orchestration is advisory: any breakdown failure falls back
// to the coder.
func (e *Engine) stepAfterPlanning(ctx context.Context, t *ent.Task) (*StepResult, error) {
	if e.shouldOrchestrate(ctx, t) {
		spawned, err := e.orch.RunBreakdown(ctx, t)
		if err != nil {
			e.logger.Warn("Breakdown failed, proceeding monolithically",
				"task_id", t.ID, "error", err)
		}
		if spawned {
			updated, err := e.tasks.GetTask(ctx, t.ID)
			if err != nil {
				return nil, err
			}
			return e.result(t.Status, updated), nil
		}
	}
	return e.simpleStep(ctx, t, task.StatusCoding)
}

// shouldOrchestrate applies the orchestration gate: enabled, parent
// depth, planner opt-in, and the complexity threshold.
func (e *Engine) shouldOrchestrate(ctx context.Context, t *ent.Task) bool {
	if e.orch == nil || !e.cfg.Orchestration.Enabled {
		return false
	}
	// Children never orchestrate: the task tree is two levels deep.
	if t.ParentTaskID != nil && *t.ParentTaskID != "" {
		return false
	}
	if t.IsOrchestrated || t.EstimatedComplexity == nil {
		return false
	}

	session, err := e.memories.GetSession(ctx, t.ID)
	if err != nil || session.Outputs.Planner == nil || !session.Outputs.Planner.ShouldBreakdown {
		return false
	}
	return models.Complexity(*t.EstimatedComplexity).AtLeast(e.cfg.Orchestration.ComplexityThreshold)
}

// stepCode runs the coder or fixer and stores the produced diff after
// the policy check.
func (e *Engine) stepCode(ctx context.Context, t *ent.Task, agentType models.AgentType) (*StepResult, error) {
	constraints := e.constraintsFor(ctx, t.Repo)

	var fileContents map[string]string
	if len(t.TargetFiles) > 0 {
		branch := e.sourceBranch(ctx, t)
		contents, err := e.host.GetFilesContent(ctx, t.Repo, branch, t.TargetFiles)
		if err != nil {
			return e.stepFailure(ctx, t, classifyStepError("fetch file contents", err))
		}
		fileContents = contents
	}

	cc, err := e.compiler.Compile(ctx, memory.CompileRequest{
		Task:         t,
		AgentType:    agentType,
		FileContents: fileContents,
	})
	if err != nil {
		return nil, err
	}

	agentCtx, cancel := e.agentContext(ctx)
	defer cancel()
	out, usage, err := agent.Run[models.CoderOutput](agentCtx, e.runtime, agentType, cc)
	if err != nil {
		return e.stepFailure(ctx, t, classifyStepError(string(agentType)+" invocation", err))
	}

	if violation := CheckDiffPolicy(out.Diff, constraints); violation != nil {
		return e.stepFailure(ctx, t, violation)
	}

	session, err := e.memories.GetSession(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	sc := session.Context
	sc.CurrentDiff = out.Diff
	sc.CommitMessage = out.CommitMessage
	outputs := session.Outputs
	eventType := models.EventDiffProduced
	if agentType == models.AgentFixer {
		outputs.Fixer = out
		eventType = models.EventFixProduced
	} else {
		outputs.Coder = out
	}

	updated, err := e.applyTransition(ctx, t, transition{
		to: task.StatusCodingDone,
		taskMutate: func(u *ent.TaskUpdate) {
			u.SetCurrentDiff(out.Diff).SetCommitMessage(out.CommitMessage)
		},
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetContext(sc).SetOutputs(outputs).SetPhase("coding_done")
		},
		events: []models.AppendEventRequest{agentEvent(eventType, agentType, usage, map[string]interface{}{
			"filesModified": out.FilesModified,
		})},
	})
	if err != nil {
		return nil, err
	}
	return e.result(t.Status, updated), nil
}

// stepValidateAndApply runs the validator on the pending diff, then
// lands it on the task branch and requests CI. A validator INVALID is
// retry-accounted exactly like a CI failure. Children stop here: a
// valid child diff completes the child, its artifact flows to the
// parent through aggregation.
func (e *Engine) stepValidateAndApply(ctx context.Context, t *ent.Task) (*StepResult, error) {
	if t.CurrentDiff == nil || *t.CurrentDiff == "" {
		return e.fail(ctx, t, &StepError{Kind: FailureApply, Detail: "no diff to validate"})
	}
	diffText := *t.CurrentDiff

	var fileContents map[string]string
	if len(t.TargetFiles) > 0 {
		contents, err := e.host.GetFilesContent(ctx, t.Repo, e.sourceBranch(ctx, t), t.TargetFiles)
		if err != nil {
			return e.stepFailure(ctx, t, classifyStepError("fetch file contents", err))
		}
		fileContents = contents
	}

	cc, err := e.compiler.Compile(ctx, memory.CompileRequest{
		Task:         t,
		AgentType:    models.AgentValidator,
		FileContents: fileContents,
	})
	if err != nil {
		return nil, err
	}

	agentCtx, cancel := e.agentContext(ctx)
	defer cancel()
	out, usage, err := agent.Run[models.ValidatorOutput](agentCtx, e.runtime, models.AgentValidator, cc)
	if err != nil {
		return e.stepFailure(ctx, t, classifyStepError("validator invocation", err))
	}

	validationEvent := agentEvent(models.EventValidationRun, models.AgentValidator, usage, map[string]interface{}{
		"verdict": string(out.Verdict),
		"checks":  len(out.Checks),
	})

	if out.Verdict == models.VerdictInvalid {
		feedback := strings.Join(out.Feedback, "; ")
		session, err := e.memories.GetSession(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		sc := session.Context
		sc.LastErrorSummary = "validator: " + feedback
		updated, err := e.applyTransition(ctx, t, transition{
			to: task.StatusTestsFailed,
			taskMutate: func(u *ent.TaskUpdate) {
				u.SetLastError("validator rejected diff: " + feedback)
			},
			sessionMutate: func(u *ent.SessionMemoryUpdate) {
				u.SetContext(sc)
			},
			events: []models.AppendEventRequest{validationEvent},
		})
		if err != nil {
			return nil, err
		}
		return e.result(t.Status, updated), nil
	}

	if t.ParentTaskID != nil && *t.ParentTaskID != "" {
		return e.completeChild(ctx, t, validationEvent)
	}

	branch := e.branchName(t)
	if t.BranchName == nil || *t.BranchName == "" {
		if err := e.host.CreateBranch(ctx, t.Repo, branch); err != nil {
			return e.stepFailure(ctx, t, classifyStepError("create branch", err))
		}
	}
	message := "coderelay: automated change"
	if t.CommitMessage != nil && *t.CommitMessage != "" {
		message = *t.CommitMessage
	}
	commitSha, err := e.host.ApplyDiff(ctx, t.Repo, branch, diffText, message)
	if err != nil {
		return e.stepFailure(ctx, t, &StepError{Kind: FailureApply, Detail: "apply diff", Err: err})
	}

	updated, err := e.applyTransition(ctx, t, transition{
		to:        task.StatusTesting,
		waitingOn: task.WaitingOnCi,
		taskMutate: func(u *ent.TaskUpdate) {
			u.SetBranchName(branch).ClearPodID()
		},
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetPhase("testing")
		},
		events: []models.AppendEventRequest{
			validationEvent,
			{
				EventType: models.EventDiffApplied,
				Metadata: map[string]interface{}{
					"branch": branch,
					"commit": commitSha,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return e.result(t.Status, updated), nil
}

// completeChild finishes a child task whose diff passed validation.
// Children carry no CI or PR of their own; the parent owns the merged
// artifact.
func (e *Engine) completeChild(ctx context.Context, t *ent.Task, validationEvent models.AppendEventRequest) (*StepResult, error) {
	updated, err := e.applyTransition(ctx, t, transition{
		to: task.StatusCompleted,
		taskMutate: func(u *ent.TaskUpdate) {
			u.ClearPodID()
		},
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetPhase("completed")
		},
		events: []models.AppendEventRequest{
			validationEvent,
			{EventType: models.EventTaskCompleted},
		},
	})
	if err != nil {
		return nil, err
	}

	e.notifyParent(ctx, updated)
	return e.result(t.Status, updated), nil
}

// stepRetry accounts one failed attempt: move to FIXING while budget
// remains, FAILED when it is spent.
func (e *Engine) stepRetry(ctx context.Context, t *ent.Task) (*StepResult, error) {
	if t.AttemptCount >= t.MaxAttempts {
		kind := FailureCI
		if t.Status == task.StatusReviewRejected {
			kind = FailureSchema
		}
		return e.fail(ctx, t, &StepError{
			Kind:   kind,
			Detail: fmt.Sprintf("attempts exhausted (%d/%d)", t.AttemptCount, t.MaxAttempts),
		})
	}

	session, err := e.memories.GetSession(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	attempts := session.Attempts
	attempts.Current = t.AttemptCount + 1
	reason := "tests failed"
	if t.Status == task.StatusReviewRejected {
		reason = "review rejected"
	}
	if t.LastError != nil && *t.LastError != "" {
		reason = *t.LastError
	}
	record := models.AttemptRecord{
		Outcome:       models.AttemptFailed,
		FailureReason: reason,
		RecordedAt:    time.Now().UTC(),
	}
	if t.CurrentDiff != nil {
		record.Diff = *t.CurrentDiff
	}
	attempts.Attempts = append(attempts.Attempts, record)
	attempts.FailurePatterns = appendPattern(attempts.FailurePatterns, reason)

	updated, err := e.applyTransition(ctx, t, transition{
		to:           task.StatusFixing,
		attemptDelta: 1,
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetAttempts(attempts).SetPhase("fixing")
		},
	})
	if err != nil {
		return nil, err
	}
	return e.result(t.Status, updated), nil
}

// stepReview runs the reviewer and applies the downgrade rule. Both the
// raw and the effective verdict are recorded.
func (e *Engine) stepReview(ctx context.Context, t *ent.Task) (*StepResult, error) {
	var fileContents map[string]string
	if len(t.TargetFiles) > 0 {
		contents, err := e.host.GetFilesContent(ctx, t.Repo, e.sourceBranch(ctx, t), t.TargetFiles)
		if err != nil {
			return e.stepFailure(ctx, t, classifyStepError("fetch file contents", err))
		}
		fileContents = contents
	}

	cc, err := e.compiler.Compile(ctx, memory.CompileRequest{
		Task:         t,
		AgentType:    models.AgentReviewer,
		FileContents: fileContents,
	})
	if err != nil {
		return nil, err
	}

	agentCtx, cancel := e.agentContext(ctx)
	defer cancel()
	out, usage, err := agent.Run[models.ReviewerOutput](agentCtx, e.runtime, models.AgentReviewer, cc)
	if err != nil {
		return e.stepFailure(ctx, t, classifyStepError("reviewer invocation", err))
	}

	session, err := e.memories.GetSession(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	testsPassed := session.Context.TestsPassed != nil && *session.Context.TestsPassed
	effective, downgraded := EffectiveReviewVerdict(out, testsPassed)

	sc := session.Context
	sc.ReviewVerdict = effective
	sc.ReviewComments = out.Comments
	outputs := session.Outputs
	outputs.Reviewer = out

	var (
		to        task.Status
		eventType string
	)
	switch effective {
	case models.ReviewApprove:
		to = task.StatusReviewApproved
		eventType = models.EventReviewApproved
	case models.ReviewNeedsDiscussion:
		to = task.StatusWaitingHuman
		eventType = models.EventReviewRejected
	default:
		to = task.StatusReviewRejected
		eventType = models.EventReviewRejected
		sc.LastErrorSummary = "review: " + out.Summary
	}

	reviewEvents := []models.AppendEventRequest{agentEvent(eventType, models.AgentReviewer, usage, map[string]interface{}{
		"rawVerdict":       string(out.Verdict),
		"effectiveVerdict": string(effective),
		"comments":         len(out.Comments),
	})}
	if downgraded {
		reviewEvents = append(reviewEvents, models.AppendEventRequest{
			EventType: models.EventReviewDowngrade,
			Agent:     models.AgentReviewer,
			Metadata: map[string]interface{}{
				"from": string(models.ReviewRequestChanges),
				"to":   string(models.ReviewApprove),
			},
		})
	}

	tr := transition{
		to: to,
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetContext(sc).SetOutputs(outputs).SetPhase("reviewing")
		},
		events: reviewEvents,
	}
	if to == task.StatusWaitingHuman {
		tr.waitingOn = task.WaitingOnHuman
		tr.taskMutate = func(u *ent.TaskUpdate) {
			u.SetLastError("review needs discussion: " + out.Summary).ClearPodID()
		}
	}
	if to == task.StatusReviewRejected {
		tr.taskMutate = func(u *ent.TaskUpdate) {
			u.SetLastError("review rejected: " + out.Summary)
		}
	}

	updated, err := e.applyTransition(ctx, t, tr)
	if err != nil {
		return nil, err
	}
	return e.result(t.Status, updated), nil
}

// stepOpenPR opens the pull request for an approved diff.
func (e *Engine) stepOpenPR(ctx context.Context, t *ent.Task) (*StepResult, error) {
	if t.BranchName == nil || *t.BranchName == "" {
		return e.fail(ctx, t, &StepError{Kind: FailureApply, Detail: "approved without a branch"})
	}

	title := fmt.Sprintf("Fix #%d", t.IssueNumber)
	if t.IssueTitle != "" {
		title = fmt.Sprintf("Fix #%d: %s", t.IssueNumber, t.IssueTitle)
	}
	pr, err := e.host.CreatePR(ctx, t.Repo, *t.BranchName, title, e.prBody(ctx, t))
	if err != nil {
		return e.stepFailure(ctx, t, classifyStepError("create pull request", err))
	}
	if err := e.host.AddLabels(ctx, t.Repo, pr.Number, []string{"coderelay"}); err != nil {
		e.logger.Warn("Failed to label pull request", "task_id", t.ID, "pr", pr.Number, "error", err)
	}

	updated, err := e.applyTransition(ctx, t, transition{
		to: task.StatusPrCreated,
		taskMutate: func(u *ent.TaskUpdate) {
			u.SetPrNumber(pr.Number).SetPrURL(pr.URL)
		},
		events: []models.AppendEventRequest{{
			EventType: models.EventPROpened,
			Metadata: map[string]interface{}{
				"pr":  pr.Number,
				"url": pr.URL,
			},
		}},
	})
	if err != nil {
		return nil, err
	}
	return e.result(t.Status, updated), nil
}

// stepAwaitMerge suspends the task until the merge webhook arrives.
func (e *Engine) stepAwaitMerge(ctx context.Context, t *ent.Task) (*StepResult, error) {
	updated, err := e.applyTransition(ctx, t, transition{
		to:        task.StatusWaitingHuman,
		waitingOn: task.WaitingOnHuman,
		taskMutate: func(u *ent.TaskUpdate) {
			u.ClearPodID()
		},
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetPhase("waiting_human")
		},
	})
	if err != nil {
		return nil, err
	}
	return e.result(t.Status, updated), nil
}

// prBody renders the PR description from the session's plan and DoD.
func (e *Engine) prBody(ctx context.Context, t *ent.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Closes #%d.\n", t.IssueNumber)
	if len(t.Plan) > 0 {
		b.WriteString("\n## Plan\n")
		for i, step := range t.Plan {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}
	if len(t.DefinitionOfDone) > 0 {
		b.WriteString("\n## Definition of done\n")
		for _, item := range t.DefinitionOfDone {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return b.String()
}

// branchName is deterministic per task so a retried apply reuses it.
func (e *Engine) branchName(t *ent.Task) string {
	if t.BranchName != nil && *t.BranchName != "" {
		return *t.BranchName
	}
	id := t.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("coderelay/issue-%d-%s", t.IssueNumber, id)
}

// sourceBranch is where agents read file contents from: the task branch
// once it exists, the default branch before that.
func (e *Engine) sourceBranch(ctx context.Context, t *ent.Task) string {
	if t.BranchName != nil && *t.BranchName != "" {
		return *t.BranchName
	}
	repoCtx, err := e.host.GetRepoContext(ctx, t.Repo)
	if err != nil {
		return "main"
	}
	return repoCtx.DefaultBranch
}

// constraintsFor resolves the repo's constraints with the configured
// fallback.
func (e *Engine) constraintsFor(ctx context.Context, repo string) models.RepoConstraints {
	static, err := e.memories.GetStaticMemory(ctx, repo)
	if err != nil {
		return e.cfg.Defaults.Constraints
	}
	return static.Constraints
}

// agentEvent builds an event carrying agent usage accounting.
func agentEvent(eventType string, agentType models.AgentType, usage *agent.Usage, metadata map[string]interface{}) models.AppendEventRequest {
	req := models.AppendEventRequest{
		EventType: eventType,
		Agent:     agentType,
		Metadata:  metadata,
	}
	if usage != nil {
		tokens := usage.TotalTokens()
		durationMs := int(usage.Latency.Milliseconds())
		req.TokensUsed = &tokens
		req.DurationMs = &durationMs
		if req.Metadata == nil {
			req.Metadata = map[string]interface{}{}
		}
		req.Metadata["model"] = usage.Model
	}
	return req
}

// appendPattern records a failure pattern once.
func appendPattern(patterns []string, pattern string) []string {
	for _, p := range patterns {
		if p == pattern {
			return patterns
		}
	}
	return append(patterns, pattern)
}
