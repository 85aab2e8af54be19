package agent

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/llm"
	"github.com/coderelay-ai/coderelay/pkg/memory"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

type stubClient struct {
	text string
	err  error
	last llm.Request
}

func (s *stubClient) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{
		Text:         s.text,
		Model:        req.Model,
		InputTokens:  120,
		OutputTokens: 80,
	}, nil
}

func newTestRuntime(t *testing.T, stub *stubClient, cfg *config.LLMConfig) *Runtime {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultLLMConfig()
	}
	r, err := NewRuntime(stub, cfg, slog.Default())
	require.NoError(t, err)
	return r
}

func testContext() *memory.CompiledContext {
	return &memory.CompiledContext{
		SystemPrompt: "You are the coder.",
		UserPrompt:   "Fix issue #1.",
	}
}

func TestInvoke_ValidOutput(t *testing.T) {
	stub := &stubClient{text: `Done.
{"diff": "--- a/x\n+++ b/x\n", "commitMessage": "fix", "filesModified": ["x"]}`}
	r := newTestRuntime(t, stub, nil)

	raw, usage, err := r.Invoke(context.Background(), models.AgentCoder, testContext())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"commitMessage"`)
	require.NotNil(t, usage)
	assert.Equal(t, 200, usage.TotalTokens())
	assert.Equal(t, "You are the coder.", stub.last.SystemPrompt)
}

func TestInvoke_SchemaViolation(t *testing.T) {
	// Parses fine but misses required fields.
	stub := &stubClient{text: `{"diff": "x"}`}
	r := newTestRuntime(t, stub, nil)

	_, usage, err := r.Invoke(context.Background(), models.AgentCoder, testContext())
	assert.ErrorIs(t, err, ErrSchemaViolation)
	// Usage is still accounted for failed attempts.
	assert.NotNil(t, usage)
}

func TestInvoke_UnknownFieldRejected(t *testing.T) {
	stub := &stubClient{text: `{"diff": "x", "commitMessage": "m", "filesModified": ["a"], "extra": 1}`}
	r := newTestRuntime(t, stub, nil)

	_, _, err := r.Invoke(context.Background(), models.AgentCoder, testContext())
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestInvoke_NoJSON(t *testing.T) {
	stub := &stubClient{text: "I could not produce a diff."}
	r := newTestRuntime(t, stub, nil)

	_, _, err := r.Invoke(context.Background(), models.AgentCoder, testContext())
	assert.ErrorIs(t, err, ErrUnparsableOutput)
}

func TestInvoke_RepairsMalformedJSON(t *testing.T) {
	stub := &stubClient{text: `{"diff": "x", "commitMessage": "m", "filesModified": ["a",],}`}
	r := newTestRuntime(t, stub, nil)

	raw, _, err := r.Invoke(context.Background(), models.AgentCoder, testContext())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"filesModified"`)
}

func TestInvoke_UnrecognizedAgent(t *testing.T) {
	r := newTestRuntime(t, &stubClient{text: "{}"}, nil)

	_, _, err := r.Invoke(context.Background(), models.AgentType("summarizer"), testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized agent type")
}

func TestInvoke_ProviderErrorPassesThrough(t *testing.T) {
	stub := &stubClient{err: llm.ErrRateLimited}
	r := newTestRuntime(t, stub, nil)

	_, _, err := r.Invoke(context.Background(), models.AgentCoder, testContext())
	assert.ErrorIs(t, err, llm.ErrRateLimited)
}

func TestInvoke_AppliesAgentOverrides(t *testing.T) {
	cfg := config.DefaultLLMConfig()
	cfg.Agents = map[string]config.AgentLLMSettings{
		"reviewer": {Model: "claude-opus-4-5", ReasoningEffort: config.EffortHigh},
	}
	stub := &stubClient{text: `{"verdict": "APPROVE", "summary": "ok", "dodVerification": [], "comments": []}`}
	r := newTestRuntime(t, stub, cfg)

	_, usage, err := r.Invoke(context.Background(), models.AgentReviewer, testContext())
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-5", stub.last.Model)
	assert.Equal(t, config.EffortHigh, stub.last.ReasoningEffort)
	assert.Equal(t, "claude-opus-4-5", usage.Model)
}

func TestRun_DecodesTypedOutput(t *testing.T) {
	stub := &stubClient{text: `{
		"definitionOfDone": ["login works"],
		"plan": ["edit pkg/login.go"],
		"targetFiles": ["pkg/login.go"],
		"estimatedComplexity": "S"
	}`}
	r := newTestRuntime(t, stub, nil)

	out, usage, err := Run[models.PlannerOutput](context.Background(), r, models.AgentPlanner, testContext())
	require.NoError(t, err)
	require.NotNil(t, usage)
	assert.Equal(t, models.ComplexityS, out.EstimatedComplexity)
	assert.Equal(t, []string{"pkg/login.go"}, out.TargetFiles)
	assert.False(t, out.ShouldBreakdown)
}

func TestFixerSharesCoderSchema(t *testing.T) {
	stub := &stubClient{text: `{"diff": "x", "commitMessage": "m", "filesModified": ["a"]}`}
	r := newTestRuntime(t, stub, nil)

	out, _, err := Run[models.CoderOutput](context.Background(), r, models.AgentFixer, testContext())
	require.NoError(t, err)
	assert.Equal(t, "m", out.CommitMessage)
}

func TestSchemas_RejectUnknownVariants(t *testing.T) {
	tests := []struct {
		name  string
		agent models.AgentType
		text  string
	}{
		{
			"planner bad complexity",
			models.AgentPlanner,
			`{"definitionOfDone": ["a"], "plan": ["b"], "targetFiles": [], "estimatedComplexity": "HUGE"}`,
		},
		{
			"validator bad verdict",
			models.AgentValidator,
			`{"verdict": "MAYBE", "checks": []}`,
		},
		{
			"reviewer bad severity",
			models.AgentReviewer,
			`{"verdict": "APPROVE", "summary": "s", "dodVerification": [],
			  "comments": [{"file": "x", "line": 1, "severity": "blocker", "comment": "c"}]}`,
		},
		{
			"breakdown bad change type",
			models.AgentBreakdown,
			`{"shouldBreakdown": true,
			  "issues": [{"title": "t", "body": "", "targetFiles": ["x"], "changeType": "rename"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRuntime(t, &stubClient{text: tt.text}, nil)
			_, _, err := r.Invoke(context.Background(), tt.agent, testContext())
			assert.ErrorIs(t, err, ErrSchemaViolation)
		})
	}
}
