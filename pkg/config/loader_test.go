package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/pkg/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coderelay.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Defaults.MaxAttemptsPerTask)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 30, cfg.Retention.TaskRetentionDays)
	assert.Equal(t, BackendAnthropic, cfg.LLM.Backend)
	assert.True(t, cfg.Orchestration.Enabled)
	assert.Equal(t, ConflictManual, cfg.Orchestration.ConflictStrategy)
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	dir := writeConfig(t, `
defaults:
  max_attempts_per_task: 5
queue:
  worker_count: 8
orchestration:
  enabled: true
  complexity_threshold: L
retention:
  task_retention_days: 7
  event_ttl: 12h
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Defaults.MaxAttemptsPerTask)
	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.Equal(t, models.ComplexityL, cfg.Orchestration.ComplexityThreshold)
	assert.Equal(t, 7, cfg.Retention.TaskRetentionDays)
	assert.Equal(t, 12*time.Hour, cfg.Retention.EventTTL)

	// Untouched fields keep their defaults.
	assert.Equal(t, 120*time.Second, cfg.Defaults.AgentTimeout)
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentTasks)
	assert.Equal(t, time.Hour, cfg.Retention.CleanupInterval)
}

func TestInitialize_OrchestrationCanBeDisabled(t *testing.T) {
	dir := writeConfig(t, `
orchestration:
  enabled: false
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.False(t, cfg.Orchestration.Enabled)
}

func TestInitialize_ValidationRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero workers", "queue:\n  worker_count: -1\n"},
		{"zero retention", "retention:\n  task_retention_days: -3\n"},
		{"bad conflict strategy", "orchestration:\n  conflict_strategy: coin_flip\n"},
		{"bad complexity threshold", "orchestration:\n  complexity_threshold: XS\n"},
		{"bad llm backend", "llm:\n  backend: bedrock\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "queue: [not a map\n")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestInitialize_ExpandsEnvironment(t *testing.T) {
	t.Setenv("CODERELAY_TEST_MODEL", "claude-opus-4-5")
	dir := writeConfig(t, `
llm:
  model: "{{.CODERELAY_TEST_MODEL}}"
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-5", cfg.LLM.Model)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("CODERELAY_TEST_HOST", "db.internal")

	out := ExpandEnv([]byte("host: {{.CODERELAY_TEST_HOST}}"))
	assert.Equal(t, "host: db.internal", string(out))

	// Missing variables expand to empty; validation catches them later.
	out = ExpandEnv([]byte("key: {{.CODERELAY_TEST_UNSET_VAR}}"))
	assert.Equal(t, "key: ", string(out))

	// Content without template syntax passes through untouched, including $.
	raw := []byte("pattern: $HOME/**/*.go")
	assert.Equal(t, raw, ExpandEnv(raw))

	// Malformed templates fall back to the original bytes.
	raw = []byte("broken: {{.UNCLOSED")
	assert.Equal(t, raw, ExpandEnv(raw))
}

func TestForAgent_Overrides(t *testing.T) {
	temp := 0.7
	cfg := DefaultLLMConfig()
	cfg.Agents = map[string]AgentLLMSettings{
		"planner": {Model: "claude-opus-4-5", Temperature: &temp},
	}

	planner := cfg.ForAgent("planner")
	assert.Equal(t, "claude-opus-4-5", planner.Model)
	assert.Equal(t, 0.7, *planner.Temperature)
	assert.Equal(t, cfg.MaxTokens, planner.MaxTokens)

	coder := cfg.ForAgent("coder")
	assert.Equal(t, cfg.Model, coder.Model)
	assert.Equal(t, cfg.Temperature, *coder.Temperature)
}

func TestReasoningEffort_Collapse(t *testing.T) {
	assert.Equal(t, EffortLow, EffortNone.Collapse())
	assert.Equal(t, EffortLow, EffortLow.Collapse())
	assert.Equal(t, EffortMedium, EffortMedium.Collapse())
	assert.Equal(t, EffortHigh, EffortHigh.Collapse())
	assert.Equal(t, EffortHigh, EffortXHigh.Collapse())
	assert.Equal(t, EffortMedium, ReasoningEffort("").Collapse())
}

func TestComplexity_AtLeast(t *testing.T) {
	assert.True(t, models.ComplexityL.AtLeast(models.ComplexityM))
	assert.True(t, models.ComplexityM.AtLeast(models.ComplexityM))
	assert.False(t, models.ComplexityS.AtLeast(models.ComplexityM))
	assert.False(t, models.Complexity("HUGE").AtLeast(models.ComplexityM))
}
