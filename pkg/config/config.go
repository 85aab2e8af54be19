// Package config loads and validates coderelay configuration from YAML
// files and the environment.
package config

import (
	"time"

	"github.com/coderelay-ai/coderelay/pkg/models"
)

// Config is the umbrella configuration object returned by Initialize()
// and passed to the engine, queue, and API at construction. There is no
// hidden process-wide state: components receive what they need.
type Config struct {
	configDir string

	// Pipeline defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Orchestration (breakdown into child tasks)
	Orchestration *OrchestrationConfig

	// LLM provider configuration
	LLM *LLMConfig

	// Data retention policy
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Defaults contains pipeline-wide default values. Per-repo static memory
// constraints override the constraint fields.
type Defaults struct {
	// MaxAttemptsPerTask bounds the fix/retry cycles of a single task.
	MaxAttemptsPerTask int `yaml:"max_attempts_per_task"`

	// AgentTimeout is the hard wall-clock budget for one agent invocation.
	AgentTimeout time.Duration `yaml:"agent_timeout"`

	// TaskWallClockBudget is the overall budget for a task across all
	// iterations. Exceeding it is a non-retryable failure.
	TaskWallClockBudget time.Duration `yaml:"task_wall_clock_budget"`

	// Constraints applied when a repo has no static memory of its own.
	Constraints models.RepoConstraints `yaml:"constraints"`
}

// DefaultDefaults returns the built-in pipeline defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		MaxAttemptsPerTask:  3,
		AgentTimeout:        120 * time.Second,
		TaskWallClockBudget: 30 * time.Minute,
		Constraints: models.RepoConstraints{
			MaxDiffLines:    500,
			MaxFilesPerTask: 10,
		},
	}
}
