package config

import (
	"fmt"

	"github.com/coderelay-ai/coderelay/pkg/models"
)

// ConflictStrategy is the closed set of diff conflict resolution policies.
type ConflictStrategy string

// Conflict strategies.
const (
	ConflictLastWins      ConflictStrategy = "last_wins"
	ConflictFirstWins     ConflictStrategy = "first_wins"
	ConflictMergeAdditive ConflictStrategy = "merge_additive"
	ConflictManual        ConflictStrategy = "manual"
)

// Valid reports whether s is a recognized strategy.
func (s ConflictStrategy) Valid() bool {
	switch s {
	case ConflictLastWins, ConflictFirstWins, ConflictMergeAdditive, ConflictManual:
		return true
	}
	return false
}

// OrchestrationConfig controls breakdown of complex tickets into
// isolated child tasks.
type OrchestrationConfig struct {
	// Enabled gates orchestration globally. Disabled means every task
	// runs monolithically regardless of complexity.
	Enabled bool `yaml:"enabled"`

	// ComplexityThreshold is the minimum planner complexity estimate
	// that triggers breakdown (M, L, or XL).
	ComplexityThreshold models.Complexity `yaml:"complexity_threshold"`

	// ConflictStrategy resolves overlapping child hunks during diff
	// aggregation. manual is the safe default: overlaps surface to an
	// operator instead of being silently merged.
	ConflictStrategy ConflictStrategy `yaml:"conflict_strategy"`

	// AutoResolveThreshold is the max combined hunk size (lines) that
	// merge_additive will resolve automatically.
	AutoResolveThreshold int `yaml:"auto_resolve_threshold"`

	// Per-subtask limits enforced on breakdown outputs.
	MaxSubtaskFiles int `yaml:"max_subtask_files"`
	MaxSubtaskLines int `yaml:"max_subtask_lines"`
	MaxSubtaskSteps int `yaml:"max_subtask_steps"`
}

// DefaultOrchestrationConfig returns the built-in orchestration defaults.
func DefaultOrchestrationConfig() *OrchestrationConfig {
	return &OrchestrationConfig{
		Enabled:              true,
		ComplexityThreshold:  models.ComplexityM,
		ConflictStrategy:     ConflictManual,
		AutoResolveThreshold: 50,
		MaxSubtaskFiles:      2,
		MaxSubtaskLines:      50,
		MaxSubtaskSteps:      3,
	}
}

func (c *OrchestrationConfig) validate() error {
	switch c.ComplexityThreshold {
	case models.ComplexityM, models.ComplexityL, models.ComplexityXL:
	default:
		return NewValidationError("orchestration", "", "complexity_threshold",
			fmt.Errorf("%w: %q (want M, L, or XL)", ErrInvalidValue, c.ComplexityThreshold))
	}
	if !c.ConflictStrategy.Valid() {
		return NewValidationError("orchestration", "", "conflict_strategy",
			fmt.Errorf("%w: %q", ErrInvalidValue, c.ConflictStrategy))
	}
	if c.AutoResolveThreshold <= 0 {
		return NewValidationError("orchestration", "", "auto_resolve_threshold",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
