package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// CoderelayYAMLConfig represents the complete coderelay.yaml file structure.
// Every section is optional: unset sections fall back to built-in defaults.
type CoderelayYAMLConfig struct {
	Defaults      *Defaults            `yaml:"defaults"`
	Queue         *QueueConfig         `yaml:"queue"`
	Orchestration *OrchestrationConfig `yaml:"orchestration"`
	LLM           *LLMConfig           `yaml:"llm"`
	Retention     *RetentionConfig     `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load coderelay.yaml from configDir (optional — defaults apply)
//  2. Expand environment variables
//  3. Merge user config over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"max_attempts", cfg.Defaults.MaxAttemptsPerTask,
		"orchestration_enabled", cfg.Orchestration.Enabled,
		"llm_backend", cfg.LLM.Backend)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	yamlCfg, err := loadCoderelayYAML(configDir)
	if err != nil {
		return nil, NewLoadError("coderelay.yaml", err)
	}

	// Merge user-provided sections over built-in defaults. Non-zero user
	// values override; unset values keep the defaults.
	defaults := DefaultDefaults()
	if yamlCfg.Defaults != nil {
		if err := mergo.Merge(defaults, yamlCfg.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults config: %w", err)
		}
	}

	queueCfg := DefaultQueueConfig()
	if yamlCfg.Queue != nil {
		if err := mergo.Merge(queueCfg, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	orchCfg := DefaultOrchestrationConfig()
	if yamlCfg.Orchestration != nil {
		if err := mergo.Merge(orchCfg, yamlCfg.Orchestration, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge orchestration config: %w", err)
		}
		// Bools cannot be distinguished from their zero value by mergo, so
		// the enabled flag is taken verbatim from the user section.
		orchCfg.Enabled = yamlCfg.Orchestration.Enabled
	}

	llmCfg := DefaultLLMConfig()
	if yamlCfg.LLM != nil {
		if err := mergo.Merge(llmCfg, yamlCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	retentionCfg := DefaultRetentionConfig()
	if yamlCfg.Retention != nil {
		if err := mergo.Merge(retentionCfg, yamlCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir:     configDir,
		Defaults:      defaults,
		Queue:         queueCfg,
		Orchestration: orchCfg,
		LLM:           llmCfg,
		Retention:     retentionCfg,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	if cfg.Defaults.MaxAttemptsPerTask <= 0 {
		return NewValidationError("defaults", "", "max_attempts_per_task",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Defaults.AgentTimeout <= 0 {
		return NewValidationError("defaults", "", "agent_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Queue.WorkerCount <= 0 {
		return NewValidationError("queue", "", "worker_count",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Queue.MaxConcurrentTasks <= 0 {
		return NewValidationError("queue", "", "max_concurrent_tasks",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Retention.TaskRetentionDays <= 0 {
		return NewValidationError("retention", "", "task_retention_days",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if err := cfg.Orchestration.validate(); err != nil {
		return err
	}
	if err := cfg.LLM.validate(); err != nil {
		return err
	}
	return nil
}

// loadCoderelayYAML reads and parses coderelay.yaml. A missing file is not
// an error: the built-in defaults describe a complete working setup.
func loadCoderelayYAML(configDir string) (*CoderelayYAMLConfig, error) {
	var config CoderelayYAMLConfig

	path := filepath.Join(configDir, "coderelay.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No coderelay.yaml found, using built-in defaults", "path", path)
			return &config, nil
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &config, nil
}
