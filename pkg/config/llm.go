package config

import "fmt"

// LLMBackend selects the provider SDK path.
type LLMBackend string

// Recognized LLM backends.
const (
	BackendAnthropic LLMBackend = "anthropic"
	BackendOpenAI    LLMBackend = "openai"
)

// ReasoningEffort is the requested reasoning budget for a model call.
// Providers that accept only three levels receive the collapsed mapping
// {none,low}→low, medium→medium, {high,xhigh}→high.
type ReasoningEffort string

// Reasoning effort levels.
const (
	EffortNone   ReasoningEffort = "none"
	EffortLow    ReasoningEffort = "low"
	EffortMedium ReasoningEffort = "medium"
	EffortHigh   ReasoningEffort = "high"
	EffortXHigh  ReasoningEffort = "xhigh"
)

// Collapse maps the five-level effort scale onto the three levels most
// provider APIs accept.
func (e ReasoningEffort) Collapse() ReasoningEffort {
	switch e {
	case EffortNone, EffortLow:
		return EffortLow
	case EffortMedium:
		return EffortMedium
	case EffortHigh, EffortXHigh:
		return EffortHigh
	default:
		return EffortMedium
	}
}

// AgentLLMSettings are per-agent overrides of the provider defaults.
type AgentLLMSettings struct {
	Model           string          `yaml:"model,omitempty"`
	Temperature     *float64        `yaml:"temperature,omitempty"`
	MaxTokens       int             `yaml:"max_tokens,omitempty"`
	ReasoningEffort ReasoningEffort `yaml:"reasoning_effort,omitempty"`
}

// LLMConfig configures the LLM provider used by the agent runtime.
type LLMConfig struct {
	// Backend selects the SDK (anthropic or openai).
	Backend LLMBackend `yaml:"backend"`

	// Model is the default model identifier.
	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// BaseURL overrides the provider endpoint (for proxies/gateways).
	BaseURL string `yaml:"base_url,omitempty"`

	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`

	// ReasoningEffort is the default effort for all agents.
	ReasoningEffort ReasoningEffort `yaml:"reasoning_effort,omitempty"`

	// Agents holds per-agent overrides keyed by agent name
	// (planner, coder, fixer, validator, reviewer, breakdown).
	Agents map[string]AgentLLMSettings `yaml:"agents,omitempty"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Backend:         BackendAnthropic,
		Model:           "claude-sonnet-4-5",
		APIKeyEnv:       "ANTHROPIC_API_KEY",
		MaxTokens:       8192,
		Temperature:     0.2,
		ReasoningEffort: EffortMedium,
	}
}

// ForAgent resolves the effective settings for one agent by applying
// per-agent overrides over the provider defaults.
func (c *LLMConfig) ForAgent(agent string) AgentLLMSettings {
	temp := c.Temperature
	resolved := AgentLLMSettings{
		Model:           c.Model,
		Temperature:     &temp,
		MaxTokens:       c.MaxTokens,
		ReasoningEffort: c.ReasoningEffort,
	}
	override, ok := c.Agents[agent]
	if !ok {
		return resolved
	}
	if override.Model != "" {
		resolved.Model = override.Model
	}
	if override.Temperature != nil {
		resolved.Temperature = override.Temperature
	}
	if override.MaxTokens > 0 {
		resolved.MaxTokens = override.MaxTokens
	}
	if override.ReasoningEffort != "" {
		resolved.ReasoningEffort = override.ReasoningEffort
	}
	return resolved
}

func (c *LLMConfig) validate() error {
	switch c.Backend {
	case BackendAnthropic, BackendOpenAI:
	default:
		return NewValidationError("llm", string(c.Backend), "backend",
			fmt.Errorf("%w: %q (want anthropic or openai)", ErrInvalidValue, c.Backend))
	}
	if c.Model == "" {
		return NewValidationError("llm", string(c.Backend), "model", ErrMissingRequiredField)
	}
	if c.MaxTokens <= 0 {
		return NewValidationError("llm", string(c.Backend), "max_tokens",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
