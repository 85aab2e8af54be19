// Package agent runs model-backed agents against compiled contexts and
// validates their outputs. Every agent returns a closed JSON schema;
// anything the schema rejects is a step failure, never a silent default.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/llm"
	"github.com/coderelay-ai/coderelay/pkg/memory"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// Non-retryable agent-layer failures. These consume one task attempt.
var (
	// ErrUnparsableOutput indicates no JSON object could be recovered
	// from the model response, even after repair.
	ErrUnparsableOutput = errors.New("agent: unparsable model output")

	// ErrSchemaViolation indicates the output parsed but failed the
	// agent's schema.
	ErrSchemaViolation = errors.New("agent: output schema violation")
)

// Usage records the cost of one agent invocation for event accounting.
type Usage struct {
	Model        string
	InputTokens  int
	OutputTokens int
	Latency      time.Duration
}

// TotalTokens returns input plus output token usage.
func (u *Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// Runtime invokes agents through the LLM client and validates outputs.
type Runtime struct {
	client  llm.Client
	cfg     *config.LLMConfig
	schemas map[models.AgentType]*jsonschema.Schema
	logger  *slog.Logger
}

// NewRuntime creates the agent runtime, compiling all output schemas.
func NewRuntime(client llm.Client, cfg *config.LLMConfig, logger *slog.Logger) (*Runtime, error) {
	schemas, err := compileSchemas()
	if err != nil {
		return nil, fmt.Errorf("failed to compile agent schemas: %w", err)
	}
	return &Runtime{
		client:  client,
		cfg:     cfg,
		schemas: schemas,
		logger:  logger.With("component", "agent.runtime"),
	}, nil
}

// Invoke runs one agent on a compiled context and returns the validated
// raw JSON plus usage. Callers needing a typed output use Run.
func (r *Runtime) Invoke(ctx context.Context, agentType models.AgentType, cc *memory.CompiledContext) ([]byte, *Usage, error) {
	schema, ok := r.schemas[agentType]
	if !ok {
		return nil, nil, fmt.Errorf("agent: unrecognized agent type %q", agentType)
	}

	settings := r.cfg.ForAgent(string(agentType))
	req := llm.Request{
		Model:           settings.Model,
		SystemPrompt:    cc.SystemPrompt,
		UserPrompt:      cc.UserPrompt,
		MaxTokens:       settings.MaxTokens,
		ReasoningEffort: settings.ReasoningEffort,
	}
	if settings.Temperature != nil {
		req.Temperature = *settings.Temperature
	}

	start := time.Now()
	resp, err := r.client.Complete(ctx, req)
	latency := time.Since(start)
	if err != nil {
		return nil, nil, fmt.Errorf("agent %s: %w", agentType, err)
	}

	usage := &Usage{
		Model:        resp.Model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		Latency:      latency,
	}

	raw, err := r.parseAndValidate(agentType, schema, resp.Text)
	if err != nil {
		return nil, usage, err
	}

	r.logger.Info("Agent invocation completed",
		"agent", agentType,
		"model", usage.Model,
		"tokens", usage.TotalTokens(),
		"latency_ms", latency.Milliseconds())
	return raw, usage, nil
}

// parseAndValidate extracts the first JSON object, repairing it when the
// strict parse fails, and validates it against the agent's schema.
func (r *Runtime) parseAndValidate(agentType models.AgentType, schema *jsonschema.Schema, text string) ([]byte, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		repaired, repairErr := repairJSON(raw)
		if repairErr != nil {
			return nil, repairErr
		}
		r.logger.Warn("Repaired malformed agent JSON", "agent", agentType)
		raw = repaired
		doc, err = jsonschema.UnmarshalJSON(strings.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparsableOutput, err)
		}
	}

	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return []byte(raw), nil
}

// Run invokes an agent and decodes its validated output into O. Unknown
// fields fail the decode; the schema already forbids them, so this is a
// consistency check, not a second validator.
func Run[O any](ctx context.Context, r *Runtime, agentType models.AgentType, cc *memory.CompiledContext) (*O, *Usage, error) {
	raw, usage, err := r.Invoke(ctx, agentType, cc)
	if err != nil {
		return nil, usage, err
	}

	var out O
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return nil, usage, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return &out, usage, nil
}
