package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/coderelay-ai/coderelay/pkg/config"
)

// Thinking budgets per collapsed reasoning effort. The Anthropic API has
// no three-level effort knob; medium and high map onto extended thinking
// budgets instead.
const (
	thinkingBudgetMedium = 2048
	thinkingBudgetHigh   = 8192
)

// AnthropicClient implements Client on the Anthropic Messages API.
type AnthropicClient struct {
	client sdk.Client
	cfg    *config.LLMConfig
}

// NewAnthropicClient creates an Anthropic-backed client.
func NewAnthropicClient(cfg *config.LLMConfig, apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("llm: anthropic api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &AnthropicClient{
		client: sdk.NewClient(opts...),
		cfg:    cfg,
	}, nil
}

// Complete issues a non-streaming Messages.New request.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Response, error) {
	if req.Model == "" {
		return nil, errors.New("llm: model identifier is required")
	}
	if req.MaxTokens <= 0 {
		return nil, errors.New("llm: max_tokens must be positive")
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.UserPrompt)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []sdk.TextBlockParam{{Text: req.SystemPrompt}}
	}

	// Extended thinking requires default temperature and a budget below
	// max_tokens; temperature only applies to non-thinking calls.
	budget := thinkingBudget(req.ReasoningEffort.Collapse(), req.MaxTokens)
	if budget > 0 {
		params.Thinking = sdk.ThinkingConfigParamOfEnabled(int64(budget))
	} else if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, classifyAnthropicError(err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &Response{
		Text:         text.String(),
		Model:        string(msg.Model),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}, nil
}

// thinkingBudget maps a collapsed effort onto a thinking token budget.
// Returns 0 when thinking should stay disabled (low effort, or budgets
// that would not fit under max_tokens).
func thinkingBudget(effort config.ReasoningEffort, maxTokens int) int {
	var budget int
	switch effort {
	case config.EffortMedium:
		budget = thinkingBudgetMedium
	case config.EffortHigh:
		budget = thinkingBudgetHigh
	default:
		return 0
	}
	if budget >= maxTokens {
		return 0
	}
	return budget
}

// classifyAnthropicError maps SDK errors onto the transport taxonomy.
func classifyAnthropicError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	var apierr *sdk.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == 429:
			return fmt.Errorf("%w: %w", ErrRateLimited, err)
		case apierr.StatusCode == 401 || apierr.StatusCode == 403:
			return fmt.Errorf("%w: %w", ErrAuthentication, err)
		case apierr.StatusCode >= 500:
			return fmt.Errorf("%w: %w", ErrTransient, err)
		}
		return fmt.Errorf("anthropic messages.new: %w", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	return fmt.Errorf("anthropic messages.new: %w", err)
}
