package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/coderelay-ai/coderelay/pkg/config"
)

// OpenAIClient implements Client on the OpenAI Chat Completions API.
type OpenAIClient struct {
	client openai.Client
	cfg    *config.LLMConfig
}

// NewOpenAIClient creates an OpenAI-backed client.
func NewOpenAIClient(cfg *config.LLMConfig, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("llm: openai api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIClient{
		client: openai.NewClient(opts...),
		cfg:    cfg,
	}, nil
}

// Complete issues a non-streaming chat completion.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (*Response, error) {
	if req.Model == "" {
		return nil, errors.New("llm: model identifier is required")
	}
	if req.MaxTokens <= 0 {
		return nil, errors.New("llm: max_tokens must be positive")
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	params := openai.ChatCompletionNewParams{
		Model:               shared.ChatModel(req.Model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(req.MaxTokens)),
		ReasoningEffort:     shared.ReasoningEffort(req.ReasoningEffort.Collapse()),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classifyOpenAIError(err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: completion returned no choices", ErrTransient)
	}
	choice := completion.Choices[0]
	if choice.FinishReason == "content_filter" {
		return nil, fmt.Errorf("%w: completion blocked by content filter", ErrContentPolicy)
	}

	return &Response{
		Text:         choice.Message.Content,
		Model:        completion.Model,
		InputTokens:  int(completion.Usage.PromptTokens),
		OutputTokens: int(completion.Usage.CompletionTokens),
	}, nil
}

// classifyOpenAIError maps SDK errors onto the transport taxonomy.
func classifyOpenAIError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == 429:
			return fmt.Errorf("%w: %w", ErrRateLimited, err)
		case apierr.StatusCode == 401 || apierr.StatusCode == 403:
			return fmt.Errorf("%w: %w", ErrAuthentication, err)
		case apierr.StatusCode >= 500:
			return fmt.Errorf("%w: %w", ErrTransient, err)
		}
		return fmt.Errorf("openai chat.completions.new: %w", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	return fmt.Errorf("openai chat.completions.new: %w", err)
}
