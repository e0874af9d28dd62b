// Package agent is the boundary to the external generative model. The
// rest of the codebase talks to it through small request/turn values so
// handlers and services can substitute a stub in tests.
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

var (
	ErrInvalidConfig   = errors.New("invalid agent configuration")
	ErrEmptyCompletion = errors.New("model returned no completion choices")
)

// Config holds the connection settings for the OpenAI-compatible API.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: API key required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model required", ErrInvalidConfig)
	}
	return nil
}

// Turn is one prior exchange in a conversation, role "user" or "assistant".
type Turn struct {
	Role    string
	Content string
}

// Request describes a single non-streaming completion call.
type Request struct {
	System      string
	Turns       []Turn
	Temperature float64
	MaxTokens   int
	JSONOnly    bool
}

// Client wraps the langchaingo OpenAI client.
type Client struct {
	llm *openai.LLM
}

func New(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := []openai.Option{
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	}
	if config.BaseURL != "" {
		options = append(options, openai.WithBaseURL(config.BaseURL))
	}

	llm, err := openai.New(options...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &Client{llm: llm}, nil
}

// Complete sends the system prompt plus conversation turns and returns the
// raw text of the first choice. Transport, auth and quota failures surface
// as errors; the caller decides whether anything can recover them.
func (client *Client) Complete(ctx context.Context, request Request) (string, error) {
	content := make([]llms.MessageContent, 0, len(request.Turns)+1)
	content = append(content, llms.TextParts(schema.ChatMessageTypeSystem, request.System))
	for _, turn := range request.Turns {
		role := schema.ChatMessageTypeHuman
		if turn.Role == "assistant" {
			role = schema.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, turn.Content))
	}

	options := []llms.CallOption{
		llms.WithTemperature(request.Temperature),
		llms.WithMaxTokens(request.MaxTokens),
	}
	if request.JSONOnly {
		options = append(options, llms.WithJSONMode())
	}

	response, err := client.llm.GenerateContent(ctx, content, options...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return response.Choices[0].Content, nil
}
