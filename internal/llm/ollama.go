package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider implements Provider against a local Ollama server through
// langchaingo.
type OllamaProvider struct {
	client *ollama.LLM
	model  string
}

// NewOllamaProvider creates a provider for the configured server and model.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	client, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return &OllamaProvider{client: client, model: cfg.Model}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	messages := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	for _, m := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, m.Content))
	}

	var opts []llms.CallOption
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}
	// Ollama's format=json takes no schema; the prompt carries the shape.
	if req.Schema != nil {
		opts = append(opts, llms.WithJSONMode())
	}

	result, err := p.client.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return nil, backendError(ctx, ollamaStatus(err), err)
	}
	if len(result.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("ollama returned no choices")}
	}

	choice := result.Choices[0]
	return &Response{
		Text: choice.Content,
		Usage: Usage{
			InputTokens:  generationInt(choice.GenerationInfo, "PromptTokens"),
			OutputTokens: generationInt(choice.GenerationInfo, "CompletionTokens"),
		},
		Model:      p.model,
		StopReason: StopEnd,
	}, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}

// generationInt reads a counter from langchaingo's untyped generation info.
func generationInt(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// ollamaStatus recovers the HTTP status from the client's error text,
// which starts with the response status line (e.g. "429 Too Many Requests").
// It returns 0 for transport errors.
func ollamaStatus(err error) int {
	msg := err.Error()
	if len(msg) < 3 {
		return 0
	}
	code, convErr := strconv.Atoi(msg[:3])
	if convErr != nil || code < 100 || (len(msg) > 3 && !strings.HasPrefix(msg[3:], " ")) {
		return 0
	}
	return code
}
