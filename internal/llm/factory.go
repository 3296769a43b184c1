package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/checkpoint/internal/store"
)

func newBackend(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		return NewOpenRouterProvider(cfg.OpenRouter)
	case "ollama":
		return NewOllamaProvider(cfg.Ollama)
	case "mock":
		return NewMockProvider(), nil
	}
	return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
}

// NewProvider builds the backend named by cfg.Provider. Calls pass through
// retry first, then logging when eventRepo is set, so every attempt is
// recorded. The mock backend is returned bare.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	base, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	if cfg.Provider == "mock" {
		return base, nil
	}

	if eventRepo != nil {
		base = WithLogging(base, cfg.Provider, eventRepo)
	}
	return WithRetry(base, cfg.Retry), nil
}

// NewCompleterFromConfig validates cfg and returns a Completer over the
// full provider stack.
func NewCompleterFromConfig(ctx context.Context, cfg Config, eventRepo store.EventRepo) (*Completer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, err
	}
	return NewCompleter(p, CompleterConfig{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	}), nil
}
