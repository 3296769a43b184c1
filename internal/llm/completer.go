package llm

import (
	"context"
	"time"
)

// CompleterConfig tunes the requests a Completer sends.
type CompleterConfig struct {
	// System is an optional system prompt sent with every request.
	System string

	MaxTokens   int
	Temperature float64

	// Timeout bounds a single call, retries included. Zero adds no
	// deadline beyond the caller's context.
	Timeout time.Duration
}

// Completer exposes a Provider as a text-in/text-out function: one user
// message in, the raw reply out.
type Completer struct {
	provider Provider
	config   CompleterConfig
}

// NewCompleter wraps p.
func NewCompleter(p Provider, cfg CompleterConfig) *Completer {
	return &Completer{provider: p, config: cfg}
}

// Complete sends prompt and returns the model's text reply.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt, nil)
}

// CompleteJSON is Complete with the backend asked for JSON shaped like
// schema. The reply is returned unvalidated.
func (c *Completer) CompleteJSON(ctx context.Context, prompt string, schema *Schema) (string, error) {
	return c.complete(ctx, prompt, schema)
}

func (c *Completer) complete(ctx context.Context, prompt string, schema *Schema) (string, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	resp, err := c.provider.Generate(ctx, Request{
		System:      c.config.System,
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		Schema:      schema,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return "", err
	}
	if resp.StopReason == StopMaxTokens {
		return "", &ErrMaxTokensExceeded{Partial: resp.Text}
	}
	return resp.Text, nil
}

// ModelID reports the underlying provider's model.
func (c *Completer) ModelID() string {
	return c.provider.ModelID()
}
