// Package llm talks to hosted and local language models on behalf of the
// quiz creator. Every backend implements Provider; decorators add retries
// and request logging.
package llm

import "context"

// Provider sends one request to a model and returns its reply.
type Provider interface {
	// Generate returns the model's text reply. When req.Schema is set the
	// provider asks the backend for JSON shaped like the schema, using
	// whatever native mechanism it has. The reply is not checked against
	// the schema here; callers parse and validate it themselves.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single model call.
type Request struct {
	// System is an optional system prompt.
	System string

	// Messages is the conversation. Quiz generation always sends a single
	// user message.
	Messages []Message

	// Schema, when set, requests JSON output in this shape.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the backend default in place.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema document.
type Schema struct {
	// Name identifies the schema, e.g. "checkpoint-quiz". OpenAI requires
	// it for json_schema response formats.
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason says why the model stopped producing output.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is a model reply.
type Response struct {
	Text       string
	Usage      Usage
	Model      string // the model that actually served the request
	StopReason StopReason
}

// Usage is the token accounting reported by the backend.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// lastUserMessage returns the content of the final user turn.
func lastUserMessage(msgs []Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == RoleUser {
			return msgs[i].Content
		}
	}
	return ""
}

// resolveModel maps a short alias such as "claude-haiku" to a full model
// ID. Unknown names pass through so full IDs can be configured directly.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
