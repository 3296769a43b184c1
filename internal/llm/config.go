package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects a backend and carries the settings for every backend, so
// switching providers is a one-field change.
type Config struct {
	// Provider is one of the names in Backends().
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Ollama     OllamaConfig
	Retry      RetryConfig

	// MaxTokens caps the length of one quiz reply.
	MaxTokens int
	// Temperature is passed through to the backend (0.0-1.0).
	Temperature float64
	// Timeout bounds one completion including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OllamaConfig points at a local Ollama server. No credentials.
type OllamaConfig struct {
	ServerURL string
	Model     string
}

// RetryConfig is the backoff policy for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Ollama: OllamaConfig{
			ServerURL: "http://localhost:11434",
			Model:     "llama3.2",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		MaxTokens:   512,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
	}
}

// backend describes one provider name. Hosted backends have a vendor key
// variable; local ones need only a server address.
type backend struct {
	name    string
	envKey  string
	setting string
	value   func(*Config) *string
}

// backends is in discovery priority order.
var backends = []backend{
	{"gemini", "GEMINI_API_KEY", "api_key", func(c *Config) *string { return &c.Gemini.APIKey }},
	{"openai", "OPENAI_API_KEY", "api_key", func(c *Config) *string { return &c.OpenAI.APIKey }},
	{"anthropic", "ANTHROPIC_API_KEY", "api_key", func(c *Config) *string { return &c.Anthropic.APIKey }},
	{"openrouter", "OPENROUTER_API_KEY", "api_key", func(c *Config) *string { return &c.OpenRouter.APIKey }},
	{"ollama", "", "server_url", func(c *Config) *string { return &c.Ollama.ServerURL }},
	{"mock", "", "", nil},
}

func lookupBackend(name string) (backend, bool) {
	for _, b := range backends {
		if b.name == name {
			return b, true
		}
	}
	return backend{}, false
}

// Backends lists the accepted Provider values.
func Backends() []string {
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.name
	}
	return names
}

// DiscoverConfig returns base switched to the first hosted backend whose
// vendor key (GEMINI_API_KEY, OPENAI_API_KEY, ...) is set. It reports
// false and returns base unchanged when none is.
func DiscoverConfig(base Config) (Config, bool) {
	for _, b := range backends {
		if b.envKey == "" {
			continue
		}
		if k := os.Getenv(b.envKey); k != "" {
			cfg := base
			cfg.Provider = b.name
			*b.value(&cfg) = k
			return cfg, true
		}
	}
	return base, false
}

// FillVendorKey copies the selected backend's vendor key into c when c has
// none of its own.
func (c *Config) FillVendorKey() {
	b, ok := lookupBackend(c.Provider)
	if !ok || b.envKey == "" || *b.value(c) != "" {
		return
	}
	*b.value(c) = os.Getenv(b.envKey)
}

// HasCredentials reports whether the selected provider can be constructed
// without further configuration.
func (c Config) HasCredentials() bool {
	return c.Validate() == nil
}

// Validate checks that the selected provider has its required setting.
func (c Config) Validate() error {
	b, ok := lookupBackend(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if b.value == nil || *b.value(&c) != "" {
		return nil
	}
	env := strings.ToUpper("CHECKPOINT_LLM_" + b.name + "_" + b.setting)
	return fmt.Errorf("llm.%s.%s (%s) is required for the %s provider", b.name, b.setting, env, b.name)
}
