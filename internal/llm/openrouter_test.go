package llm

import (
	"context"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("model ids pass through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "gpt-mini",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "gpt-mini" {
			t.Errorf("model = %q, want gpt-mini", p.ModelID())
		}
		if p.strictSchema {
			t.Error("openrouter should not request json_schema")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}); err == nil {
			t.Fatal("expected error for empty API key")
		}
	})
}

func TestOpenRouterProvider_JSONObjectMode(t *testing.T) {
	var body map[string]any
	url := chatServer(t, `{"question":"Q?"}`, "stop", &body)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "meta-llama/llama-3-8b",
		BaseURL: url,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "x"}},
		Schema:   &Schema{Name: "checkpoint-quiz", Definition: map[string]any{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["model"] != "meta-llama/llama-3-8b" {
		t.Fatalf("unexpected model %v", body["model"])
	}
	format, _ := body["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Fatalf("expected json_object, got %v", format["type"])
	}
}
