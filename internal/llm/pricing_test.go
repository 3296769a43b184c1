package llm

import (
	"math"
	"testing"
)

func TestLookupPrice(t *testing.T) {
	tests := []struct {
		model  string
		want   Price
		wantOK bool
	}{
		{"gpt-4o", Price{2.5, 10}, true},
		{"gpt-4o-mini", Price{0.15, 0.6}, true},
		{"gpt-4o-mini-2024-07-18", Price{0.15, 0.6}, true},
		{"gpt-4.1-mini-2025-04-14", Price{0.4, 1.6}, true},
		{"claude-haiku-4-5-20251001", Price{1, 5}, true},
		{"claude-sonnet-4-20250514", Price{3, 15}, true},
		{"claude-opus-4-5-20251101", Price{5, 25}, true},
		{"gemini-2.0-flash-001", Price{0.1, 0.4}, true},
		{"google/gemini-2.5-pro", Price{1.25, 10}, true},
		{"gpt-4oops", Price{}, false},
		{"llama3.2", Price{}, false},
		{"mock", Price{}, false},
	}
	for _, tt := range tests {
		got, ok := LookupPrice(tt.model)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("LookupPrice(%q) = %v, %v; want %v, %v", tt.model, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEstimateCost(t *testing.T) {
	cost, ok := EstimateCost("gpt-4o", Usage{InputTokens: 1_000_000, OutputTokens: 500_000})
	if !ok {
		t.Fatal("expected a known model")
	}
	if math.Abs(cost-7.5) > 1e-9 {
		t.Fatalf("cost = %f, want 7.5", cost)
	}

	if _, ok := EstimateCost("llama3.2", Usage{InputTokens: 10}); ok {
		t.Fatal("local models have no price")
	}
}
