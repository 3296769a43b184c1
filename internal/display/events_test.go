package display

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/checkpoint/internal/store"
)

func record(id int, model string, ok bool) store.LLMRequestEventRecord {
	return store.LLMRequestEventRecord{
		ID:        id,
		Timestamp: time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local),
		LLMRequestEventData: store.LLMRequestEventData{
			RequestID:    "req-1",
			Provider:     "openai",
			Model:        model,
			Purpose:      "quiz-gen",
			InputTokens:  120,
			OutputTokens: 40,
			LatencyMs:    850,
			Success:      ok,
		},
	}
}

func TestEventList(t *testing.T) {
	out := ansi.Strip(EventList([]store.LLMRequestEventRecord{
		record(1, "gpt-4o-mini", true),
		record(2, "gpt-4o-mini", false),
	}))

	assert.Contains(t, out, "Purpose")
	assert.Contains(t, out, "2026-03-01 09:30:00")
	assert.Contains(t, out, "gpt-4o-mini")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "✗")
}

func TestEventDetail(t *testing.T) {
	e := record(7, "gpt-4o-mini", false)
	e.ErrorMessage = "rate limited: 429"
	e.RequestBody = "[user]\nParis is the capital of France."

	out := ansi.Strip(EventDetail(&e))
	assert.Contains(t, out, "Request:  req-1")
	assert.Contains(t, out, "Tokens:   120 in / 40 out")
	assert.Contains(t, out, "Error:    rate limited: 429")
	assert.Contains(t, out, "Paris is the capital of France.")
	assert.Contains(t, out, "(not captured)")
}

func TestUsageByPurpose(t *testing.T) {
	out := ansi.Strip(UsageByPurpose([]store.PurposeUsage{
		{Purpose: "quiz-gen", Calls: 3, InputTokens: 300, OutputTokens: 90, AvgLatencyMs: 700},
		{Purpose: "demo", Calls: 1, InputTokens: 10, OutputTokens: 5},
	}))
	assert.Contains(t, out, "quiz-gen")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "405")
}

func TestCostByModel(t *testing.T) {
	out := ansi.Strip(CostByModel([]store.ModelUsage{
		{Model: "gpt-4o", Calls: 1, InputTokens: 1_000_000, OutputTokens: 0},
	}))
	assert.Contains(t, out, "$2.50")
	assert.NotContains(t, out, "partial")

	out = ansi.Strip(CostByModel([]store.ModelUsage{
		{Model: "gpt-4o", Calls: 1, InputTokens: 1000},
		{Model: "llama3.2", Calls: 2, InputTokens: 1000},
	}))
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "No price for: llama3.2")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0025", FormatCost(0.0025))
	assert.Equal(t, "$1.25", FormatCost(1.25))
}
