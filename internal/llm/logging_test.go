package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/checkpoint/internal/store"
)

type recordingRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsEvent(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Text:  "Question: Q",
		Usage:   Usage{InputTokens: 12, OutputTokens: 4},
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, "gemini", repo)

	ctx := WithRequestID(WithPurpose(context.Background(), "quiz-gen"), "req-42")
	if _, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "content here"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.RequestID != "req-42" || e.Purpose != "quiz-gen" || e.Provider != "gemini" {
		t.Fatalf("unexpected event: %+v", e)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 4 {
		t.Fatalf("unexpected event: %+v", e)
	}
	if !strings.Contains(e.RequestBody, "[user]\ncontent here") || !strings.Contains(e.RequestBody, "[system]\nsys") {
		t.Fatalf("unexpected request body %q", e.RequestBody)
	}
	if e.ResponseBody != "Question: Q" {
		t.Fatalf("unexpected response body %q", e.ResponseBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	repo := &recordingRepo{}
	p := WithLogging(mock, "openai", repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 || repo.events[0].Success {
		t.Fatalf("expected one failed event, got %+v", repo.events)
	}
	if !strings.Contains(repo.events[0].ErrorMessage, "down") {
		t.Fatalf("unexpected error message %q", repo.events[0].ErrorMessage)
	}
}

func TestLoggingProvider_StoreFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(TextResponse("ok"))
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(mock, "mock", repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("got %q", resp.Text)
	}
}

func TestTranscript_IncludesSchema(t *testing.T) {
	got := transcript(Request{
		Messages: []Message{{Role: RoleUser, Content: "passage"}},
		Schema: &Schema{
			Name:       "quiz",
			Definition: map[string]any{"type": "object"},
		},
	})
	want := "[user]\npassage\n\n[schema quiz]\n{\n  \"type\": \"object\"\n}"
	if got != want {
		t.Fatalf("transcript = %q", got)
	}
}
