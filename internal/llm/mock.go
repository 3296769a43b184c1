package llm

import (
	"context"
	"strings"
	"sync"
)

// MockResponse is one canned reply for MockProvider. When Err is set it is
// returned instead of a response.
type MockResponse struct {
	Text       string
	Usage      Usage
	StopReason StopReason
	Err        error
}

// TextResponse is a successful MockResponse carrying text.
func TextResponse(text string) MockResponse {
	return MockResponse{Text: text}
}

// MockProvider replays canned responses in FIFO order and records every
// request it receives.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given responses queued.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate pops the next response. An empty queue behaves like an
// unreachable backend.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.Err != nil {
		return nil, next.Err
	}

	stop := next.StopReason
	if stop == "" {
		stop = StopEnd
	}
	return &Response{Text: next.Text, Usage: next.Usage, Model: "mock", StopReason: stop}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse queues another response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// ScriptRule answers any prompt containing Match with Reply.
type ScriptRule struct {
	Match string
	Reply string
}

// ScriptedProvider answers by inspecting the prompt: the first rule whose
// Match occurs in the last user message wins, otherwise Fallback is
// returned. It stands in for a model whose output quality depends on how
// it is instructed.
type ScriptedProvider struct {
	Rules    []ScriptRule
	Fallback string

	mu    sync.Mutex
	calls int
}

func (s *ScriptedProvider) Generate(_ context.Context, req Request) (*Response, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	prompt := lastUserMessage(req.Messages)
	reply := s.Fallback
	for _, r := range s.Rules {
		if strings.Contains(prompt, r.Match) {
			reply = r.Reply
			break
		}
	}
	return &Response{Text: reply, Model: "scripted", StopReason: StopEnd}, nil
}

func (s *ScriptedProvider) ModelID() string {
	return "scripted"
}

// CallCount returns the number of Generate calls made.
func (s *ScriptedProvider) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
