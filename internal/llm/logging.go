package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/checkpoint/internal/logger"
	"github.com/abhisek/checkpoint/internal/store"
	"go.uber.org/zap"
)

// callRecorder appends one store event per backend call.
type callRecorder struct {
	inner   Provider
	backend string
	repo    store.EventRepo
}

// WithLogging records every call made through p in repo. backend names
// the provider (anthropic, ollama, ...) on the stored events.
func WithLogging(p Provider, backend string, repo store.EventRepo) Provider {
	return &callRecorder{inner: p, backend: backend, repo: repo}
}

func (c *callRecorder) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := c.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	event := c.event(ctx, req, resp, err)
	event.LatencyMs = elapsed.Milliseconds()

	log := logger.Get().With(
		zap.String("request_id", event.RequestID),
		zap.String("provider", event.Provider),
		zap.String("model", event.Model),
		zap.String("purpose", event.Purpose))
	log.Debug("model call",
		zap.Duration("latency", elapsed),
		zap.Int("input_tokens", event.InputTokens),
		zap.Int("output_tokens", event.OutputTokens),
		zap.Bool("success", event.Success))

	if werr := c.repo.AppendLLMRequest(ctx, event); werr != nil {
		log.Warn("could not record model call", zap.Error(werr))
	}
	return resp, err
}

func (c *callRecorder) ModelID() string { return c.inner.ModelID() }

func (c *callRecorder) event(ctx context.Context, req Request, resp *Response, err error) store.LLMRequestEventData {
	e := store.LLMRequestEventData{
		RequestID:   RequestIDFrom(ctx),
		Provider:    c.backend,
		Model:       c.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		if resp.Model != "" {
			e.Model = resp.Model
		}
		e.InputTokens = resp.Usage.InputTokens
		e.OutputTokens = resp.Usage.OutputTokens
		e.ResponseBody = resp.Text
	}
	if err != nil {
		e.ErrorMessage = err.Error()
	}
	return e
}

// transcript renders req as "[role]" headed blocks, followed by the
// response schema when one was requested.
func transcript(req Request) string {
	var blocks []string
	if req.System != "" {
		blocks = append(blocks, "[system]\n"+req.System)
	}
	for _, m := range req.Messages {
		blocks = append(blocks, fmt.Sprintf("[%s]\n%s", m.Role, m.Content))
	}
	if req.Schema != nil {
		if def, err := json.MarshalIndent(req.Schema.Definition, "", "  "); err == nil {
			blocks = append(blocks, fmt.Sprintf("[schema %s]\n%s", req.Schema.Name, def))
		}
	}
	return strings.Join(blocks, "\n\n")
}
