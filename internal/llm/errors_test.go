package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		status int
		want   string
	}{
		{429, "rate"},
		{0, "unavailable"},
		{408, "unavailable"},
		{500, "unavailable"},
		{503, "unavailable"},
		{400, "rejected"},
		{401, "rejected"},
		{404, "rejected"},
	}

	for _, tt := range tests {
		err := classifyStatus(tt.status, cause)
		var got string
		switch err.(type) {
		case *ErrRateLimit:
			got = "rate"
		case *ErrProviderUnavailable:
			got = "unavailable"
		case *ErrRejected:
			got = "rejected"
		}
		if got != tt.want {
			t.Errorf("status %d: got %T, want %s", tt.status, err, tt.want)
		}
		if !errors.Is(err, cause) {
			t.Errorf("status %d: cause not wrapped", tt.status)
		}
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), false},
		{"rejected", &ErrRejected{StatusCode: 401}, false},
		{"truncated", &ErrMaxTokensExceeded{}, false},
		{"rate limit", &ErrRateLimit{}, true},
		{"unavailable", &ErrProviderUnavailable{}, true},
		{"wrapped unavailable", fmt.Errorf("generate: %w", &ErrProviderUnavailable{}), true},
		{"invalid", &ErrInvalidResponse{Err: errors.New("empty")}, true},
	}
	for _, tt := range tests {
		if got := IsTransient(tt.err); got != tt.want {
			t.Errorf("%s: IsTransient = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBackendError_PrefersContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := backendError(ctx, 500, errors.New("read: connection reset"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	err = backendError(context.Background(), 500, errors.New("read: connection reset"))
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ErrProviderUnavailable{}, "model backend unavailable"},
		{&ErrRateLimit{Err: errors.New("429")}, "rate limited: 429"},
		{&ErrRejected{StatusCode: 401, Err: errors.New("bad key")}, "request rejected (HTTP 401): bad key"},
		{&ErrMaxTokensExceeded{}, "model response truncated at max tokens"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
