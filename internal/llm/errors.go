package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrRateLimit means the backend refused the call with HTTP 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers transport failures and 5xx responses.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model backend unavailable: %v", e.Err)
	}
	return "model backend unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRejected means the backend answered with a client error other than
// 429, e.g. a bad API key or an unknown model. Retrying will not help.
type ErrRejected struct {
	StatusCode int
	Err        error
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("request rejected (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *ErrRejected) Unwrap() error { return e.Err }

// ErrInvalidResponse means the backend replied but the reply had no
// usable content, or did not match a requested schema.
type ErrInvalidResponse struct {
	Text string
	Err  error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means the reply was cut off at the token limit.
type ErrMaxTokensExceeded struct {
	Partial string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated at max tokens"
}

// classifyStatus turns an SDK error carrying an HTTP status into one of
// the error types above. status 0 means the SDK gave no status.
func classifyStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status >= 500 || status == 0:
		return &ErrProviderUnavailable{Err: err}
	case status == http.StatusRequestTimeout:
		return &ErrProviderUnavailable{Err: err}
	default:
		return &ErrRejected{StatusCode: status, Err: err}
	}
}

// IsTransient reports whether err may go away if the same request is sent
// again.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var rejected *ErrRejected
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &rejected) || errors.As(err, &truncated) {
		return false
	}
	return true
}

// backendError classifies err from an SDK call. Cancellation of ctx wins
// over whatever the SDK reported.
func backendError(ctx context.Context, status int, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return classifyStatus(status, err)
}
