package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/checkpoint/internal/logger"
	"go.uber.org/zap"
)

// RetryProvider resends requests that failed transiently, backing off
// exponentially with jitter. An ErrInvalidResponse is resent at most once.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p. MaxAttempts below 1 is treated as 1.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.config.MaxAttempts, 1)
	invalidSeen := false

	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		var invalid *ErrInvalidResponse
		retryable := IsTransient(err)
		if errors.As(err, &invalid) {
			retryable = !invalidSeen
			invalidSeen = true
		}
		if !retryable || attempt >= attempts {
			return nil, err
		}

		wait := r.backoff(attempt, err)
		logger.Get().Debug("retrying LLM request",
			zap.String("request_id", RequestIDFrom(ctx)),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff returns the wait before attempt+1. A rate limit that names its
// own delay is honored as-is.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt-1))
	wait = math.Min(wait, float64(r.config.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1) // ±20%
	return time.Duration(math.Max(wait, 0))
}
