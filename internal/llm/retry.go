package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient generation failures with exponential
// backoff. The budget stays small on purpose: a failed patient turn is
// recoverable at the session level, where the trainee simply resubmits,
// so this layer only has to smooth over short blips.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := r.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	schemaRetried := false
	var lastErr error
	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt+1 >= attempts || !retryable(err, &schemaRetried) {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable decides whether another attempt can plausibly succeed.
// Malformed structured output gets exactly one more chance; a second
// failure means the model cannot satisfy the schema, not bad luck.
func retryable(err error, schemaRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A truncated response needs a larger token budget, not another try.
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return false
	}

	var malformed *ErrInvalidResponse
	if errors.As(err, &malformed) {
		if *schemaRetried {
			return false
		}
		*schemaRetried = true
		return true
	}

	// Rate limits, outages and plain network errors are all transient.
	return true
}

// wait computes the sleep before the next attempt. A rate limit with a
// known RetryAfter overrides the backoff schedule.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	d := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if d > float64(r.config.MaxWait) {
		d = float64(r.config.MaxWait)
	}

	// Spread concurrent sessions out with ±20% jitter.
	d *= 1 + 0.2*(2*rand.Float64()-1)
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}
