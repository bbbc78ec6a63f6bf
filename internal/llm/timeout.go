package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TimeoutProvider bounds every Generate call with a deadline. The interview
// session holds its lock across the provider call, so a stalled provider
// must surface as a recoverable error rather than block the session. The
// inner call runs in its own goroutine and is abandoned once the deadline
// passes, even when the SDK ignores context cancellation.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-request deadline. A zero or
// negative timeout returns the provider unchanged.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

type generateResult struct {
	resp *Response
	err  error
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	tctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	done := make(chan generateResult, 1)
	go func() {
		resp, err := t.inner.Generate(tctx, req)
		done <- generateResult{resp: resp, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil && ctx.Err() == nil && errors.Is(res.err, context.DeadlineExceeded) {
			return nil, t.timeoutErr()
		}
		return res.resp, res.err
	case <-tctx.Done():
		if err := ctx.Err(); err != nil {
			// The caller cancelled; pass that through untouched so the
			// retry layer stops instead of trying again.
			return nil, err
		}
		return nil, t.timeoutErr()
	}
}

// timeoutErr classifies an expired deadline as a provider outage, which the
// retry layer treats as transient.
func (t *TimeoutProvider) timeoutErr() error {
	return &ErrProviderUnavailable{
		Err: fmt.Errorf("no response within %s", t.timeout),
	}
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
