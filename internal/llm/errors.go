package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// The error types below are the package's whole failure vocabulary. The
// retry layer keys its decisions off them, and the interview session wraps
// whatever survives retry into a per-turn GenerationError the trainee can
// recover from by resubmitting.

// ErrRateLimit reports a 429 from the provider. RetryAfter, when known,
// overrides the backoff schedule.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that failed schema validation or
// was not parseable. Content carries the offending output for diagnosis.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports that the provider could not serve the
// request at all: a 5xx, a network failure, or an expired attempt deadline.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a structured response cut off at the token
// budget. Retrying cannot help; the budget has to grow.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// mapAPIStatus folds a provider HTTP status into the package vocabulary.
// 429 becomes a rate limit; everything else, including auth and client
// errors, is reported as an outage and left to the retry budget.
func mapAPIStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
