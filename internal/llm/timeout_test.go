package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stalledProvider blocks until its context is cancelled.
type stalledProvider struct{}

func (stalledProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stalledProvider) ModelID() string { return "stalled" }

// deafProvider blocks on its own channel and never looks at the context.
type deafProvider struct {
	release chan struct{}
}

func (d *deafProvider) Generate(context.Context, Request) (*Response, error) {
	<-d.release
	return nil, errors.New("released")
}

func (d *deafProvider) ModelID() string { return "deaf" }

func TestTimeout_StalledProviderIsRetryable(t *testing.T) {
	p := WithTimeout(stalledProvider{}, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T: %v", err, err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("call was not bounded, took %s", elapsed)
	}
}

func TestTimeout_ProviderIgnoringContextStillBounded(t *testing.T) {
	deaf := &deafProvider{release: make(chan struct{})}
	defer close(deaf.release)
	p := WithTimeout(deaf, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("call was not bounded, took %s", elapsed)
	}
}

func TestTimeout_CallerCancellationPassesThrough(t *testing.T) {
	p := WithTimeout(stalledProvider{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		t.Fatal("caller cancellation must not be reported as an outage")
	}
}

func TestTimeout_FastResponseUnaffected(t *testing.T) {
	mock := NewMockProvider(PatientReply("Fine."))
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Fine." {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeout_DisabledReturnsProviderUnchanged(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero timeout must not wrap the provider")
	}
}
