package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Default retry policy values. The proceedings site is flaky and
// rate-limited; a small number of spaced attempts inside a bounded
// window recovers most transient failures without hammering it.
const (
	// DefaultMaxAttempts is the total attempt ceiling per fetch.
	DefaultMaxAttempts = 3

	// DefaultWindow bounds the total time spent on one fetch
	// including retries and the delays between them.
	DefaultWindow = 60 * time.Second

	// DefaultInterval is the fixed delay between attempts.
	DefaultInterval = 2 * time.Second
)

// StatusError is returned when a fetch receives a non-success HTTP
// status. It carries the status code so the retry predicate can
// distinguish transient server errors from permanent client errors.
type StatusError struct {
	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP response status code.
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.StatusCode, e.URL)
}

// Policy is a bounded retry policy applied at the fetch boundary:
// at most MaxAttempts attempts within a Window, spaced by Interval,
// retrying only errors RetryIf accepts. The zero value is not useful;
// use DefaultPolicy and adjust.
type Policy struct {
	// MaxAttempts is the total number of attempts (first try
	// included). Values below 1 behave as 1.
	MaxAttempts int

	// Window bounds the total elapsed time across attempts. Once an
	// upcoming delay would cross the window, the last error is
	// returned instead. Zero means no window limit.
	Window time.Duration

	// Interval is the fixed delay between attempts.
	Interval time.Duration

	// RetryIf decides whether an error is transient. Nil means
	// DefaultRetryIf.
	RetryIf func(error) bool

	// now and sleep are injected by tests to avoid wall-clock waits.
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// DefaultPolicy returns the retry policy used by the crawl phases.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		Window:      DefaultWindow,
		Interval:    DefaultInterval,
		RetryIf:     DefaultRetryIf,
	}
}

// DefaultRetryIf is the default retryable-error predicate. Network
// level failures, including attempt timeouts, are treated as
// transient. HTTP status errors are retried only for rate limiting
// and server-side failures; a 404 will not improve on retry.
func DefaultRetryIf(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests ||
			statusErr.StatusCode >= http.StatusInternalServerError
	}

	return true
}

// Do runs op under the policy, returning nil on the first success.
// Retry exhaustion wraps the last error so callers can still inspect
// it with errors.As; cancellation of ctx stops retrying immediately.
func (p Policy) Do(ctx context.Context, op func() error) error {
	retryIf := p.RetryIf
	if retryIf == nil {
		retryIf = DefaultRetryIf
	}
	now := p.now
	if now == nil {
		now = time.Now
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	deadline := now().Add(p.Window)

	var lastErr error
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !retryIf(lastErr) {
			return lastErr
		}
		if attempt >= p.MaxAttempts {
			return fmt.Errorf("retry attempts (%d) exhausted: %w", p.MaxAttempts, lastErr)
		}
		if p.Window > 0 && now().Add(p.Interval).After(deadline) {
			return fmt.Errorf("retry window (%s) exhausted after %d attempts: %w", p.Window, attempt, lastErr)
		}

		if err := sleep(ctx, p.Interval); err != nil {
			return err
		}
	}
}

// sleepContext waits for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
