package rpc

import (
	"context"
	"errors"
	"time"

	"github.com/tescoboy/sales-agent2/internal/core/port"
)

// RetryPolicy controls re-dispatch of failed tool calls. The zero value
// performs exactly one attempt, matching the baseline behaviour of the
// agents. Hardening the client is a configuration change: set MaxAttempts
// and optionally a Backoff curve and a Retryable predicate.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Values below 1 are treated as 1.
	MaxAttempts int
	// Backoff returns the delay before the given attempt (1-based retry
	// index). Nil means no delay.
	Backoff func(attempt int) time.Duration
	// Retryable reports whether a failed call may be re-dispatched. Nil
	// defaults to retrying transport failures only.
	Retryable func(error) bool
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p RetryPolicy) shouldRetry(err error) bool {
	if p.Retryable != nil {
		return p.Retryable(err)
	}
	var agentErr *port.AgentError
	return errors.As(err, &agentErr) && agentErr.Kind == port.ErrorKindTransport
}

func (p RetryPolicy) wait(ctx context.Context, attempt int) error {
	if p.Backoff == nil {
		return nil
	}
	delay := p.Backoff(attempt)
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
