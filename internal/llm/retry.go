package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Backoff is the retry policy for transient failures.
type Backoff struct {
	Attempts int
	First    time.Duration
	Ceiling  time.Duration
	Factor   float64
}

// DefaultBackoff allows three attempts, waiting about 1s then 2s.
func DefaultBackoff() Backoff {
	return Backoff{Attempts: 3, First: time.Second, Ceiling: 10 * time.Second, Factor: 2}
}

// delay is the wait before retry n (zero-based), with ±20% jitter.
func (b Backoff) delay(n int, jitter func() float64) time.Duration {
	d := float64(b.First)
	for range n {
		d *= b.Factor
	}
	if ceil := float64(b.Ceiling); ceil > 0 && d > ceil {
		d = ceil
	}
	d *= 0.8 + 0.4*jitter()
	return time.Duration(d)
}

type retrying struct {
	next   Client
	policy Backoff
	jitter func() float64
	sleep  func(context.Context, time.Duration) error
}

// Retrying wraps c so transient failures are retried under policy.
// Rate limits and outages are retried until attempts run out; a malformed
// reply is retried once; truncation, rejected requests and context
// errors are returned immediately.
func Retrying(c Client, policy Backoff) Client {
	return &retrying{next: c, policy: policy, jitter: rand.Float64, sleep: sleepCtx}
}

func (r *retrying) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	attempts := max(r.policy.Attempts, 1)
	reshaped := false

	var err error
	for n := range attempts {
		var reply *Reply
		if reply, err = r.next.Complete(ctx, p); err == nil {
			return reply, nil
		}
		if !retryable(err, &reshaped) || n == attempts-1 {
			break
		}

		wait := r.policy.delay(n, r.jitter)
		var f *Failure
		if errors.As(err, &f) && f.Kind == RateLimited && f.RetryAfter > 0 {
			wait = f.RetryAfter
		}
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

func (r *retrying) Model() string { return r.next.Model() }

func retryable(err error, reshaped *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		return true
	}
	switch kind {
	case Truncated, Rejected:
		return false
	case Malformed:
		if *reshaped {
			return false
		}
		*reshaped = true
	}
	return true
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
