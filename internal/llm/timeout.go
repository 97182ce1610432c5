package llm

import (
	"context"
	"time"
)

type bounded struct {
	next  Client
	limit time.Duration
}

// Bounded gives every Complete call on c at most limit to finish,
// retries included. A non-positive limit returns c unchanged.
func Bounded(c Client, limit time.Duration) Client {
	if limit <= 0 {
		return c
	}
	return &bounded{next: c, limit: limit}
}

func (b *bounded) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, b.limit)
	defer cancel()
	return b.next.Complete(ctx, p)
}

func (b *bounded) Model() string { return b.next.Model() }
