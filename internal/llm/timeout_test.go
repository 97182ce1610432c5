package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stalled never answers until its context ends.
type stalled struct{}

func (stalled) Complete(ctx context.Context, _ Prompt) (*Reply, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stalled) Model() string { return "stalled" }

func TestBounded_GivesUp(t *testing.T) {
	c := Bounded(stalled{}, 10*time.Millisecond)

	_, err := c.Complete(context.Background(), tipPrompt())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "stalled", c.Model())
}

func TestBounded_ZeroLimitIsTransparent(t *testing.T) {
	assert.Equal(t, Client(stalled{}), Bounded(stalled{}, 0))
}
