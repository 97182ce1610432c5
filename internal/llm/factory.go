package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// New builds the client for cfg. Calls pass through the deadline, then
// the retry loop, then request logging before reaching the backend, so
// every attempt is logged and the deadline covers all of them.
func New(ctx context.Context, cfg Config, log logrus.FieldLogger) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.resolved()

	var (
		base Client
		err  error
	)
	switch cfg.Backend {
	case BackendAnthropic:
		base, err = newAnthropic(cfg)
	case BackendOpenAI, BackendOpenRouter:
		base, err = newOpenAI(cfg)
	case BackendGemini:
		base, err = newGemini(ctx, cfg)
	case BackendFake:
		return NewFake(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("start %s backend: %w", cfg.Backend, err)
	}

	c := Logged(base, cfg.Backend, log)
	c = Retrying(c, cfg.Backoff)
	return Bounded(c, cfg.Timeout), nil
}
