package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type logged struct {
	next    Client
	backend string
	log     logrus.FieldLogger
	now     func() time.Time
}

// Logged records every request on c with its purpose, latency, token
// counts and estimated cost. A nil log returns c unchanged.
func Logged(c Client, backend string, log logrus.FieldLogger) Client {
	if log == nil {
		return c
	}
	return &logged{next: c, backend: backend, log: log.WithField("component", "llm"), now: time.Now}
}

func (l *logged) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	start := l.now()
	reply, err := l.next.Complete(ctx, p)

	purpose := p.Purpose
	if purpose == "" {
		purpose = "unlabelled"
	}
	fields := logrus.Fields{
		"backend":    l.backend,
		"model":      l.next.Model(),
		"purpose":    purpose,
		"latency_ms": l.now().Sub(start).Milliseconds(),
	}
	if p.Format != nil {
		fields["format"] = p.Format.Name
	}
	if reply != nil {
		fields["model"] = reply.Model
		fields["tokens_in"] = reply.Tokens.In
		fields["tokens_out"] = reply.Tokens.Out
		fields["tokens_total"] = reply.Tokens.Total()
		if price, ok := priceOf(reply.Model); ok {
			fields["cost_usd"] = price.cost(reply.Tokens)
		}
	}

	entry := l.log.WithFields(fields)
	if err != nil {
		if kind, ok := KindOf(err); ok {
			entry = entry.WithField("failure", kind.String())
		}
		entry.WithError(err).Warn("llm request failed")
		return nil, err
	}
	entry.Debug("llm request")
	return reply, nil
}

func (l *logged) Model() string { return l.next.Model() }
