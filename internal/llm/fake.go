package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Scripted is one canned outcome for Fake.
type Scripted struct {
	JSON   json.RawMessage
	Tokens Tokens
	Err    error
}

// Fake is an in-process Client for tests and the "fake" backend. It plays
// back scripted outcomes in order and records every prompt it receives.
// Replies are checked against the prompt's Format like a real backend.
type Fake struct {
	mu      sync.Mutex
	script  []Scripted
	prompts []Prompt
}

// NewFake returns a Fake that will play back script.
func NewFake(script ...Scripted) *Fake {
	return &Fake{script: script}
}

// Complete returns the next scripted outcome. An exhausted script reads as
// an unavailable backend.
func (f *Fake) Complete(_ context.Context, p Prompt) (*Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, p)
	if len(f.script) == 0 {
		return nil, &Failure{Kind: Unavailable, Backend: BackendFake}
	}
	next := f.script[0]
	f.script = f.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	if err := conform(BackendFake, p.Format, next.JSON); err != nil {
		return nil, err
	}
	return &Reply{JSON: next.JSON, Model: f.Model(), Tokens: next.Tokens}, nil
}

func (f *Fake) Model() string { return "fake" }

// Prompts returns a copy of the prompts received so far.
func (f *Fake) Prompts() []Prompt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Prompt(nil), f.prompts...)
}
