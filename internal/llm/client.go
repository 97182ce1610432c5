// Package llm talks to the hosted language models that write pronunciation
// tips. Each backend turns a Prompt into a schema-checked JSON Reply;
// decorators add deadlines, retries and request logging on top.
package llm

import (
	"context"
	"encoding/json"
)

// Client completes one prompt.
type Client interface {
	Complete(ctx context.Context, p Prompt) (*Reply, error)

	// Model is the model id requests are sent to.
	Model() string
}

// Prompt is a single-turn request: instructions plus one user input.
type Prompt struct {
	// Purpose labels the request in logs, e.g. "pronunciation-tip".
	Purpose string

	Instructions string
	Input        string

	// Format, when set, asks the backend for JSON matching its schema.
	// The reply is checked against the schema before it is returned.
	Format *Format

	MaxTokens   int
	Temperature float64
}

// Format names a JSON schema the reply must conform to.
type Format struct {
	// Name is kebab-case; backends use it as the schema or tool name.
	Name        string
	Description string
	Schema      map[string]any
}

// Reply is a completed request.
type Reply struct {
	// JSON is the model output. Without a Format it is whatever text the
	// model returned.
	JSON   json.RawMessage
	Model  string
	Tokens Tokens
}

// Tokens counts the tokens billed for one request.
type Tokens struct {
	In  int
	Out int
}

// Total is In plus Out.
func (t Tokens) Total() int { return t.In + t.Out }
