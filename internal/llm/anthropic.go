package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// claude speaks the Anthropic messages API.
type claude struct {
	client anthropic.Client
	model  string
}

func newAnthropic(cfg Config) (*claude, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing API key")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Retries are handled by Retrying so each attempt is logged.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &claude{client: anthropic.NewClient(opts...), model: cfg.Model}, nil
}

func (c *claude) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(p.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(p.Input)),
		},
	}
	if p.Instructions != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.Instructions}}
	}
	if p.Temperature > 0 {
		params.Temperature = anthropic.Float(p.Temperature)
	}
	if p.Format != nil {
		params.OutputConfig.Format = anthropic.JSONOutputFormatParam{Schema: p.Format.Schema}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, c.failure(err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	out := json.RawMessage(text.String())
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		return nil, &Failure{Kind: Truncated, Backend: BackendAnthropic, Raw: out}
	}
	if text.Len() == 0 {
		return nil, malformed(BackendAnthropic, nil, "reply has no text")
	}
	if err := conform(BackendAnthropic, p.Format, out); err != nil {
		return nil, err
	}
	return &Reply{
		JSON:   out,
		Model:  string(msg.Model),
		Tokens: Tokens{In: int(msg.Usage.InputTokens), Out: int(msg.Usage.OutputTokens)},
	}, nil
}

func (c *claude) Model() string { return c.model }

func (c *claude) failure(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		var h http.Header
		if apiErr.Response != nil {
			h = apiErr.Response.Header
		}
		return fromStatus(BackendAnthropic, apiErr.StatusCode, h, err)
	}
	return &Failure{Kind: Unavailable, Backend: BackendAnthropic, Err: err}
}
