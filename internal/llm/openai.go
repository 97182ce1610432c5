package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openAI speaks the chat completions API. OpenRouter and other
// compatible gateways use it with a different base URL.
type openAI struct {
	name   string
	client *openai.Client
	model  string
}

func newOpenAI(cfg Config) (*openAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing API key")
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &openAI{name: cfg.Backend, client: openai.NewClientWithConfig(oc), model: cfg.Model}, nil
}

func (o *openAI) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	req := openai.ChatCompletionRequest{
		Model:               o.model,
		MaxCompletionTokens: p.MaxTokens,
		Temperature:         float32(p.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: p.Input},
		},
	}
	if p.Instructions != "" {
		req.Messages = append([]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.Instructions},
		}, req.Messages...)
	}
	if p.Format != nil {
		schema, err := json.Marshal(p.Format.Schema)
		if err != nil {
			return nil, fmt.Errorf("encode %s schema: %w", p.Format.Name, err)
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        p.Format.Name,
				Description: p.Format.Description,
				Schema:      json.RawMessage(schema),
				Strict:      true,
			},
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, o.failure(err)
	}
	if len(resp.Choices) == 0 {
		return nil, malformed(o.name, nil, "reply has no choices")
	}

	choice := resp.Choices[0]
	out := json.RawMessage(choice.Message.Content)
	if choice.FinishReason == openai.FinishReasonLength {
		return nil, &Failure{Kind: Truncated, Backend: o.name, Raw: out}
	}
	if err := conform(o.name, p.Format, out); err != nil {
		return nil, err
	}
	return &Reply{
		JSON:   out,
		Model:  resp.Model,
		Tokens: Tokens{In: resp.Usage.PromptTokens, Out: resp.Usage.CompletionTokens},
	}, nil
}

func (o *openAI) Model() string { return o.model }

func (o *openAI) failure(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fromStatus(o.name, apiErr.HTTPStatusCode, nil, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fromStatus(o.name, reqErr.HTTPStatusCode, nil, err)
	}
	return &Failure{Kind: Unavailable, Backend: o.name, Err: err}
}
