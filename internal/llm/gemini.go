package llm

import (
	"context"
	"encoding/json"
	"errors"

	"google.golang.org/genai"
)

// gemini speaks the Gemini API through the genai SDK.
type gemini struct {
	client *genai.Client
	model  string
}

func newGemini(ctx context.Context, cfg Config) (*gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, err
	}
	return &gemini{client: client, model: cfg.Model}, nil
}

func (g *gemini) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	gc := &genai.GenerateContentConfig{MaxOutputTokens: int32(p.MaxTokens)}
	if p.Temperature > 0 {
		gc.Temperature = genai.Ptr(float32(p.Temperature))
	}
	if p.Instructions != "" {
		gc.SystemInstruction = genai.NewContentFromText(p.Instructions, genai.RoleUser)
	}
	if p.Format != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseJsonSchema = p.Format.Schema
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(p.Input), gc)
	if err != nil {
		return nil, g.failure(err)
	}

	out := json.RawMessage(res.Text())
	if len(res.Candidates) > 0 && res.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		return nil, &Failure{Kind: Truncated, Backend: BackendGemini, Raw: out}
	}
	if err := conform(BackendGemini, p.Format, out); err != nil {
		return nil, err
	}

	reply := &Reply{JSON: out, Model: g.model}
	if res.ModelVersion != "" {
		reply.Model = res.ModelVersion
	}
	if u := res.UsageMetadata; u != nil {
		reply.Tokens = Tokens{In: int(u.PromptTokenCount), Out: int(u.CandidatesTokenCount)}
	}
	return reply, nil
}

func (g *gemini) Model() string { return g.model }

func (g *gemini) failure(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	// genai returns APIError by value.
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fromStatus(BackendGemini, apiErr.Code, nil, err)
	}
	return &Failure{Kind: Unavailable, Backend: BackendGemini, Err: err}
}
