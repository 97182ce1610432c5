package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// tipFormat mirrors the pronunciation-tip schema the tips package sends.
var tipFormat = &Format{
	Name:        "pronunciation-tip",
	Description: "How to tell apart two confusable Malayalam words",
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":        map[string]any{"type": "string"},
			"mouth_position": map[string]any{"type": "string"},
			"mnemonic":       map[string]any{"type": "string"},
		},
		"required":             []any{"summary", "mouth_position", "mnemonic"},
		"additionalProperties": false,
	},
}

const tipJSON = `{"summary":"paaL ends in a retroflex L, paal in a plain l.","mouth_position":"Curl the tongue tip back to the roof of the mouth.","mnemonic":"Milk makes you curl up: paaL."}`

func tipPrompt() Prompt {
	return Prompt{
		Purpose:      "pronunciation-tip",
		Instructions: "You are a Malayalam pronunciation coach.",
		Input:        "The learner confused paal (milk) with paaL (stone).",
		Format:       tipFormat,
		MaxTokens:    400,
		Temperature:  0.4,
	}
}

// serve starts a test server that answers every request with status and
// body, recording the decoded request body into got when non-nil.
func serve(t *testing.T, status int, body any, got *map[string]any) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			_ = json.NewDecoder(r.Body).Decode(got)
		}
		w.Header().Set("Content-Type", "application/json")
		if status == http.StatusTooManyRequests {
			w.Header().Set("Retry-After", "7")
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}
