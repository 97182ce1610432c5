package llm

import (
	"errors"
	"fmt"
	"time"
)

// Backend names accepted in Config.Backend.
const (
	BackendAnthropic  = "anthropic"
	BackendOpenAI     = "openai"
	BackendGemini     = "gemini"
	BackendOpenRouter = "openrouter"
	BackendFake       = "fake"
)

const openRouterURL = "https://openrouter.ai/api/v1"

// Config selects a backend and how requests to it are made.
type Config struct {
	Backend string
	// Model is a model id or one of the short aliases for the backend.
	// Empty picks a small, cheap default.
	Model  string
	APIKey string
	// BaseURL points the backend at a different endpoint (a gateway or a
	// test server).
	BaseURL string

	Backoff Backoff
	// Timeout bounds one Complete call, retries included.
	Timeout time.Duration
}

// models maps each backend's aliases to model ids. The "" entry is the
// default.
var models = map[string]map[string]string{
	BackendAnthropic: {
		"":       "claude-haiku-4-5",
		"haiku":  "claude-haiku-4-5",
		"sonnet": "claude-sonnet-4-5",
	},
	BackendOpenAI: {
		"":     "gpt-4o-mini",
		"mini": "gpt-4o-mini",
		"nano": "gpt-4.1-nano",
	},
	BackendGemini: {
		"":           "gemini-2.0-flash",
		"flash":      "gemini-2.0-flash",
		"flash-lite": "gemini-2.0-flash-lite",
	},
	BackendOpenRouter: {
		"": "google/gemini-2.0-flash-001",
	},
}

// resolved fills the model, base URL, backoff and timeout.
func (c Config) resolved() Config {
	if id, ok := models[c.Backend][c.Model]; ok {
		c.Model = id
	}
	if c.Backend == BackendOpenRouter && c.BaseURL == "" {
		c.BaseURL = openRouterURL
	}
	if c.Backoff.Attempts == 0 {
		c.Backoff = DefaultBackoff()
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}

// keyVars lists the API key variables Discover checks, in priority order.
var keyVars = []struct{ name, backend string }{
	{"GEMINI_API_KEY", BackendGemini},
	{"OPENAI_API_KEY", BackendOpenAI},
	{"ANTHROPIC_API_KEY", BackendAnthropic},
	{"OPENROUTER_API_KEY", BackendOpenRouter},
}

// Discover returns a Config for the first API key variable that is set.
func Discover(getenv func(string) string) (Config, bool) {
	for _, v := range keyVars {
		if key := getenv(v.name); key != "" {
			return Config{Backend: v.backend, APIKey: key}.resolved(), true
		}
	}
	return Config{}, false
}

// Validate reports an unknown backend, a missing key or a negative
// timeout.
func (c Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendFake:
	case BackendAnthropic, BackendOpenAI, BackendGemini, BackendOpenRouter:
		if c.APIKey == "" {
			errs = append(errs, fmt.Errorf("the %s backend needs an API key (set llm.api_key or SABDAM_LLM_API_KEY)", c.Backend))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LLM backend %q", c.Backend))
	}
	if c.Timeout < 0 {
		errs = append(errs, errors.New("LLM timeout must not be negative"))
	}
	return errors.Join(errs...)
}
