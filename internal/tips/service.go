package tips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/sabdam/internal/llm"
	"github.com/abhisek/sabdam/internal/logging"
)

var (
	// ErrDisabled is returned when no LLM provider is configured.
	ErrDisabled = errors.New("pronunciation tips are disabled: no LLM provider configured")
	// ErrUnknownPair is returned for a pair id missing from the lexicon.
	ErrUnknownPair = errors.New("unknown confusable pair")
)

// Service generates pronunciation tips and caches them per pair and
// target word for the life of the process.
type Service struct {
	client   llm.Client
	cfg      Config
	log      logrus.FieldLogger

	mu    sync.Mutex
	cache map[string]*Tip
}

// NewService creates a tip service. A nil client yields a disabled
// service whose Tip always returns ErrDisabled.
func NewService(client llm.Client, cfg Config, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{
		client:   client,
		cfg:      cfg,
		log:      log.WithField("component", "tips"),
		cache:    make(map[string]*Tip),
	}
}

// Enabled reports whether an LLM backend is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.client != nil
}

type tipOutput struct {
	Summary       string `json:"summary"`
	MouthPosition string `json:"mouth_position"`
	Mnemonic      string `json:"mnemonic"`
}

// Tip returns the coaching note for in, calling the backend at most once
// per pair and target.
func (s *Service) Tip(ctx context.Context, in Input) (*Tip, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}

	s.mu.Lock()
	cached, ok := s.cache[in.key()]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	reply, err := s.client.Complete(ctx, llm.Prompt{
		Purpose:      "pronunciation-tip",
		Instructions: systemPrompt,
		Input:        buildUserMessage(in),
		Format:       TipSchema,
		MaxTokens:    s.cfg.MaxTokens,
		Temperature:  s.cfg.Temperature,
	})
	if err != nil {
		s.log.WithError(err).WithField("pair_id", in.PairID).Warn("tip generation failed")
		return nil, fmt.Errorf("tip generation: %w", err)
	}

	var out tipOutput
	if err := json.Unmarshal(reply.JSON, &out); err != nil {
		return nil, fmt.Errorf("parse tip response: %w", err)
	}
	if strings.TrimSpace(out.Summary) == "" {
		return nil, fmt.Errorf("parse tip response: empty summary")
	}

	tip := &Tip{
		Summary:       strings.TrimSpace(out.Summary),
		MouthPosition: strings.TrimSpace(out.MouthPosition),
		Mnemonic:      strings.TrimSpace(out.Mnemonic),
		Model:         reply.Model,
	}

	s.mu.Lock()
	s.cache[in.key()] = tip
	s.mu.Unlock()
	return tip, nil
}
