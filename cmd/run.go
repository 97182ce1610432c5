package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/sabdam/internal/app"
	"github.com/abhisek/sabdam/internal/config"
	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/llm"
	"github.com/abhisek/sabdam/internal/logging"
	"github.com/abhisek/sabdam/internal/screen"
	"github.com/abhisek/sabdam/internal/tips"
)

type tuiOptions struct {
	practice  bool
	difficult bool
	count     int
	script    string
}

// runTUI opens the store, builds dependencies, and launches the TUI.
func runTUI(cmd *cobra.Command, o tuiOptions) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	logFile, err := logging.ToFile(e.log, e.cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	script := e.cfg.Script()
	if o.script != "" {
		s, ok := lexicon.ParseScript(o.script)
		if !ok {
			return fmt.Errorf("unknown script %q (want transliterated or native)", o.script)
		}
		script = s
	}
	count := e.cfg.Practice.QuestionCount
	if o.count != 0 {
		if o.count < 0 {
			return fmt.Errorf("--count must be positive, got %d", o.count)
		}
		count = o.count
	}

	deps := screen.Deps{
		Lexicon:       e.lex,
		Progress:      e.progress,
		Tips:          newTipService(cmd.Context(), e.cfg, e.log),
		Log:           e.log,
		QuestionCount: count,
		Script:        script,
	}
	e.log.WithField("db", e.cfg.DB).Info("starting tui")

	return app.Run(app.Options{
		Deps:          deps,
		StartPractice: o.practice,
		Difficult:     o.difficult,
	})
}

// llmConfig maps the llm section of the config file onto a backend
// config. An empty provider falls back to the standard API key variables.
func llmConfig(cfg *config.Config) (llm.Config, bool) {
	c := cfg.LLM
	if c.Provider == "" {
		discovered, ok := llm.Discover(os.Getenv)
		if !ok {
			return llm.Config{}, false
		}
		if c.Model != "" {
			discovered.Model = c.Model
		}
		if c.Timeout > 0 {
			discovered.Timeout = c.Timeout
		}
		return discovered, true
	}
	return llm.Config{
		Backend: c.Provider,
		Model:   c.Model,
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
	}, true
}

// newTipService returns a tip service, disabled when no provider is
// configured or the configured one fails to start.
func newTipService(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) *tips.Service {
	lc, ok := llmConfig(cfg)
	if !ok {
		log.Info("no LLM provider configured; pronunciation tips disabled")
		return tips.NewService(nil, tips.DefaultConfig(), log)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := llm.New(ctx, lc, log)
	if err != nil {
		log.WithError(err).WithField("backend", lc.Backend).Warn("LLM backend unavailable; pronunciation tips disabled")
		return tips.NewService(nil, tips.DefaultConfig(), log)
	}
	return tips.NewService(client, tips.DefaultConfig(), log)
}
