package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/sabdam/internal/config"
	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/logging"
	"github.com/abhisek/sabdam/internal/progress"
	"github.com/abhisek/sabdam/internal/store"
)

// env is what most commands need: configuration, a logger, the word
// list and the learner's progress record.
type env struct {
	cfg      *config.Config
	log      *logrus.Logger
	lex      *lexicon.Lexicon
	st       *store.Store
	progress *progress.Store
}

// loadConfig reads configuration and applies the persistent flag
// overrides. --db beats SABDAM_DB beats the default path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB = p
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}

// openEnv loads config, builds the logger and opens the store. The
// caller must Close the env.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	if err := store.EnsureDir(cfg.DB); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.WithField("db", cfg.DB).Debug("store opened")

	return &env{
		cfg:      cfg,
		log:      log,
		lex:      lexicon.Default(),
		st:       st,
		progress: progress.NewStore(st, log),
	}, nil
}

func (e *env) Close() error {
	return e.st.Close()
}
