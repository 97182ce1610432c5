package screen

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/logging"
	"github.com/abhisek/sabdam/internal/progress"
	"github.com/abhisek/sabdam/internal/session"
	"github.com/abhisek/sabdam/internal/tips"
)

// Deps carries the services every screen may need.
type Deps struct {
	Lexicon  *lexicon.Lexicon
	Progress *progress.Store
	Tips     *tips.Service
	Log      logrus.FieldLogger
	Rand     session.Rand

	QuestionCount int
	Script        lexicon.Script
}

// Logger returns Log or a discarding logger.
func (d Deps) Logger() logrus.FieldLogger {
	if d.Log == nil {
		return logging.Discard()
	}
	return d.Log
}

// ReviewPairs counts the pairs a difficult-word review would draw from.
// It is zero when nothing is marked or when every marked word has left
// the library, e.g. after importing an older backup.
func (d Deps) ReviewPairs(ctx context.Context) int {
	if d.Lexicon == nil || d.Progress == nil {
		return 0
	}
	difficult := d.Progress.GetDifficultWords(ctx)
	if len(difficult) == 0 {
		return 0
	}
	return session.NewGenerator(d.Lexicon, d.Rand).EligiblePairs(difficult)
}

// NewController builds a session controller over the lexicon and store.
func (d Deps) NewController() *session.Controller {
	rng := d.Rand
	if rng == nil {
		rng = session.DefaultRand()
	}
	return session.NewController(
		session.NewGenerator(d.Lexicon, rng),
		d.Progress,
		session.WithLogger(d.Logger()),
	)
}
