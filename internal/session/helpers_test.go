package session

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/progress"
	"github.com/abhisek/sabdam/internal/store"
)

// zeroRand always returns 0: shuffles are deterministic and the pair's
// first word is always the correct one.
type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

func seeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func fixtureLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	w := func(id, tr string) lexicon.Word {
		return lexicon.Word{ID: id, Forms: lexicon.Forms{Transliteration: tr}, Meaning: tr}
	}
	lex, err := lexicon.New(
		[]lexicon.Word{w("a", "paal"), w("b", "paaL"), w("c", "kaal"), w("d", "kaaL"), w("e", "vellam")},
		[]lexicon.ConfusablePair{
			{ID: "p1", WordID: "a", ConfusableWordID: "b", Reason: "l vs L"},
			{ID: "p2", WordID: "b", ConfusableWordID: "a", Reason: "l vs L"},
			{ID: "p3", WordID: "c", ConfusableWordID: "d", Reason: "l vs L"},
		},
	)
	require.NoError(t, err)
	return lex
}

// spyRecorder wraps a real progress store and counts calls.
type spyRecorder struct {
	*progress.Store

	mu         sync.Mutex
	increments []string
	difficult  []string
	saves      [][2]int
}

func newSpy() *spyRecorder {
	return &spyRecorder{Store: progress.NewStore(store.NewMemory(), nil)}
}

func (s *spyRecorder) AddDifficultWord(ctx context.Context, id string) {
	s.mu.Lock()
	s.difficult = append(s.difficult, id)
	s.mu.Unlock()
	s.Store.AddDifficultWord(ctx, id)
}

func (s *spyRecorder) IncrementWordProgress(ctx context.Context, id string) {
	s.mu.Lock()
	s.increments = append(s.increments, id)
	s.mu.Unlock()
	s.Store.IncrementWordProgress(ctx, id)
}

func (s *spyRecorder) SaveSessionResult(ctx context.Context, score, total int) {
	s.mu.Lock()
	s.saves = append(s.saves, [2]int{score, total})
	s.mu.Unlock()
	s.Store.SaveSessionResult(ctx, score, total)
}
