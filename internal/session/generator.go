package session

import (
	"errors"

	"github.com/samber/lo"

	"github.com/abhisek/sabdam/internal/lexicon"
)

// ReferenceData is the read-only word and pair table.
type ReferenceData interface {
	Pairs() []lexicon.ConfusablePair
	Resolve(id string) (lexicon.Word, error)
}

// Generator builds question lists from the confusable pair table.
type Generator struct {
	ref ReferenceData
	rng Rand
}

// NewGenerator creates a generator. A nil rng uses DefaultRand.
func NewGenerator(ref ReferenceData, rng Rand) *Generator {
	if rng == nil {
		rng = DefaultRand()
	}
	return &Generator{ref: ref, rng: rng}
}

// Generate returns up to count questions, each from a distinct pair. When
// restrict is non-empty only pairs touching one of its ids are eligible;
// if none are, the result is empty.
//
// A pair that references a missing word yields an *IntegrityError.
func (g *Generator) Generate(count int, restrict []string) ([]Question, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	pool := g.pool(restrict)
	g.shuffle(pool)
	pool = pool[:min(count, len(pool))]

	questions := make([]Question, 0, len(pool))
	for i, p := range pool {
		word, err := g.resolve(p, p.WordID)
		if err != nil {
			return nil, err
		}
		confusable, err := g.resolve(p, p.ConfusableWordID)
		if err != nil {
			return nil, err
		}
		if g.rng.IntN(2) == 1 {
			word, confusable = confusable, word
		}
		questions = append(questions, Question{
			ID:             questionID(i),
			PairID:         p.ID,
			CorrectWord:    word,
			ConfusableWord: confusable,
			Reason:         p.Reason,
		})
	}
	return questions, nil
}

// EligiblePairs reports how many pairs a session restricted to restrict
// could draw from.
func (g *Generator) EligiblePairs(restrict []string) int {
	return len(g.pool(restrict))
}

func (g *Generator) pool(restrict []string) []lexicon.ConfusablePair {
	pairs := append([]lexicon.ConfusablePair(nil), g.ref.Pairs()...)
	if len(restrict) == 0 {
		return pairs
	}
	ids := lo.SliceToMap(restrict, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
	return lo.Filter(pairs, func(p lexicon.ConfusablePair, _ int) bool {
		_, a := ids[p.WordID]
		_, b := ids[p.ConfusableWordID]
		return a || b
	})
}

// shuffle is an in-place Fisher–Yates permutation.
func (g *Generator) shuffle(pairs []lexicon.ConfusablePair) {
	for i := len(pairs) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
}

func (g *Generator) resolve(p lexicon.ConfusablePair, id string) (lexicon.Word, error) {
	w, err := g.ref.Resolve(id)
	if err != nil {
		if errors.Is(err, lexicon.ErrWordNotFound) {
			return lexicon.Word{}, &IntegrityError{PairID: p.ID, WordID: id}
		}
		return lexicon.Word{}, err
	}
	return w, nil
}
