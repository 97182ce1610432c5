package lexicon

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// ErrWordNotFound is returned when a word id does not resolve.
var ErrWordNotFound = errors.New("word not found")

// Lexicon is the immutable table of words and confusable pairs.
// It is safe for concurrent use.
type Lexicon struct {
	words     []Word
	byID      map[string]*Word
	pairs     []ConfusablePair
	pairByID  map[string]int
	pairsWith map[string][]int
}

// New validates the dataset and builds the lookup indices. Any
// integrity problem is returned as a single joined error.
func New(words []Word, pairs []ConfusablePair) (*Lexicon, error) {
	if err := validate(words, pairs); err != nil {
		return nil, err
	}

	l := &Lexicon{
		words:     append([]Word(nil), words...),
		byID:      make(map[string]*Word, len(words)),
		pairs:     append([]ConfusablePair(nil), pairs...),
		pairByID:  make(map[string]int, len(pairs)),
		pairsWith: make(map[string][]int),
	}
	for i := range l.words {
		l.byID[l.words[i].ID] = &l.words[i]
	}
	for i, p := range l.pairs {
		l.pairByID[p.ID] = i
		l.pairsWith[p.WordID] = append(l.pairsWith[p.WordID], i)
		l.pairsWith[p.ConfusableWordID] = append(l.pairsWith[p.ConfusableWordID], i)
	}
	return l, nil
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the lexicon built from the bundled dataset. A bundled
// dataset that fails validation is a build defect, so Default panics.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		l, err := Load(wordsJSON, pairsJSON)
		if err != nil {
			panic(fmt.Sprintf("lexicon: bundled dataset is invalid: %v", err))
		}
		defaultLex = l
	})
	return defaultLex
}

// Words returns all words in dataset order.
func (l *Lexicon) Words() []Word {
	return append([]Word(nil), l.words...)
}

// Len returns the number of words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Word looks up a word by id.
func (l *Lexicon) Word(id string) (Word, bool) {
	w, ok := l.byID[id]
	if !ok {
		return Word{}, false
	}
	return *w, true
}

// Resolve looks up a word by id and wraps ErrWordNotFound on a miss.
func (l *Lexicon) Resolve(id string) (Word, error) {
	w, ok := l.Word(id)
	if !ok {
		return Word{}, fmt.Errorf("%w: %q", ErrWordNotFound, id)
	}
	return w, nil
}

// Pairs returns all confusable pairs in dataset order.
func (l *Lexicon) Pairs() []ConfusablePair {
	return append([]ConfusablePair(nil), l.pairs...)
}

// Pair looks up a confusable pair by id.
func (l *Lexicon) Pair(id string) (ConfusablePair, bool) {
	i, ok := l.pairByID[id]
	if !ok {
		return ConfusablePair{}, false
	}
	return l.pairs[i], true
}

// PairsForWord returns every pair with id on either side.
func (l *Lexicon) PairsForWord(id string) []ConfusablePair {
	return lo.Map(l.pairsWith[id], func(i int, _ int) ConfusablePair {
		return l.pairs[i]
	})
}

// Search returns words whose transliteration, native form or meaning
// contains query (case-insensitive). An empty query matches everything.
func (l *Lexicon) Search(query string) []Word {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return l.Words()
	}
	return lo.Filter(l.words, func(w Word, _ int) bool {
		return strings.Contains(strings.ToLower(w.Forms.Transliteration), q) ||
			strings.Contains(w.Forms.NativeScript, q) ||
			strings.Contains(strings.ToLower(w.Meaning), q)
	})
}

// ByLevel returns words tagged with the given difficulty level.
func (l *Lexicon) ByLevel(level string) []Word {
	return lo.Filter(l.words, func(w Word, _ int) bool {
		return strings.EqualFold(w.Level, level)
	})
}
