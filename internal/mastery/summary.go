package mastery

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/progress"
)

// ProgressReader supplies the stored per-word counters.
type ProgressReader interface {
	GetWordProgress(ctx context.Context) map[string]progress.WordProgress
}

// Summary counts words by state across the whole lexicon.
type Summary struct {
	New      int
	Learning int
	Mastered int
	Total    int
}

// Count returns the number of words in state s.
func (s Summary) Count(state WordState) int {
	switch state {
	case StateNew:
		return s.New
	case StateLearning:
		return s.Learning
	case StateMastered:
		return s.Mastered
	}
	return 0
}

// WordStatus is one word's classification.
type WordStatus struct {
	Word          lexicon.Word
	State         WordState
	CorrectCount  int
	LastPracticed time.Time
}

// Classify returns the status of every lexicon word, in lexicon order.
// Words never answered correctly are StateNew.
func Classify(ctx context.Context, lex *lexicon.Lexicon, r ProgressReader) []WordStatus {
	wp := r.GetWordProgress(ctx)
	return lo.Map(lex.Words(), func(w lexicon.Word, _ int) WordStatus {
		p := wp[w.ID]
		return WordStatus{
			Word:          w,
			State:         StateFor(p.CorrectCount),
			CorrectCount:  p.CorrectCount,
			LastPracticed: p.LastPracticed,
		}
	})
}

// Summarize counts every lexicon word by state. Progress entries for ids
// not in the lexicon are ignored, so Total is always the lexicon size.
func Summarize(ctx context.Context, lex *lexicon.Lexicon, r ProgressReader) Summary {
	counts := lo.CountValuesBy(Classify(ctx, lex, r), func(ws WordStatus) WordState {
		return ws.State
	})
	return Summary{
		New:      counts[StateNew],
		Learning: counts[StateLearning],
		Mastered: counts[StateMastered],
		Total:    lex.Len(),
	}
}
