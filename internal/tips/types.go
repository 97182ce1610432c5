package tips

import (
	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/session"
)

// Input names the word the learner should produce and the word it gets
// confused with.
type Input struct {
	PairID string
	Target lexicon.Word
	Other  lexicon.Word
	Reason string
}

// FromQuestion builds the tip input for a practice question.
func FromQuestion(q session.Question) Input {
	return Input{
		PairID: q.PairID,
		Target: q.CorrectWord,
		Other:  q.ConfusableWord,
		Reason: q.Reason,
	}
}

// FromPair builds the tip input for a pair, targeting its first word.
func FromPair(lex *lexicon.Lexicon, pairID string) (Input, error) {
	p, ok := lex.Pair(pairID)
	if !ok {
		return Input{}, ErrUnknownPair
	}
	target, err := lex.Resolve(p.WordID)
	if err != nil {
		return Input{}, err
	}
	other, err := lex.Resolve(p.ConfusableWordID)
	if err != nil {
		return Input{}, err
	}
	return Input{PairID: p.ID, Target: target, Other: other, Reason: p.Reason}, nil
}

func (in Input) key() string {
	return in.PairID + "/" + in.Target.ID
}

// Tip is a short LLM-written coaching note for one pair.
type Tip struct {
	Summary       string
	MouthPosition string
	Mnemonic      string
	Model         string
}
