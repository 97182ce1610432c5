package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/sabdam/internal/lexicon"
)

var (
	ErrNoSession       = errors.New("no practice session in progress")
	ErrSessionComplete = errors.New("practice session already complete")
	ErrAlreadyAnswered = errors.New("current question already answered")
	ErrNotAnswered     = errors.New("current question not answered yet")
	ErrUnknownOption   = errors.New("selected word is not an option for this question")
	ErrInvalidCount    = errors.New("question count must be positive")
)

// IntegrityError reports a confusable pair that references a word missing
// from the reference data. It means the bundled dataset is broken and is
// never recoverable at runtime.
type IntegrityError struct {
	PairID string
	WordID string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("pair %q references unknown word %q", e.PairID, e.WordID)
}

func (e *IntegrityError) Unwrap() error { return lexicon.ErrWordNotFound }
