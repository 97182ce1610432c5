package session

import (
	"strconv"

	"github.com/abhisek/sabdam/internal/lexicon"
)

// DefaultQuestionCount is the number of questions in a standard session.
const DefaultQuestionCount = 5

// Question asks the learner to pick CorrectWord out of the pair.
type Question struct {
	ID             string
	PairID         string
	CorrectWord    lexicon.Word
	ConfusableWord lexicon.Word
	Reason         string
}

// Options returns the two choices in display order. The order is fixed per
// question id so redraws never shuffle the buttons under the learner.
func (q Question) Options() [2]lexicon.Word {
	if len(q.ID) > 0 && q.ID[len(q.ID)-1]%2 == 1 {
		return [2]lexicon.Word{q.ConfusableWord, q.CorrectWord}
	}
	return [2]lexicon.Word{q.CorrectWord, q.ConfusableWord}
}

// HasOption reports whether wordID is one of the two choices.
func (q Question) HasOption(wordID string) bool {
	return wordID == q.CorrectWord.ID || wordID == q.ConfusableWord.ID
}

func questionID(i int) string {
	return "question-" + strconv.Itoa(i)
}

// Answer is the learner's single response to a question.
type Answer struct {
	QuestionID     string
	SelectedWordID string
	IsCorrect      bool
}

// Session is one bounded run of questions.
type Session struct {
	ID           string
	Questions    []Question
	Answers      []Answer
	CurrentIndex int
	Script       lexicon.Script
	Difficult    bool
	Complete     bool
}

// Score counts correct answers so far.
func (s *Session) Score() int {
	n := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// Current returns the question under the cursor.
func (s *Session) Current() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// AnswerFor returns the answer recorded for questionID.
func (s *Session) AnswerFor(questionID string) (Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

func (s *Session) clone() *Session {
	c := *s
	c.Questions = append([]Question(nil), s.Questions...)
	c.Answers = append([]Answer(nil), s.Answers...)
	return &c
}
