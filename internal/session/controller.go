package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/logging"
)

// ProgressRecorder is the slice of the progress store a session touches.
type ProgressRecorder interface {
	GetDifficultWords(ctx context.Context) []string
	AddDifficultWord(ctx context.Context, id string)
	IncrementWordProgress(ctx context.Context, wordID string)
	SaveSessionResult(ctx context.Context, score, total int)
}

// StartOptions configures a new session. Zero values select the defaults.
type StartOptions struct {
	Script    lexicon.Script
	Difficult bool
	Count     int
}

// Controller owns the single live practice session. It is not safe for
// concurrent use; the TUI drives it from its update loop.
type Controller struct {
	gen      *Generator
	progress ProgressRecorder
	log      logrus.FieldLogger
	newID    func() string

	session *Session
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) ControllerOption {
	return func(c *Controller) { c.log = log }
}

// WithIDFunc overrides session id generation.
func WithIDFunc(fn func() string) ControllerOption {
	return func(c *Controller) { c.newID = fn }
}

// NewController creates a controller with no session.
func NewController(gen *Generator, progress ProgressRecorder, opts ...ControllerOption) *Controller {
	c := &Controller{
		gen:      gen,
		progress: progress,
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	c.log = c.log.WithField("component", "session")
	return c
}

// Start discards any current session and begins a new one. In difficult
// mode the pair pool is restricted to pairs touching a difficult word; with
// no difficult words recorded the full pool is used. A session with no
// questions is complete immediately and is never recorded in history.
//
// On error the previous session, if any, is left in place.
func (c *Controller) Start(ctx context.Context, opts StartOptions) error {
	count := opts.Count
	if count == 0 {
		count = DefaultQuestionCount
	}
	script := opts.Script
	if script == "" {
		script = lexicon.ScriptTransliterated
	}

	var restrict []string
	if opts.Difficult {
		restrict = c.progress.GetDifficultWords(ctx)
	}

	questions, err := c.gen.Generate(count, restrict)
	if err != nil {
		return err
	}

	c.session = &Session{
		ID:        c.newID(),
		Questions: questions,
		Script:    script,
		Difficult: opts.Difficult,
		Complete:  len(questions) == 0,
	}
	c.log.WithFields(logrus.Fields{
		"session_id": c.session.ID,
		"questions":  len(questions),
		"difficult":  opts.Difficult,
	}).Info("session started")
	return nil
}

// SubmitAnswer records the learner's pick for the current question and
// reports whether it was right. A correct pick bumps the word's counter; a
// wrong one marks the asked-for word as difficult. Each question accepts
// exactly one answer.
func (c *Controller) SubmitAnswer(ctx context.Context, selectedWordID string) (bool, error) {
	s, err := c.active()
	if err != nil {
		return false, err
	}
	q, _ := s.Current()
	if _, ok := s.AnswerFor(q.ID); ok {
		return false, ErrAlreadyAnswered
	}
	if !q.HasOption(selectedWordID) {
		return false, ErrUnknownOption
	}

	correct := selectedWordID == q.CorrectWord.ID
	s.Answers = append(s.Answers, Answer{
		QuestionID:     q.ID,
		SelectedWordID: selectedWordID,
		IsCorrect:      correct,
	})

	if correct {
		c.progress.IncrementWordProgress(ctx, q.CorrectWord.ID)
	} else {
		c.progress.AddDifficultWord(ctx, q.CorrectWord.ID)
	}
	c.log.WithFields(logrus.Fields{
		"session_id": s.ID,
		"question":   q.ID,
		"word_id":    q.CorrectWord.ID,
		"correct":    correct,
	}).Debug("answer recorded")
	return correct, nil
}

// Advance moves past the answered current question. Advancing past the
// last question completes the session and appends it to history.
func (c *Controller) Advance(ctx context.Context) error {
	s, err := c.active()
	if err != nil {
		return err
	}
	q, _ := s.Current()
	if _, ok := s.AnswerFor(q.ID); !ok {
		return ErrNotAnswered
	}

	s.CurrentIndex++
	if s.CurrentIndex < len(s.Questions) {
		return nil
	}

	s.Complete = true
	score := s.Score()
	c.progress.SaveSessionResult(ctx, score, len(s.Questions))
	c.log.WithFields(logrus.Fields{
		"session_id": s.ID,
		"score":      score,
		"total":      len(s.Questions),
	}).Info("session complete")
	return nil
}

// ToggleScript flips the display script of the current session.
func (c *Controller) ToggleScript() error {
	if c.session == nil {
		return ErrNoSession
	}
	c.session.Script = c.session.Script.Toggle()
	return nil
}

// Reset drops the current session without touching stored progress.
func (c *Controller) Reset() {
	c.session = nil
}

func (c *Controller) active() (*Session, error) {
	switch {
	case c.session == nil:
		return nil, ErrNoSession
	case c.session.Complete:
		return nil, ErrSessionComplete
	}
	return c.session, nil
}

// Phase reports the lifecycle position.
func (c *Controller) Phase() Phase {
	switch {
	case c.session == nil:
		return PhaseUninitialized
	case c.session.Complete:
		return PhaseComplete
	default:
		return PhaseActive
	}
}

// Session returns a copy of the current session, or nil.
func (c *Controller) Session() *Session {
	if c.session == nil {
		return nil
	}
	return c.session.clone()
}

// CurrentQuestion returns the question under the cursor.
func (c *Controller) CurrentQuestion() (Question, bool) {
	if c.session == nil {
		return Question{}, false
	}
	return c.session.Current()
}

// CurrentAnswer returns the answer to the current question, if given.
func (c *Controller) CurrentAnswer() (Answer, bool) {
	q, ok := c.CurrentQuestion()
	if !ok {
		return Answer{}, false
	}
	return c.session.AnswerFor(q.ID)
}

// HasAnswered reports whether the current question has an answer.
func (c *Controller) HasAnswered() bool {
	_, ok := c.CurrentAnswer()
	return ok
}

// Score counts correct answers in the current session.
func (c *Controller) Score() int {
	if c.session == nil {
		return 0
	}
	return c.session.Score()
}

// Script returns the display script, defaulting to transliterated.
func (c *Controller) Script() lexicon.Script {
	if c.session == nil {
		return lexicon.ScriptTransliterated
	}
	return c.session.Script
}

// Progress returns the 1-based position of the current question and the
// question count.
func (c *Controller) Progress() (current, total int) {
	if c.session == nil {
		return 0, 0
	}
	total = len(c.session.Questions)
	return min(c.session.CurrentIndex+1, total), total
}

// Result summarizes the current session.
func (c *Controller) Result() Result {
	if c.session == nil {
		return Result{}
	}
	return NewResult(c.session.Score(), len(c.session.Questions))
}
