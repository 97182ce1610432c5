package practice

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/sabdam/internal/router"
	"github.com/abhisek/sabdam/internal/screen"
	"github.com/abhisek/sabdam/internal/session"
	"github.com/abhisek/sabdam/internal/tips"
	"github.com/abhisek/sabdam/internal/ui/components"
	"github.com/abhisek/sabdam/internal/ui/layout"
)

// Mode selects the pair pool.
type Mode int

const (
	ModeAll Mode = iota
	ModeDifficult
)

type tipState struct {
	questionID string
	loading    bool
	tip        *tips.Tip
	err        string
}

// PracticeScreen runs one practice session.
type PracticeScreen struct {
	deps screen.Deps
	mode Mode
	ctrl *session.Controller
	log  logrus.FieldLogger

	choice      components.Choice
	questionID  string
	quitConfirm bool
	empty       bool
	errMsg      string
	tip         tipState
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscapeHandler = (*PracticeScreen)(nil)

// New creates a practice screen. The session starts in Init.
func New(deps screen.Deps, mode Mode) *PracticeScreen {
	return &PracticeScreen{
		deps: deps,
		mode: mode,
		ctrl: deps.NewController(),
		log:  deps.Logger().WithField("component", "practice-screen"),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	err := s.ctrl.Start(context.Background(), session.StartOptions{
		Script:    s.deps.Script,
		Difficult: s.mode == ModeDifficult,
		Count:     s.deps.QuestionCount,
	})
	if err != nil {
		s.log.WithError(err).Error("start session")
		s.errMsg = err.Error()
		return nil
	}
	if s.ctrl.Phase() == session.PhaseComplete {
		s.empty = true
		return nil
	}
	s.syncChoice()
	return nil
}

func (s *PracticeScreen) Title() string {
	if s.mode == ModeDifficult {
		return "Review Difficult Words"
	}
	return "Practice"
}

func (s *PracticeScreen) HandlesEscape() bool { return true }

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "" || s.empty:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.ctrl.HasAnswered():
		hints := []layout.KeyHint{{Key: "Enter", Description: s.nextLabel()}}
		if s.deps.Tips.Enabled() {
			hints = append(hints, layout.KeyHint{Key: "?", Description: "Tip"})
		}
		return append(hints,
			layout.KeyHint{Key: "T", Description: "Script"},
			layout.KeyHint{Key: "Esc", Description: "Quit"},
		)
	}
	return []layout.KeyHint{
		{Key: "1/2", Description: "Answer"},
		{Key: "↑↓", Description: "Select"},
		{Key: "T", Description: "Script"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PracticeScreen) nextLabel() string {
	if cur, total := s.ctrl.Progress(); cur == total {
		return "See results"
	}
	return "Next"
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tipLoadedMsg:
		s.handleTip(msg)
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" || s.empty {
		return s, popScreen
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.log.WithField("session_id", s.sessionID()).Info("session abandoned")
			s.ctrl.Reset()
			return s, popScreen
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "t", "T":
		if err := s.ctrl.ToggleScript(); err == nil {
			s.syncChoice()
		}
		return s, nil
	}

	if s.ctrl.HasAnswered() {
		switch key {
		case "enter", "space", " ", "n":
			return s.advance()
		case "?":
			return s, s.requestTip()
		}
		return s, nil
	}

	var picked int
	s.choice, picked = s.choice.Update(msg)
	if picked < 0 {
		return s, nil
	}
	return s.submit(picked)
}

func (s *PracticeScreen) submit(index int) (screen.Screen, tea.Cmd) {
	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		return s, nil
	}
	opts := q.Options()
	if _, err := s.ctrl.SubmitAnswer(context.Background(), opts[index].ID); err != nil {
		s.log.WithError(err).Warn("submit answer")
		return s, nil
	}

	correct := 0
	if opts[1].ID == q.CorrectWord.ID {
		correct = 1
	}
	s.choice.Reveal(correct, index)
	return s, progressChanged
}

func (s *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.Advance(context.Background()); err != nil {
		s.log.WithError(err).Warn("advance")
		return s, nil
	}
	if s.ctrl.Phase() == session.PhaseComplete {
		results := NewResults(s.deps, s.mode, s.ctrl.Result())
		return s, tea.Batch(
			func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} },
			progressChanged,
		)
	}
	s.syncChoice()
	return s, nil
}

// requestTip starts tip generation for the current question off the
// update loop.
func (s *PracticeScreen) requestTip() tea.Cmd {
	if !s.deps.Tips.Enabled() || s.tip.loading || s.tip.tip != nil {
		return nil
	}
	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		return nil
	}
	s.tip = tipState{questionID: q.ID, loading: true}

	svc := s.deps.Tips
	in := tips.FromQuestion(q)
	return func() tea.Msg {
		tip, err := svc.Tip(context.Background(), in)
		return tipLoadedMsg{QuestionID: q.ID, Tip: tip, Err: err}
	}
}

func (s *PracticeScreen) handleTip(msg tipLoadedMsg) {
	if msg.QuestionID != s.tip.questionID {
		return
	}
	s.tip.loading = false
	if msg.Err != nil {
		s.tip.err = "Tip unavailable right now."
		if errors.Is(msg.Err, tips.ErrDisabled) {
			s.tip.err = "Tips need an LLM API key."
		}
		return
	}
	s.tip.tip = msg.Tip
}

// syncChoice rebuilds the option picker for the current question. On a
// script toggle the cursor and reveal state are kept.
func (s *PracticeScreen) syncChoice() {
	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		return
	}
	script := s.ctrl.Script()
	words := q.Options()
	opts := make([]components.ChoiceOption, len(words))
	for i, w := range words {
		opts[i] = components.ChoiceOption{Label: w.Display(script), Secondary: w.Secondary(script)}
	}

	if q.ID == s.questionID {
		s.choice.Options = opts
		return
	}
	s.questionID = q.ID
	s.choice = components.NewChoice(opts)
	s.tip = tipState{}
}

func (s *PracticeScreen) sessionID() string {
	if sess := s.ctrl.Session(); sess != nil {
		return sess.ID
	}
	return ""
}

func popScreen() tea.Msg { return router.PopScreenMsg{} }

func progressChanged() tea.Msg { return screen.ProgressChangedMsg{} }
