package practice

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sabdam/internal/router"
	"github.com/abhisek/sabdam/internal/screen"
	"github.com/abhisek/sabdam/internal/session"
	"github.com/abhisek/sabdam/internal/ui/components"
	"github.com/abhisek/sabdam/internal/ui/layout"
	"github.com/abhisek/sabdam/internal/ui/theme"
)

// ResultsScreen shows the outcome of a finished session.
type ResultsScreen struct {
	deps         screen.Deps
	mode         Mode
	result       session.Result
	hasDifficult bool
	selected     int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

const (
	actionAgain = iota
	actionDifficult
	actionHome
)

var actionLabels = []string{"PRACTICE AGAIN", "REVIEW DIFFICULT", "GO HOME"}

// NewResults creates the results screen for a completed session.
func NewResults(deps screen.Deps, mode Mode, result session.Result) *ResultsScreen {
	return &ResultsScreen{deps: deps, mode: mode, result: result}
}

func (s *ResultsScreen) Init() tea.Cmd {
	s.hasDifficult = s.deps.ReviewPairs(context.Background()) > 0
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "R", Description: "Again"}}
	if s.hasDifficult {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Difficult"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Select"},
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R":
		return s, s.run(actionAgain)
	case "d", "D":
		return s, s.run(actionDifficult)
	case "esc":
		return s, popScreen
	case "up", "k":
		s.move(-1)
	case "down", "j":
		s.move(1)
	case "enter":
		return s, s.run(s.selected)
	}
	return s, nil
}

func (s *ResultsScreen) move(delta int) {
	for i := s.selected + delta; i >= 0 && i < len(actionLabels); i += delta {
		if i == actionDifficult && !s.hasDifficult {
			continue
		}
		s.selected = i
		return
	}
}

func (s *ResultsScreen) run(action int) tea.Cmd {
	var next screen.Screen
	switch action {
	case actionAgain:
		next = New(s.deps, s.mode)
	case actionDifficult:
		if !s.hasDifficult {
			return nil
		}
		next = New(s.deps, ModeDifficult)
	default:
		return popScreen
	}
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("%d/%d Correct", r.Score, r.Total)))

	pctColor := theme.Accent
	if r.Percent >= 80 {
		pctColor = theme.Success
	}
	sections = append(sections, components.Centered(fmt.Sprintf("%d%%", r.Percent), width, pctColor))
	sections = append(sections, components.Centered(r.Message, width, theme.Text))

	cw := components.ContentWidth(width)
	bar := components.NewProgressBar("", components.Ratio(r.Score, r.Total), false, cw)
	bar.Fill = pctColor
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	disabled := map[int]bool{}
	if !s.hasDifficult {
		disabled[actionDifficult] = true
	}
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeMenu(actionLabels, s.selected, disabled, cw)))

	return "\n\n" + strings.Join(sections, "\n\n")
}
