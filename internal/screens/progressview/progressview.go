package progressview

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sabdam/internal/mastery"
	"github.com/abhisek/sabdam/internal/screen"
	"github.com/abhisek/sabdam/internal/ui/components"
	"github.com/abhisek/sabdam/internal/ui/layout"
	"github.com/abhisek/sabdam/internal/ui/theme"
)

// ProgressScreen shows how many words are new, learning and mastered,
// with a per-word breakdown.
type ProgressScreen struct {
	deps     screen.Deps
	summary  mastery.Summary
	statuses []mastery.WordStatus
	offset   int
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates the progress screen.
func New(deps screen.Deps) *ProgressScreen {
	return &ProgressScreen{deps: deps}
}

func (s *ProgressScreen) Init() tea.Cmd {
	if s.deps.Lexicon == nil || s.deps.Progress == nil {
		return nil
	}
	ctx := context.Background()
	s.summary = mastery.Summarize(ctx, s.deps.Lexicon, s.deps.Progress)
	s.statuses = mastery.Classify(ctx, s.deps.Lexicon, s.deps.Progress)
	return nil
}

func (s *ProgressScreen) Title() string {
	return "My Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.statuses)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func stateColor(st mastery.WordState) color.Color {
	switch st {
	case mastery.StateMastered:
		return theme.StateMastered
	case mastery.StateLearning:
		return theme.StateLearning
	default:
		return theme.StateNew
	}
}

func (s *ProgressScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	for _, st := range mastery.States() {
		n := s.summary.Count(st)
		bar := components.NewProgressBar(
			fmt.Sprintf("%s %-8s %3d", st.Icon(), st.Label(), n),
			components.Ratio(n, s.summary.Total), true, cw)
		bar.Fill = stateColor(st)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.Centered(
		fmt.Sprintf("A word is mastered after %d correct answers.", mastery.MasteryThreshold), width, theme.TextDim))
	b.WriteString("\n\n")

	if len(s.statuses) == 0 {
		return b.String()
	}

	rows := max(height-len(mastery.States())-6, 3)
	last := min(len(s.statuses), s.offset+rows)
	var lines []string
	for _, ws := range s.statuses[s.offset:last] {
		line := fmt.Sprintf("%s  %-18s %-22s %d",
			ws.State.Icon(), ws.Word.Display(s.deps.Script), truncate(ws.Word.Meaning, 22), ws.CorrectCount)
		if !ws.LastPracticed.IsZero() {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("  " + ws.LastPracticed.Local().Format("Jan 02"))
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(stateColor(ws.State)).Render(line))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))))
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
