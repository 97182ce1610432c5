package history

import (
	"context"
	"fmt"
	"image/color"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sabdam/internal/progress"
	"github.com/abhisek/sabdam/internal/router"
	"github.com/abhisek/sabdam/internal/screen"
	"github.com/abhisek/sabdam/internal/session"
	"github.com/abhisek/sabdam/internal/ui/layout"
	"github.com/abhisek/sabdam/internal/ui/theme"
)

// HistoryReader is the slice of the progress store this screen reads.
type HistoryReader interface {
	GetSessionHistory(ctx context.Context) []progress.SessionRecord
}

type historyLoadedMsg struct {
	Records []progress.SessionRecord
}

// HistoryScreen lists completed sessions, newest first.
type HistoryScreen struct {
	reader   HistoryReader
	records  []progress.SessionRecord
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(reader HistoryReader) *HistoryScreen {
	return &HistoryScreen{
		reader:   reader,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	reader := s.reader
	return func() tea.Msg {
		if reader == nil {
			return historyLoadedMsg{}
		}
		records := reader.GetSessionHistory(context.Background())
		slices.Reverse(records)
		return historyLoadedMsg{Records: records}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.records = msg.Records
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the cursor in view: each collapsed row is one line.
	first := max(0, s.selected-(height-4))
	for i := first; i < len(s.records); i++ {
		rec := s.records[i]
		pct := rec.Percent()

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s   %d/%d correct   %3d%%",
			prefix, rec.Date.Local().Format("Jan 02, 2006 15:04"), rec.Score, rec.TotalQuestions, pct)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := lipgloss.NewStyle().Foreground(scoreColor(pct)).Italic(true).
				Render("    " + session.ResultMessage(pct))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detail))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func scoreColor(pct int) color.Color {
	switch {
	case pct >= 80:
		return theme.Success
	case pct >= 60:
		return theme.ArcadeCyan
	default:
		return theme.Accent
	}
}
