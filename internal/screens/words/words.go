package words

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/mastery"
	"github.com/abhisek/sabdam/internal/screen"
	"github.com/abhisek/sabdam/internal/ui/components"
	"github.com/abhisek/sabdam/internal/ui/layout"
	"github.com/abhisek/sabdam/internal/ui/theme"
)

// WordsScreen is the searchable word library.
type WordsScreen struct {
	deps      screen.Deps
	filter    components.TextInput
	results   []lexicon.Word
	selected  int
	difficult map[string]bool
	progress  map[string]int
	script    lexicon.Script
}

var _ screen.Screen = (*WordsScreen)(nil)
var _ screen.KeyHintProvider = (*WordsScreen)(nil)

// New creates the word library screen.
func New(deps screen.Deps) *WordsScreen {
	script := deps.Script
	if script == "" {
		script = lexicon.ScriptTransliterated
	}
	s := &WordsScreen{
		deps:   deps,
		filter: components.NewTextInput("Search words or meanings", 40),
		script: script,
	}
	s.results = deps.Lexicon.Search("")
	return s
}

func (s *WordsScreen) Init() tea.Cmd {
	s.reloadProgress()
	return s.filter.Init()
}

func (s *WordsScreen) reloadProgress() {
	s.difficult = map[string]bool{}
	s.progress = map[string]int{}
	if s.deps.Progress == nil {
		return
	}
	ctx := context.Background()
	for _, id := range s.deps.Progress.GetDifficultWords(ctx) {
		s.difficult[id] = true
	}
	for id, wp := range s.deps.Progress.GetWordProgress(ctx) {
		s.progress[id] = wp.CorrectCount
	}
}

func (s *WordsScreen) Title() string {
	return "Word Library"
}

func (s *WordsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "type", Description: "Filter"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Mark difficult"},
		{Key: "Ctrl+T", Description: "Script"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "tab":
			return s, s.toggleDifficult()
		case "ctrl+t":
			s.script = s.script.Toggle()
			return s, nil
		}
	}

	var cmd tea.Cmd
	var changed bool
	s.filter, cmd, changed = s.filter.Update(msg)
	if changed {
		s.results = s.deps.Lexicon.Search(s.filter.Value())
		s.selected = 0
	}
	return s, cmd
}

// toggleDifficult adds or removes the selected word from the difficult set.
func (s *WordsScreen) toggleDifficult() tea.Cmd {
	w, ok := s.current()
	if !ok || s.deps.Progress == nil {
		return nil
	}
	ctx := context.Background()
	if s.difficult[w.ID] {
		s.deps.Progress.RemoveDifficultWord(ctx, w.ID)
	} else {
		s.deps.Progress.AddDifficultWord(ctx, w.ID)
	}
	s.reloadProgress()
	return func() tea.Msg { return screen.ProgressChangedMsg{} }
}

func (s *WordsScreen) current() (lexicon.Word, bool) {
	if s.selected < 0 || s.selected >= len(s.results) {
		return lexicon.Word{}, false
	}
	return s.results[s.selected], true
}

func (s *WordsScreen) View(width, height int) string {
	listWidth := max(width*2/5, 24)
	detailWidth := max(width-listWidth-4, 20)

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(s.filter.View())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("   %d of %d words", len(s.results), s.deps.Lexicon.Len())))
	b.WriteString("\n\n")

	list := s.renderList(listWidth, max(height-5, 3))
	detail := s.renderDetail(detailWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	return b.String()
}

func (s *WordsScreen) renderList(width, rows int) string {
	if len(s.results) == 0 {
		return theme.Hint.Width(width).Render("  No words match.")
	}

	first := max(0, s.selected-rows+1)
	last := min(len(s.results), first+rows)

	lines := lo.Map(s.results[first:last], func(w lexicon.Word, i int) string {
		idx := first + i
		state := mastery.StateFor(s.progress[w.ID])
		flag := " "
		if s.difficult[w.ID] {
			flag = lipgloss.NewStyle().Foreground(theme.Accent).Render("⚑")
		}
		line := fmt.Sprintf("%s %s %s", state.Icon(), flag, w.Display(s.script))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if idx == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "▸ "
		}
		return style.Render(prefix + line)
	})

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (s *WordsScreen) renderDetail(width int) string {
	w, ok := s.current()
	if !ok {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var lines []string
	lines = append(lines,
		theme.Native.Render(w.Display(s.script))+"  "+dim.Render(w.Secondary(s.script)),
		"",
		dim.Render("Meaning: ")+w.Meaning,
	)
	if w.PartOfSpeech != "" || w.Level != "" {
		lines = append(lines, dim.Render(strings.TrimSpace(w.PartOfSpeech+"  "+w.Level)))
	}

	state := mastery.StateFor(s.progress[w.ID])
	lines = append(lines, dim.Render("Status: ")+fmt.Sprintf("%s %s (%d correct)", state.Icon(), state.Label(), s.progress[w.ID]))
	if s.difficult[w.ID] {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render("⚑ Marked difficult"))
	}

	if len(w.Examples) > 0 {
		lines = append(lines, "", dim.Render("Examples"))
		for _, ex := range w.Examples[:min(len(w.Examples), 2)] {
			lines = append(lines, "• "+ex.Transliteration, dim.Render("  "+ex.Translation))
		}
	}

	pairs := s.deps.Lexicon.PairsForWord(w.ID)
	if len(pairs) > 0 {
		lines = append(lines, "", dim.Render("Easily confused with"))
		seen := map[string]bool{}
		for _, p := range pairs {
			otherID := p.ConfusableWordID
			if otherID == w.ID {
				otherID = p.WordID
			}
			if seen[otherID] {
				continue
			}
			seen[otherID] = true
			other, ok := s.deps.Lexicon.Word(otherID)
			if !ok {
				continue
			}
			lines = append(lines, "• "+other.Display(s.script)+dim.Render("  "+p.Reason))
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
