package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sabdam/internal/session"
	"github.com/abhisek/sabdam/internal/ui/components"
	"github.com/abhisek/sabdam/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return components.Centered(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg), width, theme.Error)
	case s.empty:
		return components.Centered("\n\n\n  Nothing to practice yet.\n\n  Press any key to go back.", width, theme.TextDim)
	case s.quitConfirm:
		return renderQuitConfirm(width)
	}

	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		return components.Centered("\n\n\n  Preparing your session...", width, theme.TextDim)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Which word means %q?", q.CorrectWord.Meaning)))
	b.WriteString("\n")
	if q.CorrectWord.HasPronunciation() {
		b.WriteString(components.Centered("♪ "+q.CorrectWord.AssetPath(), width, theme.TextDim))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View(cw/2+8)))
	b.WriteString("\n\n")

	if ans, ok := s.ctrl.CurrentAnswer(); ok {
		b.WriteString(s.renderFeedback(q, ans, width))
	}

	return b.String()
}

func (s *PracticeScreen) renderInfoLine(width int) string {
	cur, total := s.ctrl.Progress()

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", cur, total))
	if s.mode == ModeDifficult {
		left += lipgloss.NewStyle().Foreground(theme.Accent).Render("   Reviewing difficult words")
	}

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d   %s",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.ctrl.Score(),
			s.ctrl.Script().Label(),
		))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		return left + strings.Repeat(" ", pad) + right
	}
	return left
}

func (s *PracticeScreen) renderFeedback(q session.Question, ans session.Answer, width int) string {
	script := s.ctrl.Script()
	var lines []string

	verdict := theme.Incorrect.Render("✗ " + session.Feedback(false))
	if ans.IsCorrect {
		verdict = theme.Correct.Render("✓ " + session.Feedback(true))
	}
	lines = append(lines, verdict, "")

	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("The word was: ")+
			theme.Native.Render(q.CorrectWord.Display(script))+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ("+q.CorrectWord.Secondary(script)+")"),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Meaning: ")+q.CorrectWord.Meaning,
	)
	if q.Reason != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Why these sound similar: ")+q.Reason)
	}

	switch {
	case s.tip.loading:
		lines = append(lines, "", theme.Hint.Render("Asking the coach..."))
	case s.tip.tip != nil:
		t := s.tip.tip
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("Coach tip"), t.Summary)
		if t.MouthPosition != "" {
			lines = append(lines, "Mouth: "+t.MouthPosition)
		}
		if t.Mnemonic != "" {
			lines = append(lines, "Remember: "+t.Mnemonic)
		}
	case s.tip.err != "":
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Error).Render(s.tip.err))
	}

	cw := components.ContentWidth(width)
	card := components.ArcadeCard(strings.Join(lines, "\n"), cw)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card) + "\n\n" +
		components.Centered(fmt.Sprintf("Press Enter for %s", strings.ToLower(s.nextLabel())), width, theme.TextDim)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(components.Centered("Answers so far are saved; the session is not added to history.", width, theme.TextDim))
	b.WriteString("\n\n")
	b.WriteString(components.Centered("[Y] Yes, end session", width, theme.Success))
	b.WriteString("\n")
	b.WriteString(components.Centered("[N] No, keep going", width, theme.Primary))
	return b.String()
}
