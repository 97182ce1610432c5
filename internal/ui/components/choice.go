package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sabdam/internal/ui/theme"
)

// ChoiceOption is one selectable answer.
type ChoiceOption struct {
	Label     string
	Secondary string
}

// Choice picks one of a few options by number key or cursor. Once Reveal
// is called it renders the correct and chosen options in color and stops
// taking input.
type Choice struct {
	Options  []ChoiceOption
	Selected int

	revealed bool
	correct  int
	chosen   int
}

// NewChoice creates a picker over opts.
func NewChoice(opts []ChoiceOption) Choice {
	return Choice{Options: opts, correct: -1, chosen: -1}
}

// Update moves the cursor. It returns the index the learner committed to
// with a number key or Enter, or -1.
func (c Choice) Update(msg tea.Msg) (Choice, int) {
	if c.revealed {
		return c, -1
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j", "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		return c, c.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(c.Options) {
				c.Selected = i
				return c, i
			}
		}
	}
	return c, -1
}

// Reveal marks the correct and chosen options.
func (c *Choice) Reveal(correct, chosen int) {
	c.revealed = true
	c.correct = correct
	c.chosen = chosen
}

// Revealed reports whether Reveal was called.
func (c Choice) Revealed() bool {
	return c.revealed
}

// View renders the options as numbered buttons of width w.
func (c Choice) View(w int) string {
	lines := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		label := fmt.Sprintf("%d  %s", i+1, opt.Label)
		if opt.Secondary != "" {
			label += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(opt.Secondary)
		}

		style := lipgloss.NewStyle().
			Width(w).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

		switch {
		case c.revealed && i == c.correct:
			style = style.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
			label = "✓ " + label
		case c.revealed && i == c.chosen:
			style = style.BorderForeground(theme.Error).Foreground(theme.Error)
			label = "✗ " + label
		case c.revealed:
			style = style.BorderForeground(theme.Border).Foreground(theme.TextDim)
		case i == c.Selected:
			style = style.BorderForeground(theme.ArcadeYellow).Foreground(theme.ArcadeYellow).Bold(true)
			label = "▸ " + label
		default:
			style = style.BorderForeground(theme.Border).Foreground(theme.Text)
		}
		lines = append(lines, style.Render(label))
	}
	return strings.Join(lines, "\n")
}
