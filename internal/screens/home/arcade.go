package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sabdam/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` ███████╗ █████╗ ██████╗ ██████╗  █████╗ ███╗   ███╗
 ██╔════╝██╔══██╗██╔══██╗██╔══██╗██╔══██╗████╗ ████║
 ███████╗███████║██████╔╝██║  ██║███████║██╔████╔██║
 ╚════██║██╔══██║██╔══██╗██║  ██║██╔══██║██║╚██╔╝██║
 ███████║██║  ██║██████╔╝██████╔╝██║  ██║██║ ╚═╝ ██║
 ╚══════╝╚═╝  ╚═╝╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝`

const arcadeTitleCompact = "S · A · B · D · A · M"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(st stats, cw int, compact bool) string {
	masteredStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	difficultStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	sessionStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	difficult := difficultStyle
	if st.difficult == 0 {
		difficult = dimStyle
	}

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			masteredStyle.Render(fmt.Sprintf("●%d/%d", st.mastered, st.total)),
			difficult.Render(fmt.Sprintf("⚑%d", st.difficult)),
			sessionStyle.Render(fmt.Sprintf("♪%d", st.sessions)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			masteredStyle.Render(fmt.Sprintf("● %d/%d MASTERED", st.mastered, st.total)),
			difficult.Render(fmt.Sprintf("⚑ %d DIFFICULT", st.difficult)),
			sessionStyle.Render(fmt.Sprintf("♪ %d SESSIONS", st.sessions)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderLastSession renders a dim one-line summary of the latest session.
func renderLastSession(st stats, cw int) string {
	text := "No sessions yet. Start practicing!"
	if st.hasLast {
		text = fmt.Sprintf("Last session: %d%%", st.lastPercent)
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
