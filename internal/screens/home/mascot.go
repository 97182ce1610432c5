package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sabdam/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes: last session was perfect
	MascotAlert                            // Orange: several difficult words waiting
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  o  │ )))
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ◡  │ ♪♪♪
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ~  │ )))
└─────┘`

// alertThreshold is the difficult-word count at which the mascot frets.
const alertThreshold = 3

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

func mascotFor(st stats) MascotVariant {
	switch {
	case st.difficult >= alertThreshold:
		return MascotAlert
	case st.hasLast && st.lastPercent == 100:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}
