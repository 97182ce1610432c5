package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: warm lamp tones over a dark ground.
var (
	Primary      = lipgloss.Color("#A855F7") // Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Lamp Yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Cyan
)

// Word state colors.
var (
	StateNew      = TextDim
	StateLearning = ArcadeCyan
	StateMastered = ArcadeYellow
)

// Typography
var (
	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Native renders Malayalam script a touch brighter than Manglish.
	Native = lipgloss.NewStyle().
		Foreground(ArcadeYellow).
		Bold(true)
)

// Answer states
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
