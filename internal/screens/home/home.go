package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sabdam/internal/mastery"
	"github.com/abhisek/sabdam/internal/router"
	"github.com/abhisek/sabdam/internal/screen"
	"github.com/abhisek/sabdam/internal/screens/history"
	"github.com/abhisek/sabdam/internal/screens/practice"
	"github.com/abhisek/sabdam/internal/screens/progressview"
	"github.com/abhisek/sabdam/internal/screens/words"
	"github.com/abhisek/sabdam/internal/ui/components"
)

const (
	itemPractice = iota
	itemReview
	itemProgress
	itemWords
	itemHistory
	itemExit
)

type stats struct {
	mastered    int
	total       int
	difficult   int
	sessions    int
	lastPercent int
	hasLast     bool
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps  screen.Deps
	menu  components.Menu
	stats stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screen.Deps) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		itemPractice: {Label: "PRACTICE", Action: push(func() screen.Screen {
			return practice.New(deps, practice.ModeAll)
		})},
		itemReview: {Label: "REVIEW DIFFICULT", Action: push(func() screen.Screen {
			return practice.New(deps, practice.ModeDifficult)
		})},
		itemProgress: {Label: "MY PROGRESS", Action: push(func() screen.Screen {
			return progressview.New(deps)
		})},
		itemWords: {Label: "WORD LIBRARY", Action: push(func() screen.Screen {
			return words.New(deps)
		})},
		itemHistory: {Label: "HISTORY", Action: push(func() screen.Screen {
			return history.New(deps.Progress)
		})},
		itemExit: {Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
	h.refresh()
	return h
}

// refresh reloads the counters and enables Review only when the
// difficult words still reach at least one pair.
func (h *HomeScreen) refresh() {
	h.stats = loadStats(h.deps)
	h.menu.SetDisabled(itemReview, h.deps.ReviewPairs(context.Background()) == 0)
}

func loadStats(deps screen.Deps) stats {
	var st stats
	if deps.Lexicon != nil {
		st.total = deps.Lexicon.Len()
	}
	if deps.Progress == nil || deps.Lexicon == nil {
		return st
	}

	ctx := context.Background()
	data := deps.Progress.Load(ctx)
	st.mastered = mastery.Summarize(ctx, deps.Lexicon, deps.Progress).Mastered
	st.difficult = len(data.DifficultWordIDs)
	st.sessions = len(data.SessionHistory)
	if n := len(data.SessionHistory); n > 0 {
		st.hasLast = true
		st.lastPercent = data.SessionHistory[n-1].Percent()
	}
	return st
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume refreshes the dashboard after returning from another screen.
func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.ProgressChangedMsg); ok {
		h.refresh()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.stats), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	sections = append(sections, components.ArcadeMenu(h.menu.Labels(), h.menu.Selected, h.menu.DisabledSet(), cw))
	if !compact {
		sections = append(sections, renderLastSession(h.stats, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
